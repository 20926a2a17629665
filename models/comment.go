package models

import "time"

// Comment 评论。UniqueID 是对外暴露的标识，与自增主键无关
type Comment struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	UniqueID  string    `gorm:"column:unique_id;type:char(36);not null;uniqueIndex:uk_unique_id" json:"unique_id"`
	PostID    string    `gorm:"column:post_id;type:char(36);not null;index:idx_post_id" json:"post_id"`
	AuthorID  uint64    `gorm:"column:author_id;not null" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string { return "comments" }

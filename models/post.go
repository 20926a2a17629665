package models

import "time"

type Post struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"post_id"`
	Title     string    `gorm:"column:title;type:varchar(200);not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index:idx_author_id" json:"-"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index:idx_created_at" json:"created_at"`
}

func (Post) TableName() string { return "posts" }

// PostFilter 帖子列表筛选条件，任一条件为空则不生效
type PostFilter struct {
	AuthorName string
	Start      *time.Time
	End        *time.Time
}

package models

import "time"

// Favorite 收藏记录
// 唯一键: user_id + post_id，并发重复收藏由该约束兜底
type Favorite struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_user_post,priority:1" json:"user_id"`
	PostID    string    `gorm:"column:post_id;type:char(36);not null;uniqueIndex:uk_user_post,priority:2" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }

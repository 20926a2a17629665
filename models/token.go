package models

import "time"

// AuthToken 登录令牌，每个用户至多一条 (登录复用，登出删除)
type AuthToken struct {
	Key       string    `gorm:"column:token_key;type:char(40);primaryKey" json:"-"`
	UserID    uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_token_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AuthToken) TableName() string { return "auth_tokens" }

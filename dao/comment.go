package dao

import (
	"context"

	"neutalk/models"

	"gorm.io/gorm"
)

type Comments struct {
	Repo[models.Comment]
}

func NewComments(db *gorm.DB) *Comments {
	return &Comments{
		Repo: NewRepo[models.Comment](db),
	}
}

// ListByPost 获取帖子下的评论(按时间倒序)
func (c *Comments) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := c.Db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

package dao

import (
	"context"
	"errors"

	"neutalk/models"

	"gorm.io/gorm"
)

type Posts struct {
	Repo[models.Post]
}

func NewPosts(db *gorm.DB) *Posts {
	return &Posts{
		Repo: NewRepo[models.Post](db),
	}
}

func (p *Posts) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := p.Db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List 按条件查询帖子，时间倒序
func (p *Posts) List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error) {
	query := p.Db.WithContext(ctx).Model(&models.Post{}).Preload("Author")

	if filter.AuthorName != "" {
		query = query.
			Joins("JOIN users ON users.id = posts.author_id").
			Where("users.username = ?", filter.AuthorName)
	}
	if filter.Start != nil {
		query = query.Where("posts.created_at >= ?", *filter.Start)
	}
	if filter.End != nil {
		query = query.Where("posts.created_at <= ?", *filter.End)
	}

	var posts []*models.Post
	err := query.Order("posts.created_at DESC").Find(&posts).Error
	return posts, err
}

// Delete 删除帖子并级联清理评论和收藏
func (p *Posts) Delete(ctx context.Context, id string) error {
	return p.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
}

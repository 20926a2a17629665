package dao

import (
	"context"

	"neutalk/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Favorites struct {
	Repo[models.Favorite]
}

func NewFavorites(db *gorm.DB) *Favorites {
	return &Favorites{
		Repo: NewRepo[models.Favorite](db),
	}
}

// Add 收藏，已存在时由 uk_user_post 约束转为 no-op
func (f *Favorites) Add(ctx context.Context, fav *models.Favorite) error {
	return f.Db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(fav).Error
}

func (f *Favorites) Exists(ctx context.Context, userID uint64, postID string) (bool, error) {
	return f.Repo.IsExist(ctx, "user_id = ? AND post_id = ?", userID, postID)
}

// Remove 取消收藏，返回是否确实存在过
func (f *Favorites) Remove(ctx context.Context, userID uint64, postID string) (bool, error) {
	res := f.Db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Favorite{})
	return res.RowsAffected > 0, res.Error
}

// ListByUser 用户收藏列表(按收藏时间倒序)，带出帖子和作者
func (f *Favorites) ListByUser(ctx context.Context, userID uint64) ([]*models.Favorite, error) {
	var favorites []*models.Favorite
	err := f.Db.WithContext(ctx).
		Preload("Post").
		Preload("Post.Author").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

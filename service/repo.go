package service

import (
	"context"

	"neutalk/models"
)

// 按实体拆分的仓储接口，由 dao 层的 gorm 实现满足。
// 查询单条约定: 未命中返回 (nil, nil)。

type UserRepo interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

// TokenRepo 令牌存储: token -> user 的显式映射
type TokenRepo interface {
	GetOrCreate(ctx context.Context, userID uint64, key string) (*models.AuthToken, error)
	FindByKey(ctx context.Context, key string) (*models.AuthToken, error)
	DeleteByKey(ctx context.Context, key string) error
}

type PostRepo interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id string) (*models.Post, error)
	List(ctx context.Context, filter models.PostFilter) ([]*models.Post, error)
	Delete(ctx context.Context, id string) error
}

type CommentRepo interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
}

type FavoriteRepo interface {
	Add(ctx context.Context, fav *models.Favorite) error
	Exists(ctx context.Context, userID uint64, postID string) (bool, error)
	Remove(ctx context.Context, userID uint64, postID string) (bool, error)
	ListByUser(ctx context.Context, userID uint64) ([]*models.Favorite, error)
}

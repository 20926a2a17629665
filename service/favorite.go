package service

import (
	"context"
	"time"

	"neutalk/models"
	"neutalk/types"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Add(ctx context.Context, callerID uint64, postID string) error
	Remove(ctx context.Context, callerID uint64, postID string) error
	List(ctx context.Context, callerID uint64) ([]*types.FavoriteResponse, error)
}

type FavoriteService struct {
	Favorites FavoriteRepo
	Posts     PostRepo
}

// Add 收藏帖子。重复收藏是幂等的: 不新增记录，也不报错
func (s *FavoriteService) Add(ctx context.Context, callerID uint64, postID string) error {
	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	return s.Favorites.Add(ctx, &models.Favorite{
		UserID:    callerID,
		PostID:    postID,
		CreatedAt: time.Now(),
	})
}

// Remove 取消收藏，该 (user, post) 没有收藏记录时返回 ErrFavoriteNotFound
func (s *FavoriteService) Remove(ctx context.Context, callerID uint64, postID string) error {
	found, err := s.Favorites.Remove(ctx, callerID, postID)
	if err != nil {
		return err
	}
	if !found {
		return ErrFavoriteNotFound
	}
	return nil
}

// List 收藏列表，按收藏时间倒序
func (s *FavoriteService) List(ctx context.Context, callerID uint64) ([]*types.FavoriteResponse, error) {
	favorites, err := s.Favorites.ListByUser(ctx, callerID)
	if err != nil {
		return nil, err
	}

	result := make([]*types.FavoriteResponse, 0, len(favorites))
	for _, fav := range favorites {
		result = append(result, &types.FavoriteResponse{
			ID: fav.ID,
			PostDetail: types.PostResponse{
				PostID:         fav.Post.ID,
				Title:          fav.Post.Title,
				Content:        fav.Post.Content,
				AuthorUsername: fav.Post.Author.Username,
				CreatedAt:      fav.Post.CreatedAt,
			},
		})
	}
	return result, nil
}

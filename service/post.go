package service

import (
	"context"
	"strings"
	"time"

	"neutalk/models"
	"neutalk/types"

	"github.com/google/uuid"
)

var _ IPostService = (*PostService)(nil)

type IPostService interface {
	Create(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (*types.PostResponse, error)
	Detail(ctx context.Context, postID string, callerID uint64) (*types.PostDetail, error)
	Delete(ctx context.Context, callerID uint64, postID string) error
	List(ctx context.Context, filter types.ThreadFilter) ([]*types.PostResponse, error)
}

type PostService struct {
	Posts     PostRepo
	Comments  CommentRepo
	Favorites FavoriteRepo
	Users     UserRepo
}

// Create 发帖，标题和正文必填
func (s *PostService) Create(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (*types.PostResponse, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrPostValidation
	}

	author, err := s.Users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnauthenticated
	}

	post := &models.Post{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  author.ID,
		CreatedAt: time.Now(),
	}
	if err := s.Posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return &types.PostResponse{
		PostID:         post.ID,
		Title:          post.Title,
		Content:        post.Content,
		AuthorUsername: author.Username,
		CreatedAt:      post.CreatedAt,
	}, nil
}

// Detail 帖子详情: 评论时间倒序；callerID 为 0 表示匿名，is_favorite 恒为 false
func (s *PostService) Detail(ctx context.Context, postID string, callerID uint64) (*types.PostDetail, error) {
	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comments, err := s.Comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	isFavorite := false
	if callerID != 0 {
		isFavorite, err = s.Favorites.Exists(ctx, callerID, postID)
		if err != nil {
			return nil, err
		}
	}

	detail := &types.PostDetail{
		PostResponse: types.PostResponse{
			PostID:         post.ID,
			Title:          post.Title,
			Content:        post.Content,
			AuthorUsername: post.Author.Username,
			CreatedAt:      post.CreatedAt,
		},
		Comments:   make([]*types.CommentResponse, 0, len(comments)),
		IsFavorite: isFavorite,
	}
	for _, comment := range comments {
		detail.Comments = append(detail.Comments, &types.CommentResponse{
			UniqueID:       comment.UniqueID,
			PostID:         comment.PostID,
			Content:        comment.Content,
			AuthorUsername: comment.Author.Username,
			CreatedAt:      comment.CreatedAt,
		})
	}
	return detail, nil
}

// Delete 仅作者可删，级联清理评论和收藏
func (s *PostService) Delete(ctx context.Context, callerID uint64, postID string) error {
	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != callerID {
		return ErrPermission
	}
	return s.Posts.Delete(ctx, postID)
}

// List 帖子列表，时间倒序。无法解析的日期条件直接忽略，不报错
func (s *PostService) List(ctx context.Context, filter types.ThreadFilter) ([]*types.PostResponse, error) {
	posts, err := s.Posts.List(ctx, models.PostFilter{
		AuthorName: filter.AuthorName,
		Start:      parseFilterTime(filter.StartDate),
		End:        parseFilterTime(filter.EndDate),
	})
	if err != nil {
		return nil, err
	}

	result := make([]*types.PostResponse, 0, len(posts))
	for _, post := range posts {
		result = append(result, &types.PostResponse{
			PostID:         post.ID,
			Title:          post.Title,
			Content:        post.Content,
			AuthorUsername: post.Author.Username,
			CreatedAt:      post.CreatedAt,
		})
	}
	return result, nil
}

var filterTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseFilterTime(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range filterTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

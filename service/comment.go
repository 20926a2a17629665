package service

import (
	"context"
	"strings"
	"time"

	"neutalk/models"
	"neutalk/types"

	"github.com/google/uuid"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	Add(ctx context.Context, callerID uint64, postID string, req *types.CreateCommentRequest) (*types.CommentResponse, error)
}

type CommentService struct {
	Comments CommentRepo
	Posts    PostRepo
	Users    UserRepo
}

// Add 给存在的帖子追加评论。评论没有更新和单独删除的入口，
// 只随帖子删除一起清理。
func (s *CommentService) Add(ctx context.Context, callerID uint64, postID string, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrCommentValidation
	}

	post, err := s.Posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	author, err := s.Users.FindByID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUnauthenticated
	}

	comment := &models.Comment{
		UniqueID:  uuid.NewString(),
		PostID:    post.ID,
		AuthorID:  author.ID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	if err := s.Comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &types.CommentResponse{
		UniqueID:       comment.UniqueID,
		PostID:         comment.PostID,
		Content:        comment.Content,
		AuthorUsername: author.Username,
		CreatedAt:      comment.CreatedAt,
	}, nil
}

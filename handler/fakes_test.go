package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"

	"neutalk/models"
	"neutalk/types"

	"github.com/gin-gonic/gin"
)

// 函数字段式测试替身

type fakeGuard struct {
	user *models.User
}

func (g *fakeGuard) ResolveToken(_ context.Context, key string) (*models.User, error) {
	if g.user == nil || key == "" {
		return nil, errors.New("invalid token")
	}
	return g.user, nil
}

type fakeAuthService struct {
	register func(ctx context.Context, username, password string) (*models.User, error)
	login    func(ctx context.Context, username, password string) (*models.AuthToken, *models.User, error)
	logout   func(ctx context.Context, key string) error
}

func (f *fakeAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	return f.register(ctx, username, password)
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (*models.AuthToken, *models.User, error) {
	return f.login(ctx, username, password)
}

func (f *fakeAuthService) Logout(ctx context.Context, key string) error {
	return f.logout(ctx, key)
}

func (f *fakeAuthService) ResolveToken(_ context.Context, _ string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

type fakePostService struct {
	create func(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (*types.PostResponse, error)
	detail func(ctx context.Context, postID string, callerID uint64) (*types.PostDetail, error)
	remove func(ctx context.Context, callerID uint64, postID string) error
	list   func(ctx context.Context, filter types.ThreadFilter) ([]*types.PostResponse, error)
}

func (f *fakePostService) Create(ctx context.Context, authorID uint64, req *types.CreatePostRequest) (*types.PostResponse, error) {
	return f.create(ctx, authorID, req)
}

func (f *fakePostService) Detail(ctx context.Context, postID string, callerID uint64) (*types.PostDetail, error) {
	return f.detail(ctx, postID, callerID)
}

func (f *fakePostService) Delete(ctx context.Context, callerID uint64, postID string) error {
	return f.remove(ctx, callerID, postID)
}

func (f *fakePostService) List(ctx context.Context, filter types.ThreadFilter) ([]*types.PostResponse, error) {
	return f.list(ctx, filter)
}

type fakeCommentService struct {
	add func(ctx context.Context, callerID uint64, postID string, req *types.CreateCommentRequest) (*types.CommentResponse, error)
}

func (f *fakeCommentService) Add(ctx context.Context, callerID uint64, postID string, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	return f.add(ctx, callerID, postID, req)
}

type fakeFavoriteService struct {
	add    func(ctx context.Context, callerID uint64, postID string) error
	remove func(ctx context.Context, callerID uint64, postID string) error
	list   func(ctx context.Context, callerID uint64) ([]*types.FavoriteResponse, error)
}

func (f *fakeFavoriteService) Add(ctx context.Context, callerID uint64, postID string) error {
	return f.add(ctx, callerID, postID)
}

func (f *fakeFavoriteService) Remove(ctx context.Context, callerID uint64, postID string) error {
	return f.remove(ctx, callerID, postID)
}

func (f *fakeFavoriteService) List(ctx context.Context, callerID uint64) ([]*types.FavoriteResponse, error) {
	return f.list(ctx, callerID)
}

func doRequest(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

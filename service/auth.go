package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"neutalk/models"
	"neutalk/pkg/encrypt"

	"golang.org/x/crypto/bcrypt"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.AuthToken, *models.User, error)
	Logout(ctx context.Context, key string) error
	ResolveToken(ctx context.Context, key string) (*models.User, error)
}

type AuthService struct {
	Users  UserRepo
	Tokens TokenRepo
}

// Register 注册用户，用户名重复返回 ErrDuplicateUsername
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUserValidation
	}
	if exist, err := s.Users.ExistsByUsername(ctx, username); err != nil {
		return nil, err
	} else if exist {
		return nil, ErrDuplicateUsername
	}

	hash, err := encrypt.HashPassword(password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, ErrPasswordTooLong
		}
		return nil, err
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.Users.Create(ctx, user); err != nil {
		// 并发注册撞唯一索引
		if exist, _ := s.Users.ExistsByUsername(ctx, username); exist {
			return nil, ErrDuplicateUsername
		}
		return nil, err
	}

	return user, nil
}

// Login 校验口令并返回令牌。令牌是 get-or-create 的:
// 重复登录复用同一令牌，直到登出，单用户同时只有一个会话。
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.AuthToken, *models.User, error) {
	user, err := s.Users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, nil, err
	}
	if user == nil || !encrypt.VerifyPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	token, err := s.Tokens.GetOrCreate(ctx, user.ID, newTokenKey())
	if err != nil {
		return nil, nil, err
	}
	return token, user, nil
}

// Logout 删除令牌，之后该令牌一律拒绝
func (s *AuthService) Logout(ctx context.Context, key string) error {
	return s.Tokens.DeleteByKey(ctx, key)
}

// ResolveToken 把请求携带的令牌解析成用户
func (s *AuthService) ResolveToken(ctx context.Context, key string) (*models.User, error) {
	if key == "" {
		return nil, ErrUnauthenticated
	}

	token, err := s.Tokens.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, ErrUnauthenticated
	}

	user, err := s.Users.FindByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}

// newTokenKey 生成 40 位十六进制的不透明令牌
func newTokenKey() string {
	buf := make([]byte, 20)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

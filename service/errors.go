package service

import "errors"

// 领域错误，handler 层统一映射为 HTTP 状态码
var (
	ErrDuplicateUsername  = errors.New("a user with that username is already registered")
	ErrUserValidation     = errors.New("username is required")
	ErrPasswordTooLong    = errors.New("password must be at most 72 bytes")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrPostValidation     = errors.New("title and content are required")
	ErrCommentValidation  = errors.New("content is required")
	ErrPermission         = errors.New("you do not have permission to delete this post")
	ErrPostNotFound       = errors.New("post not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")
)

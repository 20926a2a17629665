package handler

import (
	"errors"
	"net/http"

	"neutalk/pkg/response"
	"neutalk/service"
)

// asHTTPError 把领域错误映射为带状态码的业务错误。
// 重复用户名按原有线上契约返回 400 而不是 409。
func asHTTPError(err error) error {
	switch {
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrUserValidation),
		errors.Is(err, service.ErrPasswordTooLong),
		errors.Is(err, service.ErrPostValidation),
		errors.Is(err, service.ErrCommentValidation):
		return response.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUnauthenticated):
		return response.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrPermission):
		return response.NewError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrPostNotFound),
		errors.Is(err, service.ErrFavoriteNotFound):
		return response.NewError(http.StatusNotFound, err.Error())
	default:
		return response.NewError(http.StatusInternalServerError, err.Error())
	}
}

package handler

import (
	"net/http"

	"neutalk/middleware"
	"neutalk/pkg/context"
	"neutalk/pkg/response"
	"neutalk/service"
	"neutalk/types"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	AuthService service.IAuthService
	Guard       middleware.Guard
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Guard)
	r.POST("/register", context.Wrap(h.Register))
	r.POST("/login", context.Wrap(h.Login))
	r.POST("/logout", authorize, context.Wrap(h.Logout))
}

// Register 注册
func (h *Auth) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "username and password are required")
	}

	user, err := h.AuthService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, types.UserResponse{Username: user.Username})
	return nil
}

// Login 登录，令牌在登出前保持不变
func (h *Auth) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request")
	}

	token, user, err := h.AuthService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, types.LoginResponse{
		Username: user.Username,
		Token:    token.Key,
	})
	return nil
}

// Logout 删除当前令牌
func (h *Auth) Logout(c *gin.Context) error {
	key, err := context.GetToken(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.AuthService.Logout(c.Request.Context(), key); err != nil {
		return response.NewError(http.StatusInternalServerError, err.Error())
	}

	response.Success(c, types.MessageResponse{Message: "Successfully logged out."})
	return nil
}

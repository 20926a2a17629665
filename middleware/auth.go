package middleware

import (
	"context"
	"net/http"
	"strings"

	"neutalk/models"
	"neutalk/pkg/response"

	"github.com/gin-gonic/gin"
)

// Guard 把不透明令牌解析成用户，由 service.AuthService 实现
type Guard interface {
	ResolveToken(ctx context.Context, key string) (*models.User, error)
}

// Auth 强制鉴权: 没有有效令牌直接 401
func Auth(g Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}

		user, err := g.ResolveToken(c.Request.Context(), key)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("token_key", key)

		c.Next()
	}
}

// OptionalAuth 可选鉴权: 令牌缺失或无效时按匿名继续
func OptionalAuth(g Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		user, err := g.ResolveToken(c.Request.Context(), key)
		if err != nil {
			c.Next()
			return
		}

		c.Set("user_id", user.ID)
		c.Set("username", user.Username)
		c.Set("token_key", key)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

package middleware

import (
	"time"

	"neutalk/pkg/context"
	"neutalk/pkg/log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 访问日志，已登录请求附带用户名
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if username, err := context.GetUsername(c); err == nil && username != "" {
			fields = append(fields, zap.String("user", username))
		}
		log.L.Info("http request", fields...)
	}
}

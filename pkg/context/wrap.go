package context

import (
	"errors"
	"net/http"

	"neutalk/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxToken    = "token_key"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			response.Fail(c, http.StatusInternalServerError, err.Error())
		}
	}
}

func GetUserID(c *gin.Context) (uint64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(uint64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

func GetUsername(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUsername)
	if !ok {
		return "", errors.New("username 不存在")
	}
	name, _ := v.(string)
	return name, nil
}

func GetToken(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxToken)
	if !ok {
		return "", errors.New("token 不存在")
	}
	key, _ := v.(string)
	return key, nil
}

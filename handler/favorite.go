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

type Favorite struct {
	FavoriteService service.IFavoriteService
	Guard           middleware.Guard
}

func (h *Favorite) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Guard)
	r.GET("/favorites", authorize, context.Wrap(h.List))
	r.POST("/favorites/add/:post_id", authorize, context.Wrap(h.Add))
	r.DELETE("/favorites/remove/:post_id", authorize, context.Wrap(h.Remove))
}

// Add 收藏，重复收藏幂等
func (h *Favorite) Add(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.FavoriteService.Add(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		return asHTTPError(err)
	}

	response.Success(c, types.MessageResponse{Message: "Post added to favorites"})
	return nil
}

// Remove 取消收藏
func (h *Favorite) Remove(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.FavoriteService.Remove(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		return asHTTPError(err)
	}

	response.Success(c, types.MessageResponse{Message: "Post removed from favorites"})
	return nil
}

// List 收藏列表
func (h *Favorite) List(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	favorites, err := h.FavoriteService.List(c.Request.Context(), userID)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, favorites)
	return nil
}

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

type Post struct {
	PostService    service.IPostService
	CommentService service.ICommentService
	Guard          middleware.Guard
}

func (h *Post) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Guard)
	r.POST("/new", authorize, context.Wrap(h.Create))
	r.GET("/posts/:post_id", middleware.OptionalAuth(h.Guard), context.Wrap(h.Detail))
	r.POST("/posts/:post_id", authorize, context.Wrap(h.AddComment))
	r.DELETE("/posts/delete/:post_id", authorize, context.Wrap(h.Delete))
	r.GET("/threads", authorize, context.Wrap(h.List))
}

// Create 发帖
func (h *Post) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	post, err := h.PostService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, post)
	return nil
}

// Detail 帖子详情，匿名可读，is_favorite 只对登录用户有意义
func (h *Post) Detail(c *gin.Context) error {
	callerID, _ := context.GetUserID(c)

	detail, err := h.PostService.Detail(c.Request.Context(), c.Param("post_id"), callerID)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, detail)
	return nil
}

// AddComment 评论
func (h *Post) AddComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.CommentService.Add(c.Request.Context(), userID, c.Param("post_id"), &req)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, comment)
	return nil
}

// Delete 删帖，仅作者
func (h *Post) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "authentication required")
	}

	if err := h.PostService.Delete(c.Request.Context(), userID, c.Param("post_id")); err != nil {
		return asHTTPError(err)
	}

	response.Success(c, types.MessageResponse{Message: "Post deleted successfully"})
	return nil
}

// List 帖子列表，支持 author_name / start_date / end_date 筛选
func (h *Post) List(c *gin.Context) error {
	var filter types.ThreadFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		return response.NewError(http.StatusBadRequest, "invalid query")
	}

	posts, err := h.PostService.List(c.Request.Context(), filter)
	if err != nil {
		return asHTTPError(err)
	}

	response.Success(c, posts)
	return nil
}

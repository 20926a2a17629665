package types

import "time"

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostResponse struct {
	PostID         string    `json:"post_id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}

// PostDetail 帖子详情: 帖子字段平铺 + 评论列表 + 收藏标记
type PostDetail struct {
	PostResponse
	Comments   []*CommentResponse `json:"comments"`
	IsFavorite bool               `json:"is_favorite"`
}

// ThreadFilter 均为可选，日期解析失败时忽略该条件
type ThreadFilter struct {
	AuthorName string `form:"author_name"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
}

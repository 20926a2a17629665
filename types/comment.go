package types

import "time"

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	UniqueID       string    `json:"unique_id"`
	PostID         string    `json:"post_id"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username"`
	CreatedAt      time.Time `json:"created_at"`
}

package types

type FavoriteResponse struct {
	ID         uint64       `json:"id"`
	PostDetail PostResponse `json:"post_detail"`
}

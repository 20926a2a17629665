package server

import (
	"neutalk/handler"
)

type Handlers struct {
	Auth     *handler.Auth
	Post     *handler.Post
	Favorite *handler.Favorite
}

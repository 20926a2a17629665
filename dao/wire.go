//go:build wireinject

package dao

import (
	"neutalk/service"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	wire.Bind(new(service.UserRepo), new(*Users)),
	NewTokens,
	wire.Bind(new(service.TokenRepo), new(*Tokens)),
	NewPosts,
	wire.Bind(new(service.PostRepo), new(*Posts)),
	NewComments,
	wire.Bind(new(service.CommentRepo), new(*Comments)),
	NewFavorites,
	wire.Bind(new(service.FavoriteRepo), new(*Favorites)),
)

//go:build wireinject
// +build wireinject

package main

import (
	"neutalk/config"
	"neutalk/dao"
	"neutalk/handler"
	"neutalk/pkg/database"
	"neutalk/server"
	"neutalk/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,

		dao.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Favorite), "*"),

		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}

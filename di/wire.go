//go:build wireinject
// +build wireinject

package di

import (
	"tatzy/config"
	"tatzy/infras/jwt"
	"tatzy/infras/otel"
	"tatzy/infras/postgres"
	"tatzy/infras/redis"
	"tatzy/shared/cache"
	"tatzy/transport/function"
	"tatzy/transport/http"
	"tatzy/transport/http/middleware"
	"tatzy/transport/http/router"

	bookingRepository "tatzy/internal/domains/booking/repository"
	bookingService "tatzy/internal/domains/booking/service"
	bookingHandler "tatzy/internal/handlers/booking"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAdminMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	bookingDomain,
)

var handlers = wire.NewSet(
	bookingHandler.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	wire.Struct(new(router.Middlewares), "*"),
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		handlers,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeFunctions() *function.Routes {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		handlers,
		function.New,
	)

	return &function.Routes{}
}

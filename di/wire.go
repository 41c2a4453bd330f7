//go:build wireinject
// +build wireinject

package di

import (
	"slotbook/config"
	"slotbook/infras/kafka"
	"slotbook/infras/otel"
	"slotbook/infras/redis"
	"slotbook/shared/cache"
	"slotbook/transport/http"
	"slotbook/transport/http/middleware"
	"slotbook/transport/http/router"

	catalogRepository "slotbook/internal/domains/catalog/repository"
	catalogService "slotbook/internal/domains/catalog/service"
	catalogHandler "slotbook/internal/handlers/catalog"

	"slotbook/internal/domains/reservation/event"
	"slotbook/internal/domains/reservation/ledger"
	reservationService "slotbook/internal/domains/reservation/service"
	reservationHandler "slotbook/internal/handlers/reservation"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewFromConfig,
	catalogService.New,
)

var reservationDomain = wire.NewSet(
	NewLedger,
	wire.Bind(new(reservationService.Ledger), new(*ledger.Ledger)),
	event.New,
	reservationService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	catalogHandler.New,
	reservationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

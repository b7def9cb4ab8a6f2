//go:build wireinject
// +build wireinject

package di

import (
	"summit/config"
	"summit/infras/jwt"
	"summit/infras/kafka"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/infras/redis"
	"summit/infras/s3"
	"summit/permissions"
	"summit/shared/cache"
	"summit/transport/http"
	"summit/transport/http/middleware"
	"summit/transport/http/router"
	"summit/transport/worker"

	"github.com/google/wire"

	adventureRepository "summit/internal/domains/adventure/repository"
	adventureService "summit/internal/domains/adventure/service"
	bookingRepository "summit/internal/domains/booking/repository"
	bookingService "summit/internal/domains/booking/service"
	guideRepository "summit/internal/domains/guide/repository"
	guideService "summit/internal/domains/guide/service"
	mediaRepository "summit/internal/domains/media/repository"
	mediaService "summit/internal/domains/media/service"
	porterRepository "summit/internal/domains/porter/repository"
	porterService "summit/internal/domains/porter/service"
	ratingRepository "summit/internal/domains/rating/repository"
	ratingService "summit/internal/domains/rating/service"
	reviewRepository "summit/internal/domains/review/repository"
	reviewService "summit/internal/domains/review/service"

	adventureHandler "summit/internal/handlers/adventure"
	bookingHandler "summit/internal/handlers/booking"
	guideHandler "summit/internal/handlers/guide"
	mediaHandler "summit/internal/handlers/media"
	porterHandler "summit/internal/handlers/porter"
	ratingHandler "summit/internal/handlers/rating"
	reviewHandler "summit/internal/handlers/review"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	adventureRepository.New,
	adventureService.New,
	guideRepository.New,
	guideService.New,
	porterRepository.New,
	porterService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewRefundPolicy,
	bookingService.New,
)

var ratingDomain = wire.NewSet(
	ratingRepository.New,
	ratingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
	NewEventPublisher,
)

var mediaDomain = wire.NewSet(
	mediaRepository.New,
	mediaService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	bookingDomain,
	ratingDomain,
	reviewDomain,
	mediaDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	adventureHandler.New,
	guideHandler.New,
	porterHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	ratingHandler.New,
	mediaHandler.New,
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

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		ratingDomain,
		reviewRepository.New,
		NewKafkaBus,
		worker.New,
	)

	return &worker.Worker{}
}

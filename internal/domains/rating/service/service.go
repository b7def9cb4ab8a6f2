package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/internal/domains/rating"
	"summit/internal/domains/rating/model/dto"
	"summit/internal/domains/rating/repository"
	reviewModel "summit/internal/domains/review/model"
	reviewRepo "summit/internal/domains/review/repository"
	"summit/internal/events"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gModel "summit/shared/model"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const cacheGetRating = "rating:get"

type Rating interface {
	Recompute(ctx context.Context, target reviewModel.Target) (dto.RatingResponse, error)
	HandleReviewEvent(ctx context.Context, event events.ReviewEvent) error
	Get(ctx context.Context, target reviewModel.Target) (dto.RatingResponse, error)
}

type serviceImpl struct {
	repo       repository.Rating
	reviewRepo reviewRepo.Review
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Rating,
	reviewRepo reviewRepo.Review,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Rating {
	return &serviceImpl{
		repo:       repo,
		reviewRepo: reviewRepo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func cacheKey(target reviewModel.Target) string {
	return shared.BuildCacheKey(cacheGetRating, string(target.Kind()), target.ID())
}

// Recompute rebuilds the target's aggregate from all of its reviews. The read and the write
// happen under the target's advisory lock, so the last committed recomputation sees every review.
func (s *serviceImpl) Recompute(ctx context.Context, target reviewModel.Target) (res dto.RatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Recompute")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("rating.target", reviewModel.TargetKey(target))

	var aggregate rating.Aggregate

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.Lock(ctx, tx, target); err != nil {
			return err //nolint:wrapcheck
		}

		reviews, err := s.reviewRepo.GetAllByTarget(ctx, tx, target)
		if err != nil {
			return err //nolint:wrapcheck
		}

		scores := make([]rating.Score, len(reviews))
		for i, review := range reviews {
			scores[i] = rating.Score{Rating: review.Rating, Criteria: review.Breakdown.V}
		}

		aggregate = rating.Compute(scores, target.Kind().Criteria())

		return s.repo.Save(ctx, tx, target, aggregate) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("target", reviewModel.TargetKey(target)).Msg("failed to recompute rating")

		return res, err //nolint:wrapcheck
	}

	res.FromModel(target, gModel.Rating{
		RatingAverage:   aggregate.Average,
		RatingCount:     aggregate.Count,
		RatingBreakdown: gModel.NewJSON(aggregate.Criteria),
	})

	// Dropped rather than re-saved: a later recompute may already have committed.
	if err := s.cache.Delete(ctx, cacheKey(target)); err != nil {
		log.Error().Err(err).Str("target", reviewModel.TargetKey(target)).Msg("failed to drop cached rating")
	}

	return res, nil
}

// HandleReviewEvent recomputes the rating of the reviewed entity. Events naming an unknown
// target are dropped since no retry can make them valid.
func (s *serviceImpl) HandleReviewEvent(ctx context.Context, event events.ReviewEvent) error {
	target, err := reviewModel.NewTarget(event.TargetType, event.TargetID)
	if err != nil {
		log.Warn().Err(err).Str("eventID", event.EventID).Msg("dropping review event with invalid target")

		return nil
	}

	if _, err = s.Recompute(ctx, target); err != nil {
		return fmt.Errorf("failed to handle %s: %w", event.Type, err)
	}

	log.Info().Str("eventID", event.EventID).Str("target", event.Key()).Msg("rating recomputed")

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, target reviewModel.Target) (res dto.RatingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRating")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := cacheKey(target)

	if err = s.cache.Get(ctx, key, &res); err == nil {
		return res, nil
	}

	stored, err := s.repo.Get(ctx, target)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.FromModel(target, stored)

	if err := s.cache.Save(ctx, key, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save rating to cache")
	}

	return res, nil
}

package service

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/internal/domains/guide/model"
	"summit/internal/domains/guide/model/dto"
	"summit/internal/domains/guide/repository"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetGuide    = "guide:get"
	cacheGetAllGuide = "guide:gets"
)

type Guide interface {
	Register(ctx context.Context, req dto.RegisterGuideRequest) (dto.GuideResponse, error)
	Get(ctx context.Context, id string) (dto.GuideResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuidesResponse, error)
}

type serviceImpl struct {
	repo  repository.Guide
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guide, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guide {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Register creates the guide profile of the calling account.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterGuideRequest) (res dto.GuideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, role := shared.UserFromContext(ctx)
	if role != constant.RoleGuide || user == constant.Empty {
		return res, failure.Forbidden("only guide accounts can register a guide profile") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(user, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guide exists")

		return res, fmt.Errorf("failed to check if guide exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("guide profile already registered") // nolint:wrapcheck
	}

	profile := req.ToModel(user)

	if err = s.repo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to register guide")

		return res, fmt.Errorf("failed to register guide: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllGuide)
	}()

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuideResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGuide, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guide")

		return res, nil
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get guide")

		return res, fmt.Errorf("failed to get guide: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("guide not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guide to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuidesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuide, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for guides")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guides")

		return res, fmt.Errorf("failed to count guides: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guides")

		return res, fmt.Errorf("failed to get guides: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guides to cache")
		}
	}()

	return res, nil
}

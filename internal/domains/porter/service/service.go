package service

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/internal/domains/porter/model"
	"summit/internal/domains/porter/model/dto"
	"summit/internal/domains/porter/repository"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetPorter    = "porter:get"
	cacheGetAllPorter = "porter:gets"
)

type Porter interface {
	Register(ctx context.Context, req dto.RegisterPorterRequest) (dto.PorterResponse, error)
	Get(ctx context.Context, id string) (dto.PorterResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPortersResponse, error)
}

type serviceImpl struct {
	repo  repository.Porter
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Porter, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Porter {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Register creates the porter profile of the calling account.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterPorterRequest) (res dto.PorterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, role := shared.UserFromContext(ctx)
	if role != constant.RolePorter || user == constant.Empty {
		return res, failure.Forbidden("only porter accounts can register a porter profile") // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(user, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if porter exists")

		return res, fmt.Errorf("failed to check if porter exists: %w", err)
	}

	if exist {
		return res, failure.Conflict("porter profile already registered") // nolint:wrapcheck
	}

	profile := req.ToModel(user)

	if err = s.repo.Insert(ctx, profile); err != nil {
		log.Error().Err(err).Msg("failed to register porter")

		return res, fmt.Errorf("failed to register porter: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllPorter)
	}()

	res.FromModel(profile)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PorterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetPorter, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for porter")

		return res, nil
	}

	profile, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get porter")

		return res, fmt.Errorf("failed to get porter: %w", err)
	}

	if profile.ID == constant.Empty {
		return res, failure.NotFound("porter not found") // nolint:wrapcheck
	}

	res.FromModel(profile)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save porter to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPortersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPorter, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for porters")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count porters")

		return res, fmt.Errorf("failed to count porters: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get porters")

		return res, fmt.Errorf("failed to get porters: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save porters to cache")
		}
	}()

	return res, nil
}

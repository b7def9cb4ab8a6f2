package service

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/internal/domains/adventure/model"
	"summit/internal/domains/adventure/model/dto"
	"summit/internal/domains/adventure/repository"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAdventure      = "adventure:get"
	cacheGetAllAdventure   = "adventure:gets"
	cacheGetGearProvider   = "gear_provider:get"
	cacheCheckAvailability = "adventure:availability"
)

type Adventure interface {
	Create(ctx context.Context, req dto.CreateAdventureRequest) (dto.AdventureResponse, error)
	Get(ctx context.Context, id string) (dto.AdventureResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAdventuresResponse, error)
	AddWindow(ctx context.Context, id string, req dto.CreateWindowRequest) error
	AddBlackout(ctx context.Context, id string, req dto.CreateBlackoutRequest) error
	CheckAvailability(ctx context.Context, id, startDate, endDate string) (dto.AvailabilityResponse, error)
	CreateGearProvider(ctx context.Context, req dto.CreateGearProviderRequest) (dto.GearProviderResponse, error)
	GetGearProvider(ctx context.Context, id string) (dto.GearProviderResponse, error)
}

type serviceImpl struct {
	repo  repository.Adventure
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Adventure, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Adventure {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAdventureRequest) (res dto.AdventureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, role := shared.UserFromContext(ctx)
	if role != constant.RoleProvider && role != constant.RoleAdmin {
		return res, failure.Forbidden("only providers can publish adventures") // nolint:wrapcheck
	}

	adventure := req.ToModel(user)

	if err = s.repo.Insert(ctx, adventure); err != nil {
		log.Error().Err(err).Msg("failed to create adventure")

		return res, fmt.Errorf("failed to create adventure: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllAdventure)
	}()

	res.FromModel(adventure)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AdventureResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetAdventure, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for adventure")

		return res, nil
	}

	adventure, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(adventure)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save adventure to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAdventuresResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAdventure, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for adventures")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count adventures")

		return res, fmt.Errorf("failed to count adventures: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get adventures")

		return res, fmt.Errorf("failed to get adventures: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save adventures to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) AddWindow(ctx context.Context, id string, req dto.CreateWindowRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddWindow")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.authorizeOwner(ctx, id)
	if err != nil {
		return err
	}

	window, err := req.ToModel(id, user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if window.StartDate.After(window.EndDate) {
		return failure.BadRequestFromString("start_date must not be after end_date") // nolint:wrapcheck
	}

	if err = s.repo.InsertWindow(ctx, window); err != nil {
		log.Error().Err(err).Msg("failed to add availability window")

		return fmt.Errorf("failed to add availability window: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheCheckAvailability, id))
	}()

	return nil
}

func (s *serviceImpl) AddBlackout(ctx context.Context, id string, req dto.CreateBlackoutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddBlackout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.authorizeOwner(ctx, id)
	if err != nil {
		return err
	}

	blackout, err := req.ToModel(id, user)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.InsertBlackout(ctx, blackout); err != nil {
		log.Error().Err(err).Msg("failed to add blackout date")

		return fmt.Errorf("failed to add blackout date: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheCheckAvailability, id))
	}()

	return nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, id, startDate, endDate string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := dto.ParseRange(startDate, endDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheCheckAvailability, id, startDate, endDate)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if adventure exists")

		return res, fmt.Errorf("failed to check if adventure exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("adventure not found") // nolint:wrapcheck
	}

	calendar, err := s.repo.GetCalendar(ctx, id, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get adventure calendar")

		return res, fmt.Errorf("failed to get adventure calendar: %w", err)
	}

	res = dto.AvailabilityResponse{
		AdventureID: id,
		StartDate:   startDate,
		EndDate:     endDate,
		Result:      calendar.Check(start, end),
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateGearProvider(ctx context.Context, req dto.CreateGearProviderRequest) (res dto.GearProviderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateGearProvider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, role := shared.UserFromContext(ctx)
	if role != constant.RoleProvider && role != constant.RoleAdmin {
		return res, failure.Forbidden("only providers can register gear rental") // nolint:wrapcheck
	}

	provider := req.ToModel(user)

	if err = s.repo.InsertGearProvider(ctx, provider); err != nil {
		log.Error().Err(err).Msg("failed to create gear provider")

		return res, fmt.Errorf("failed to create gear provider: %w", err)
	}

	res.FromModel(provider)

	return res, nil
}

func (s *serviceImpl) GetGearProvider(ctx context.Context, id string) (res dto.GearProviderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGearProvider")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGearProvider, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	provider, err := s.repo.GetGearProvider(ctx, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get gear provider")

		return res, fmt.Errorf("failed to get gear provider: %w", err)
	}

	if provider.ID == constant.Empty {
		return res, failure.NotFound("gear provider not found") // nolint:wrapcheck
	}

	res.FromModel(provider)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save gear provider to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Adventure, error) {
	adventure, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get adventure")

		return adventure, fmt.Errorf("failed to get adventure: %w", err)
	}

	if adventure.ID == constant.Empty {
		return adventure, failure.NotFound("adventure not found") // nolint:wrapcheck
	}

	return adventure, nil
}

// authorizeOwner lets the adventure's provider or an admin manage its calendar.
func (s *serviceImpl) authorizeOwner(ctx context.Context, id string) (string, error) {
	user, role := shared.UserFromContext(ctx)

	adventure, err := s.find(ctx, id)
	if err != nil {
		return user, err
	}

	if role != constant.RoleAdmin && adventure.ProviderID != user {
		return user, failure.Forbidden("only the adventure's provider can change its calendar") // nolint:wrapcheck
	}

	return user, nil
}

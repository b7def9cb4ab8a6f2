package service

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/infras/s3"
	adventureModel "summit/internal/domains/adventure/model"
	adventureRepo "summit/internal/domains/adventure/repository"
	"summit/internal/domains/media/model"
	"summit/internal/domains/media/model/dto"
	"summit/internal/domains/media/repository"
	reviewModel "summit/internal/domains/review/model"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPhotos   = "photo:gets"
	cacheCountPhotos = "photo:count"
)

type Media interface {
	Upload(ctx context.Context, req dto.UploadPhotoRequest) (dto.PhotoResponse, error)
	GetAll(ctx context.Context, owner reviewModel.Target, req gDto.QueryParams) (dto.GetPhotosResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Photo
	adventureRepo adventureRepo.Adventure
	storage       s3.S3
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Photo,
	adventureRepo adventureRepo.Adventure,
	storage s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Media {
	return &serviceImpl{
		repo:          repo,
		adventureRepo: adventureRepo,
		storage:       storage,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Upload stores the file and then its row. A failed insert removes the stored object again.
func (s *serviceImpl) Upload(ctx context.Context, req dto.UploadPhotoRequest) (res dto.PhotoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := reviewModel.NewTarget(req.OwnerType, req.OwnerID)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user, err := s.authorize(ctx, owner)
	if err != nil {
		return res, err
	}

	id := uuid.NewString()
	key := req.ObjectKey(owner, id)

	url, err := s.storage.Upload(ctx, key, req.File.Header.Get(constant.RequestHeaderContentType), req.Content)
	if err != nil {
		return res, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := req.ToModel(id, owner, url, user)

	if err = s.repo.Insert(ctx, photo); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to save photo, removing stored object")

		if delErr := s.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			log.Error().Err(delErr).Str("key", key).Msg("failed to remove orphaned photo")
		}

		return res, fmt.Errorf("failed to save photo: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(photo)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, owner reviewModel.Target, req gDto.QueryParams) (res dto.GetPhotosResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := ownerFilter(owner)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetPhotos, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count photos: %w", err)
	}

	photos, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get photos: %w", err)
	}

	res.FromModels(photos, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save photos to cache")
		}
	}()

	return res, nil
}

// Delete removes the row first; the stored object is cleaned up in the background.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	photo, err := s.repo.Get(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to get photo: %w", err)
	}

	if photo.ID == constant.Empty {
		return failure.NotFound("photo not found") // nolint:wrapcheck
	}

	owner, err := reviewModel.NewTarget(photo.OwnerType, photo.OwnerID)
	if err != nil {
		return fmt.Errorf("photo %s has an invalid owner: %w", id, err)
	}

	if _, err = s.authorize(ctx, owner); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		return fmt.Errorf("failed to delete photo: %w", err)
	}

	s.invalidate(ctx)

	go func() {
		key := photo.ObjectKey
		if key == constant.Empty {
			key = s.storage.ObjectKeyFromURL(photo.URL)
		}

		if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to delete photo object")
		}
	}()

	return nil
}

// authorize allows administrators and whoever owns the page the photo belongs to.
func (s *serviceImpl) authorize(ctx context.Context, owner reviewModel.Target) (string, error) {
	user, role := shared.UserFromContext(ctx)

	var account string

	switch owner.Kind() {
	case reviewModel.KindAdventure:
		adventure, err := s.adventureRepo.Get(ctx, shared.FilterByID(owner.ID(), adventureModel.FieldID, adventureModel.TableName))
		if err != nil {
			return user, fmt.Errorf("failed to get adventure: %w", err)
		}

		if adventure.ID == constant.Empty {
			return user, failure.NotFound("adventure not found") // nolint:wrapcheck
		}

		account = adventure.ProviderID
	case reviewModel.KindGearProvider:
		provider, err := s.adventureRepo.GetGearProvider(ctx, owner.ID())
		if err != nil {
			return user, fmt.Errorf("failed to get gear provider: %w", err)
		}

		if provider.ID == constant.Empty {
			return user, failure.NotFound("gear provider not found") // nolint:wrapcheck
		}

		account = provider.OwnerID
	default:
		// guide and porter profiles share their account id
		account = owner.ID()
	}

	if role != constant.RoleAdmin && (user == constant.Empty || user != account) {
		return user, failure.Forbidden("only the owner of this page can change its photos") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetPhotos)
		shared.InvalidateCaches(c, s.cache, cacheCountPhotos)
	}()
}

func ownerFilter(owner reviewModel.Target) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldOwnerType, Operator: gDto.FilterOperatorEq, Value: string(owner.Kind()), Table: model.TableName},
			gDto.Filter{Field: model.FieldOwnerID, Operator: gDto.FilterOperatorEq, Value: owner.ID(), Table: model.TableName},
		},
	}
}

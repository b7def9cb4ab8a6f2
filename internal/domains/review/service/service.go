package service

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/internal/domains/booking/lifecycle"
	bookingModel "summit/internal/domains/booking/model"
	bookingRepo "summit/internal/domains/booking/repository"
	ratingDto "summit/internal/domains/rating/model/dto"
	ratingService "summit/internal/domains/rating/service"
	"summit/internal/domains/review/model"
	"summit/internal/domains/review/model/dto"
	"summit/internal/domains/review/repository"
	"summit/internal/events"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
	gModel "summit/shared/model"
	"summit/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReview    = "review:get"
	cacheGetAllReview = "review:gets"
	cacheCountReview  = "review:count"
)

type Review interface {
	Submit(ctx context.Context, req dto.SubmitReviewRequest) (dto.SubmitReviewResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (dto.ReviewResponse, error)
	Delete(ctx context.Context, id string) error
	MarkHelpful(ctx context.Context, id string, helpful bool) (dto.ReviewResponse, error)
	Get(ctx context.Context, id string) (dto.ReviewResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReviewsResponse, error)
}

type serviceImpl struct {
	repo        repository.Review
	bookingRepo bookingRepo.Booking
	ratings     ratingService.Rating
	publisher   events.Publisher
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Review,
	bookingRepo bookingRepo.Booking,
	ratings ratingService.Rating,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Review {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		ratings:     ratings,
		publisher:   publisher,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Submit stores the customer's review of one party of a completed booking.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitReviewRequest) (res dto.SubmitReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := shared.UserFromContext(ctx)

	target, err := model.NewTarget(req.TargetType, req.TargetID)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if user == constant.Empty || booking.CustomerID != user {
		return res, failure.Forbidden("only the customer of the booking can review it") // nolint:wrapcheck
	}

	if booking.Lifecycle() != lifecycle.StatusCompleted {
		return res, failure.BookingNotCompleted("reviews open once the trip is completed, the booking is " + booking.Status) // nolint:wrapcheck
	}

	if !partOf(target, booking) {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s %s is not part of booking %s", target.Kind(), target.ID(), booking.BookingNumber)) // nolint:wrapcheck
	}

	overall, err := model.OverallRating(target.Kind(), req.Rating, req.Breakdown)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldReviewerID, Operator: gDto.FilterOperatorEq, Value: user, Table: model.TableName},
			gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: booking.ID, Table: model.TableName},
			model.TargetFilter(target),
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing review")

		return res, fmt.Errorf("failed to check existing review: %w", err)
	}

	if exist {
		return res, failure.DuplicateReview("this booking already has a review for the " + string(target.Kind())) // nolint:wrapcheck
	}

	review := req.ToModel(user, overall)

	if err = s.repo.Insert(ctx, review); err != nil {
		log.Error().Err(err).Msg("failed to insert review")

		if failure.IsReason(err, failure.ReasonDuplicateReview) {
			return res, err
		}

		return res, fmt.Errorf("failed to insert review: %w", err)
	}

	s.publish(ctx, events.ReviewCreated, review)
	s.invalidate(ctx, constant.Empty)

	res.Review.FromModel(review)
	res.TargetRating = s.currentRating(ctx, target)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateReviewRequest) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := shared.UserFromContext(ctx)

	review, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if review.ReviewerID != user {
		return res, failure.Forbidden("only the author can edit a review") // nolint:wrapcheck
	}

	target, err := review.Target()
	if err != nil {
		return res, fmt.Errorf("stored review has an invalid target: %w", err)
	}

	if req.Rating > 0 || len(req.Breakdown) > 0 {
		review.Rating, err = model.OverallRating(target.Kind(), req.Rating, req.Breakdown)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		breakdown := req.Breakdown
		if breakdown == nil {
			breakdown = map[string]int{}
		}

		review.Breakdown = gModel.NewJSON(breakdown)
	}

	if req.Title != nil {
		review.Title = *req.Title
	}

	if req.Body != nil {
		review.Body = *req.Body
	}

	review.ModifiedAt = timezone.Now()
	review.ModifiedBy = user

	mod := map[string]any{
		model.FieldRating:        review.Rating,
		model.FieldBreakdown:     review.Breakdown,
		model.FieldTitle:         review.Title,
		model.FieldBody:          review.Body,
		constant.FieldModifiedAt: review.ModifiedAt,
		constant.FieldModifiedBy: review.ModifiedBy,
	}

	if err = s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update review")

		return res, fmt.Errorf("failed to update review: %w", err)
	}

	s.publish(ctx, events.ReviewUpdated, review)
	s.invalidate(ctx, id)

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, role := shared.UserFromContext(ctx)

	review, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if review.ReviewerID != user && role != constant.RoleAdmin {
		return failure.Forbidden("only the author or an administrator can delete a review") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete review")

		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.publish(ctx, events.ReviewDeleted, review)
	s.invalidate(ctx, id)

	return nil
}

// MarkHelpful records one helpfulness vote.
func (s *serviceImpl) MarkHelpful(ctx context.Context, id string, helpful bool) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkHelpful")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.IncrementVote(ctx, id, helpful); err != nil {
		if failure.IsReason(err, failure.ReasonNotFound) {
			return res, err
		}

		return res, fmt.Errorf("failed to record vote: %w", err)
	}

	review, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, id)

	res.FromModel(review)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReviewResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReview, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	review, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(review)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReviewsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReview, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	countKey := shared.BuildCacheKeyWithQuery(cacheCountReview, req, filter)

	var total int
	if err = s.cache.Get(ctx, countKey, &total); err != nil {
		total, err = s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count reviews")

			return res, fmt.Errorf("failed to count reviews: %w", err)
		}
	}

	reviews, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reviews")

		return res, fmt.Errorf("failed to get reviews: %w", err)
	}

	res.FromModels(reviews, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, countKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save review count to cache")
		}

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reviews to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Review, error) {
	review, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get review")

		return review, fmt.Errorf("failed to get review: %w", err)
	}

	if review.ID == constant.Empty {
		return review, failure.NotFound("review not found") // nolint:wrapcheck
	}

	return review, nil
}

// publish announces a review change. The review is already stored, so a failed publish is
// only logged and the rating can be rebuilt through the recompute endpoint.
func (s *serviceImpl) publish(ctx context.Context, eventType events.ReviewEventType, review model.Review) {
	event := events.NewReviewEvent(eventType, review.ID, review.BookingID, review.TargetType, review.TargetID, timezone.Now())

	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Error().Err(err).Str("eventID", event.EventID).Str("type", string(eventType)).Msg("failed to publish review event")
	}
}

func (s *serviceImpl) currentRating(ctx context.Context, target model.Target) ratingDto.RatingResponse {
	current, err := s.ratings.Get(ctx, target)
	if err != nil {
		log.Error().Err(err).Str("target", model.TargetKey(target)).Msg("failed to read rating after review")

		current = ratingDto.RatingResponse{TargetType: string(target.Kind()), TargetID: target.ID()}
	}

	return current
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReview, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete review from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReview)
		shared.InvalidateCaches(c, s.cache, cacheCountReview)
	}()
}

// partOf reports whether target is one of the parties bound to booking.
func partOf(target model.Target, booking bookingModel.Booking) bool {
	matches := func(id *string) bool { return id != nil && *id == target.ID() }

	switch t := target.(type) {
	case model.GuideTarget:
		return matches(booking.GuideID)
	case model.PorterTarget:
		return matches(booking.PorterID)
	case model.AdventureTarget:
		return booking.AdventureID == t.AdventureID
	case model.GearProviderTarget:
		return matches(booking.GearProviderID)
	default:
		return false
	}
}

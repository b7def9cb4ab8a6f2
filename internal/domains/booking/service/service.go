package service

import (
	"context"
	"fmt"
	"summit/config"
	"summit/infras/otel"
	"summit/infras/postgres"
	adventureModel "summit/internal/domains/adventure/model"
	adventureDto "summit/internal/domains/adventure/model/dto"
	adventureRepo "summit/internal/domains/adventure/repository"
	"summit/internal/domains/booking/cancellation"
	"summit/internal/domains/booking/lifecycle"
	"summit/internal/domains/booking/model"
	"summit/internal/domains/booking/model/dto"
	"summit/internal/domains/booking/pricing"
	"summit/internal/domains/booking/repository"
	guideModel "summit/internal/domains/guide/model"
	guideRepo "summit/internal/domains/guide/repository"
	porterModel "summit/internal/domains/porter/model"
	porterRepo "summit/internal/domains/porter/repository"
	"summit/shared"
	"summit/shared/cache"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
	gModel "summit/shared/model"
	"summit/shared/money"
	"summit/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"

	defaultNumberPrefix = "BK"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Confirm(ctx context.Context, id string) (dto.BookingResponse, error)
	Start(ctx context.Context, id string) (dto.BookingResponse, error)
	RecordProgress(ctx context.Context, id string, req dto.RecordProgressRequest) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	CancellationEligibility(ctx context.Context, id string) (dto.EligibilityResponse, error)
	RecordPayment(ctx context.Context, id string, req dto.RecordPaymentRequest) (dto.BookingResponse, error)
	Refund(ctx context.Context, id string, req dto.RefundBookingRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetByNumber(ctx context.Context, number string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo          repository.Booking
	adventureRepo adventureRepo.Adventure
	guideRepo     guideRepo.Guide
	porterRepo    porterRepo.Porter
	transactor    postgres.Transactor
	evaluator     *cancellation.Evaluator
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	adventureRepo adventureRepo.Adventure,
	guideRepo guideRepo.Guide,
	porterRepo porterRepo.Porter,
	transactor postgres.Transactor,
	policy cancellation.RefundPolicy,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		adventureRepo: adventureRepo,
		guideRepo:     guideRepo,
		porterRepo:    porterRepo,
		transactor:    transactor,
		evaluator:     cancellation.NewEvaluator(policy),
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// NewRefundPolicy builds the refund policy from BOOKING_REFUND_TIERS.
func NewRefundPolicy(cfg *config.Config) (cancellation.RefundPolicy, error) {
	policy, err := cancellation.ParsePolicy(cfg.Booking.RefundTiers)
	if err != nil {
		return nil, fmt.Errorf("invalid refund tiers: %w", err)
	}

	return policy, nil
}

func actorFrom(ctx context.Context) lifecycle.Actor {
	id, role := shared.UserFromContext(ctx)

	return lifecycle.Actor{ID: id, Role: role}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := actorFrom(ctx)

	customerID, err := s.customerFor(actor, req)
	if err != nil {
		return res, err
	}

	start, end, err := adventureDto.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	now := timezone.Now()

	if start.After(end) {
		return res, failure.BadRequestFromString("start_date must not be after end_date") // nolint:wrapcheck
	}

	if cancellation.DaysUntilTrip(start, now) < 1 {
		return res, failure.BadRequestFromString("start_date must be in the future") // nolint:wrapcheck
	}

	if len(req.Participants) > 0 && len(req.Participants) != req.GroupSize {
		return res, failure.BadRequestFromString("participants must list every member of the group") // nolint:wrapcheck
	}

	adventure, err := s.adventureRepo.Get(ctx, shared.FilterByID(req.AdventureID, adventureModel.FieldID, adventureModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get adventure")

		return res, fmt.Errorf("failed to get adventure: %w", err)
	}

	if adventure.ID == constant.Empty {
		return res, failure.NotFound("adventure not found") // nolint:wrapcheck
	}

	if adventure.MaxGroupSize > 0 && req.GroupSize > adventure.MaxGroupSize {
		return res, failure.BadRequestFromString(fmt.Sprintf("group size exceeds the adventure maximum of %d", adventure.MaxGroupSize)) // nolint:wrapcheck
	}

	staff, err := s.loadStaff(ctx, req)
	if err != nil {
		return res, err
	}

	calendar, err := s.adventureRepo.GetCalendar(ctx, adventure.ID, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to get adventure calendar")

		return res, fmt.Errorf("failed to get adventure calendar: %w", err)
	}

	if result := calendar.Check(start, end); !result.Bookable {
		return res, failure.Unavailable(result.Reason) // nolint:wrapcheck
	}

	input, err := quote(adventure, staff, req, start, end, now, actor)
	if err != nil {
		return res, err
	}

	breakdown, err := pricing.Compose(input)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	booking := model.Booking{
		ID:                  uuid.NewString(),
		CustomerID:          customerID,
		AdventureID:         adventure.ID,
		GuideID:             optional(req.GuideID),
		PorterID:            optional(req.PorterID),
		GearProviderID:      optional(req.GearProviderID),
		StartDate:           start,
		EndDate:             end,
		DurationDays:        input.DurationDays,
		GroupSize:           req.GroupSize,
		Participants:        gModel.NewJSON(req.ToParticipants()),
		SpecialRequirements: req.SpecialRequirements,
		Status:              lifecycle.StatusPending.String(),
		Progress:            gModel.NewJSON(model.Progress{Milestones: []model.Milestone{}, DailyReports: []model.DailyReport{}}),
		Version:             1,
		Pricing:             model.NewPricing(breakdown),
		Payment: model.Payment{
			PaymentStatus:   model.PaymentStatusPending,
			Transactions:    gModel.NewJSON([]model.Transaction{}),
			RemainingAmount: breakdown.Total,
		},
		Metadata: gModel.NewMetadata(now, actor.ID),
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking.BookingNumber, err = s.issueNumber(ctx, tx, now)
		if err != nil {
			return err
		}

		return s.repo.InsertTx(ctx, tx, booking)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		if failure.IsReason(err, failure.ReasonConcurrencyConflict) {
			return res, err
		}

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, lifecycle.StatusConfirmed)
}

func (s *serviceImpl) Start(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, lifecycle.StatusInProgress)
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, lifecycle.StatusCompleted)
}

func (s *serviceImpl) RecordProgress(ctx context.Context, id string, req dto.RecordProgressRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordProgress")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Milestone == nil && req.DailyReport == nil {
		return res, failure.BadRequestFromString("a milestone or a daily report is required") // nolint:wrapcheck
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor := actorFrom(ctx)

	next, err := lifecycle.AuthorizeProgress(booking.Lifecycle(), actor, booking.Parties())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()
	progress := booking.Progress.V

	if req.Milestone != nil {
		progress.Milestones = append(progress.Milestones, model.Milestone{
			Title:      req.Milestone.Title,
			Location:   req.Milestone.Location,
			Note:       req.Milestone.Note,
			RecordedAt: now,
			RecordedBy: actor.ID,
		})
	}

	if req.DailyReport != nil {
		progress.DailyReports = append(progress.DailyReports, model.DailyReport{
			Day:        req.DailyReport.Day,
			Summary:    req.DailyReport.Summary,
			Weather:    req.DailyReport.Weather,
			RecordedAt: now,
			RecordedBy: actor.ID,
		})
	}

	booking.Progress = gModel.NewJSON(progress)
	booking.Status = next.String()

	mod := map[string]any{
		model.FieldProgress: booking.Progress,
		model.FieldStatus:   booking.Status,
	}

	return s.save(ctx, booking, mod, actor, now)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor := actorFrom(ctx)

	if err = lifecycle.Authorize(lifecycle.StatusCancelled, actor, booking.Parties()); err != nil {
		return res, err //nolint:wrapcheck
	}

	now := timezone.Now()

	record, err := s.evaluator.Evaluate(cancellation.Request{
		Status:     booking.Lifecycle(),
		StartDate:  booking.TripStart(),
		Now:        now,
		Reason:     req.Reason,
		Actor:      actor,
		PaidAmount: booking.PaidAmount,
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	booking.Status = lifecycle.StatusCancelled.String()
	booking.Cancellation = model.NewCancellation(record)

	mod := map[string]any{
		model.FieldStatus:                   booking.Status,
		model.FieldIsCancelled:              booking.IsCancelled,
		model.FieldCancelledBy:              booking.CancelledBy,
		model.FieldCancelledAt:              booking.CancelledAt,
		model.FieldCancellationReason:       booking.CancellationReason,
		model.FieldRefundEligible:           booking.RefundEligible,
		model.FieldCancellationRefundAmount: booking.CancellationRefundAmount,
		model.FieldCancellationFee:          booking.CancellationFee,
	}

	return s.save(ctx, booking, mod, actor, now)
}

func (s *serviceImpl) CancellationEligibility(ctx context.Context, id string) (res dto.EligibilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancellationEligibility")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor := actorFrom(ctx)
	if !actor.IsAdmin() && !booking.Parties().IsCustomer(actor) {
		return res, failure.ResourceRestrictedError
	}

	return dto.EligibilityResponse{
		BookingID:   booking.ID,
		Status:      booking.Status,
		Eligibility: s.evaluator.Preview(booking.Lifecycle(), booking.TripStart(), timezone.Now(), booking.PaidAmount),
	}, nil
}

func (s *serviceImpl) RecordPayment(ctx context.Context, id string, req dto.RecordPaymentRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Amount.IsPositive() {
		return res, failure.BadRequestFromString("amount must be greater than 0") // nolint:wrapcheck
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor := actorFrom(ctx)
	if !actor.IsAdmin() && !booking.Parties().IsCustomer(actor) {
		return res, failure.Forbidden("only the customer or an administrator can record a payment") // nolint:wrapcheck
	}

	if status := booking.Lifecycle(); status == lifecycle.StatusCancelled || status == lifecycle.StatusRefunded {
		return res, failure.InvalidTransition(fmt.Sprintf("payments cannot be recorded on a %s booking", status)) // nolint:wrapcheck
	}

	amount := money.Round(req.Amount)
	if amount.GreaterThan(booking.RemainingAmount) {
		return res, failure.BadRequestFromString("amount exceeds the remaining " + booking.RemainingAmount.StringFixed(money.Places)) // nolint:wrapcheck
	}

	now := timezone.Now()

	booking.PaidAmount = money.Round(booking.PaidAmount.Add(amount))
	booking.RemainingAmount = money.Round(booking.TotalAmount.Sub(booking.PaidAmount))
	booking.PaymentStatus = model.PaymentStatusFor(booking.PaidAmount, booking.TotalAmount)
	booking.Transactions = gModel.NewJSON(append(booking.Transactions.V, model.Transaction{
		ID:         uuid.NewString(),
		Kind:       model.TransactionKindPayment,
		Amount:     amount,
		Method:     req.Method,
		Reference:  req.Reference,
		RecordedAt: now,
		RecordedBy: actor.ID,
	}))

	mod := map[string]any{
		model.FieldPaidAmount:      booking.PaidAmount,
		model.FieldRemainingAmount: booking.RemainingAmount,
		model.FieldPaymentStatus:   booking.PaymentStatus,
		model.FieldTransactions:    booking.Transactions,
	}

	return s.save(ctx, booking, mod, actor, now)
}

func (s *serviceImpl) Refund(ctx context.Context, id string, req dto.RefundBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refund")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor := actorFrom(ctx)

	if err = lifecycle.Transition(booking.Lifecycle(), lifecycle.StatusRefunded, actor, booking.Parties()); err != nil {
		return res, err //nolint:wrapcheck
	}

	amount := money.Round(req.Amount)
	if amount.IsZero() {
		amount = booking.CancellationRefundAmount
	}

	if amount.IsNegative() || amount.GreaterThan(booking.PaidAmount) {
		return res, failure.BadRequestFromString("refund must be between 0 and the paid " + booking.PaidAmount.StringFixed(money.Places)) // nolint:wrapcheck
	}

	now := timezone.Now()

	booking.Status = lifecycle.StatusRefunded.String()
	booking.RefundAmount = amount
	booking.PaymentStatus = model.PaymentStatusRefunded
	booking.Transactions = gModel.NewJSON(append(booking.Transactions.V, model.Transaction{
		ID:         uuid.NewString(),
		Kind:       model.TransactionKindRefund,
		Amount:     amount,
		Reference:  req.Reference,
		RecordedAt: now,
		RecordedBy: actor.ID,
	}))

	mod := map[string]any{
		model.FieldStatus:        booking.Status,
		model.FieldRefundAmount:  booking.RefundAmount,
		model.FieldPaymentStatus: booking.PaymentStatus,
		model.FieldTransactions:  booking.Transactions,
	}

	return s.save(ctx, booking, mod, actor, now)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.view(ctx, shared.BuildCacheKey(cacheGetBooking, id), shared.FilterByID(id, model.FieldID, model.TableName))
}

func (s *serviceImpl) GetByNumber(ctx context.Context, number string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.view(ctx, shared.BuildCacheKey(cacheGetBooking, "number", number), shared.FilterByID(number, model.FieldBookingNumber, model.TableName))
}

// GetAll lists bookings. Callers other than administrators only see bookings they take part in.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if actor := actorFrom(ctx); !actor.IsAdmin() {
		filter = participantScope(filter, actor.ID)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

// transition moves a booking along the state machine without touching anything else.
func (s *serviceImpl) transition(ctx context.Context, id string, target lifecycle.Status) (res dto.BookingResponse, err error) {
	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	actor := actorFrom(ctx)

	if err = lifecycle.Transition(booking.Lifecycle(), target, actor, booking.Parties()); err != nil {
		return res, err //nolint:wrapcheck
	}

	booking.Status = target.String()

	return s.save(ctx, booking, map[string]any{model.FieldStatus: booking.Status}, actor, timezone.Now())
}

// save persists mod under the booking's current version and returns the updated booking.
func (s *serviceImpl) save(ctx context.Context, booking model.Booking, mod map[string]any, actor lifecycle.Actor, now time.Time) (res dto.BookingResponse, err error) {
	mod[constant.FieldModifiedAt] = now
	mod[constant.FieldModifiedBy] = actor.ID

	if err = s.repo.UpdateVersioned(ctx, mod, booking.ID, booking.Version); err != nil {
		log.Error().Err(err).Str("booking", booking.ID).Msg("failed to update booking")

		if failure.IsReason(err, failure.ReasonConcurrencyConflict) {
			return res, err
		}

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	booking.Version++
	booking.ModifiedAt = now
	booking.ModifiedBy = actor.ID

	s.invalidate(ctx, booking.ID, booking.BookingNumber)

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) view(ctx context.Context, cacheKey string, filter gDto.FilterGroup) (res dto.BookingResponse, err error) {
	actor := actorFrom(ctx)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		booking, err := s.repo.Get(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return res, failure.NotFound("booking not found") // nolint:wrapcheck
		}

		res.FromModel(booking)

		go func() {
			if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, res, s.cfg.Cache.TTL); err != nil {
				log.Error().Err(err).Msg("failed to save booking to cache")
			}
		}()
	}

	if !actor.IsAdmin() && !res.VisibleTo(actor.ID) {
		return dto.BookingResponse{}, failure.ResourceRestrictedError
	}

	return res, nil
}

func (s *serviceImpl) issueNumber(ctx context.Context, tx *sqlx.Tx, now time.Time) (string, error) {
	prefix := s.cfg.Booking.NumberPrefix
	if prefix == constant.Empty {
		prefix = defaultNumberPrefix
	}

	value, err := s.repo.NextNumber(ctx, tx, fmt.Sprintf("%s-%d", prefix, now.Year()))
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	return fmt.Sprintf("%s-%d-%06d", prefix, now.Year(), value), nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string, number ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		for _, n := range number {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, "number", n)); err != nil {
				log.Error().Err(err).Msg("failed to delete booking from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

// customerFor resolves who the booking is for. Administrators may book on behalf of a customer.
func (s *serviceImpl) customerFor(actor lifecycle.Actor, req dto.CreateBookingRequest) (string, error) {
	switch {
	case actor.IsAdmin() && req.CustomerID != constant.Empty:
		return req.CustomerID, nil
	case actor.Role == constant.RoleCustomer && actor.ID != constant.Empty:
		if req.CustomerID != constant.Empty && req.CustomerID != actor.ID {
			return constant.Empty, failure.Forbidden("customers can only book for themselves") // nolint:wrapcheck
		}

		return actor.ID, nil
	default:
		return constant.Empty, failure.Forbidden("only customers can request a booking") // nolint:wrapcheck
	}
}

func optional(id string) *string {
	if id == constant.Empty {
		return nil
	}

	return &id
}

type staff struct {
	guide  *guideModel.Guide
	porter *porterModel.Porter
	gear   *adventureModel.GearProvider
}

func (s *serviceImpl) loadStaff(ctx context.Context, req dto.CreateBookingRequest) (res staff, err error) {
	if req.GuideID != constant.Empty {
		guide, err := s.guideRepo.Get(ctx, shared.FilterByID(req.GuideID, guideModel.FieldID, guideModel.TableName))
		if err != nil {
			return res, fmt.Errorf("failed to get guide: %w", err)
		}

		if guide.ID == constant.Empty {
			return res, failure.NotFound("guide not found") // nolint:wrapcheck
		}

		if !guide.Available {
			return res, failure.Unavailable("guide is not taking bookings") // nolint:wrapcheck
		}

		res.guide = &guide
	}

	if req.PorterID != constant.Empty {
		porter, err := s.porterRepo.Get(ctx, shared.FilterByID(req.PorterID, porterModel.FieldID, porterModel.TableName))
		if err != nil {
			return res, fmt.Errorf("failed to get porter: %w", err)
		}

		if porter.ID == constant.Empty {
			return res, failure.NotFound("porter not found") // nolint:wrapcheck
		}

		if !porter.Available {
			return res, failure.Unavailable("porter is not taking bookings") // nolint:wrapcheck
		}

		res.porter = &porter
	}

	if req.GearProviderID != constant.Empty {
		gear, err := s.adventureRepo.GetGearProvider(ctx, req.GearProviderID)
		if err != nil {
			return res, fmt.Errorf("failed to get gear provider: %w", err)
		}

		if gear.ID == constant.Empty {
			return res, failure.NotFound("gear provider not found") // nolint:wrapcheck
		}

		res.gear = &gear
	}

	return res, nil
}

// quote gathers the pricing inputs of a booking request. Permits and adventure equipment are
// charged per participant, rented gear per participant per day, and taxes on every charge.
func quote(adventure adventureModel.Adventure, staff staff, req dto.CreateBookingRequest, start, end, now time.Time, actor lifecycle.Actor) (pricing.Input, error) {
	duration := pricing.DurationDays(start, end)
	group := req.GroupSize

	input := pricing.Input{
		BasePrice:    adventure.BasePrice,
		GroupSize:    group,
		DurationDays: duration,
		Permits:      money.Times(adventure.PermitCost, group),
		Equipment:    money.Times(adventure.EquipmentCost, group),
		Currency:     adventure.Currency,
	}

	if staff.guide != nil {
		input.GuideDailyRate = &staff.guide.DailyRate
	}

	if staff.porter != nil {
		input.PorterDailyRate = &staff.porter.DailyRate
	}

	if staff.gear != nil {
		input.Equipment = input.Equipment.Add(money.Times(money.Times(staff.gear.DailyRate, group), duration))
	}

	base := money.Times(adventure.BasePrice, group)

	charged := money.Sum(base, input.Permits, input.Equipment)
	if input.GuideDailyRate != nil {
		charged = charged.Add(money.Times(*input.GuideDailyRate, duration))
	}

	if input.PorterDailyRate != nil {
		charged = charged.Add(money.Times(*input.PorterDailyRate, duration))
	}

	input.Taxes = money.Percent(charged, adventure.TaxPercent)

	if adventure.EarlyBirdDays > 0 && cancellation.DaysUntilTrip(start, now) >= adventure.EarlyBirdDays {
		input.Discounts.EarlyBird = money.Percent(base, adventure.EarlyBirdPercent)
	}

	if adventure.GroupDiscountSize > 0 && req.GroupSize >= adventure.GroupDiscountSize {
		input.Discounts.Group = money.Percent(base, adventure.GroupDiscountPercent)
	}

	if req.Discounts != nil {
		if !actor.IsAdmin() {
			return input, failure.Forbidden("only administrators can grant loyalty or promotional discounts") // nolint:wrapcheck
		}

		input.Discounts.Loyalty = req.Discounts.Loyalty
		input.Discounts.Promotional = req.Discounts.Promotional
	}

	return input, nil
}

// participantScope narrows filter to bookings where user is the customer or assigned staff.
func participantScope(filter gDto.FilterGroup, user string) gDto.FilterGroup {
	scope := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{ArgName: "scope_customer_id", Field: model.FieldCustomerID, Operator: gDto.FilterOperatorEq, Value: user, Table: model.TableName},
			gDto.Filter{ArgName: "scope_guide_id", Field: model.FieldGuideID, Operator: gDto.FilterOperatorEq, Value: user, Table: model.TableName},
			gDto.Filter{ArgName: "scope_porter_id", Field: model.FieldPorterID, Operator: gDto.FilterOperatorEq, Value: user, Table: model.TableName},
		},
	}

	if len(filter.Filters) == 0 {
		return scope
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{filter, scope},
	}
}

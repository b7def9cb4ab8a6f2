package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"summit/config"
	"summit/infras/otel/mocks"
	pgMocks "summit/infras/postgres/mocks"
	adventureMocks "summit/internal/domains/adventure/mocks"
	adventureModel "summit/internal/domains/adventure/model"
	"summit/internal/domains/booking/lifecycle"
	bookingMocks "summit/internal/domains/booking/mocks"
	"summit/internal/domains/booking/model"
	"summit/internal/domains/booking/model/dto"
	"summit/internal/domains/booking/service"
	guideMocks "summit/internal/domains/guide/mocks"
	guideModel "summit/internal/domains/guide/model"
	porterMocks "summit/internal/domains/porter/mocks"
	cacheMocks "summit/shared/cache/mocks"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
	gModel "summit/shared/model"
	"summit/shared/timezone"
)

var errCacheMiss = errors.New("cache miss")

func amount(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertAmount(t *testing.T, want int64, got decimal.Decimal) {
	t.Helper()

	assert.True(t, amount(want).Equal(got), "want %d, got %s", want, got)
}

type fixture struct {
	svc       service.Booking
	repo      *bookingMocks.MockBooking
	adventure *adventureMocks.MockAdventure
	guide     *guideMocks.MockGuide
	porter    *porterMocks.MockPorter
	cache     *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		adventure: adventureMocks.NewMockAdventure(ctrl),
		guide:     guideMocks.NewMockGuide(ctrl),
		porter:    porterMocks.NewMockPorter(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.RefundTiers = "30:100,7:50"

	policy, err := service.NewRefundPolicy(cfg)
	require.NoError(t, err)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.adventure, f.guide, f.porter, pgMocks.NewTransactor(), policy, cfg, f.cache, mocks.NewOtel())

	return f
}

func asUser(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func daysAhead(n int) time.Time {
	return timezone.StartOfDay(timezone.Now().AddDate(0, 0, n))
}

func ptr(s string) *string {
	return &s
}

func trek() adventureModel.Adventure {
	return adventureModel.Adventure{
		ID:               "adv-1",
		ProviderID:       "provider-1",
		Name:             "Annapurna Circuit",
		BasePrice:        amount(1000),
		Currency:         "USD",
		MaxGroupSize:     8,
		PermitCost:       amount(50),
		TaxPercent:       10,
		EarlyBirdDays:    30,
		EarlyBirdPercent: 10,
	}
}

func bookingRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		AdventureID: "adv-1",
		GuideID:     "guide-1",
		StartDate:   daysAhead(40).Format(constant.DayDateFormat),
		EndDate:     daysAhead(42).Format(constant.DayDateFormat),
		GroupSize:   2,
	}
}

func storedBooking(status lifecycle.Status) model.Booking {
	return model.Booking{
		ID:            "booking-1",
		BookingNumber: "BK-2026-000001",
		CustomerID:    "customer-1",
		AdventureID:   "adv-1",
		GuideID:       ptr("guide-1"),
		StartDate:     daysAhead(40),
		EndDate:       daysAhead(42),
		DurationDays:  2,
		GroupSize:     2,
		Status:        status.String(),
		Version:       3,
		Pricing:       model.Pricing{BasePrice: amount(2000), TotalAmount: amount(2000)},
		Payment: model.Payment{
			PaymentStatus:   model.PaymentStatusPending,
			Transactions:    gModel.NewJSON([]model.Transaction{}),
			RemainingAmount: amount(2000),
		},
		Progress: gModel.NewJSON(model.Progress{}),
	}
}

func (f fixture) expectCatalog() {
	f.adventure.EXPECT().Get(gomock.Any(), gomock.Any()).Return(trek(), nil).AnyTimes()
	f.guide.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guideModel.Guide{ID: "guide-1", DailyRate: amount(100), Available: true}, nil).AnyTimes()
	f.adventure.EXPECT().GetCalendar(gomock.Any(), "adv-1", gomock.Any(), gomock.Any()).Return(adventureModel.Calendar{}, nil).AnyTimes()
}

func TestBookingService_Create(t *testing.T) {
	t.Run("customer books with early bird pricing", func(t *testing.T) {
		f := newFixture(t)
		f.expectCatalog()

		var inserted model.Booking

		f.repo.EXPECT().NextNumber(gomock.Any(), gomock.Any(), fmt.Sprintf("BK-%d", timezone.Now().Year())).Return(int64(7), nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
			inserted = b

			return nil
		})

		res, err := f.svc.Create(asUser("customer-1", constant.RoleCustomer), bookingRequest())
		require.NoError(t, err)

		assert.Equal(t, fmt.Sprintf("BK-%d-000007", timezone.Now().Year()), res.BookingNumber)
		assert.Equal(t, lifecycle.StatusPending.String(), res.Status)
		assert.Equal(t, "customer-1", inserted.CustomerID)
		assert.Equal(t, 2, inserted.DurationDays)
		assert.Equal(t, 1, inserted.Version)

		// base 2000, guide 200, permits 100, taxes 230, early bird 200
		assertAmount(t, 2000, res.Pricing.BasePrice)
		assertAmount(t, 200, res.Pricing.GuidePrice)
		assertAmount(t, 100, res.Pricing.PermitCosts)
		assertAmount(t, 230, res.Pricing.Taxes)
		assertAmount(t, 200, res.Pricing.Discounts.EarlyBird)
		assertAmount(t, 2330, res.Pricing.Total)

		assert.Equal(t, model.PaymentStatusPending, res.Payment.Status)
		assertAmount(t, 2330, res.Payment.RemainingAmount)
	})

	tests := []struct {
		name       string
		ctx        context.Context
		req        func() dto.CreateBookingRequest
		setupMock  func(f fixture)
		wantReason string
	}{
		{
			name:       "guide cannot request a booking",
			ctx:        asUser("guide-1", constant.RoleGuide),
			req:        bookingRequest,
			setupMock:  func(fixture) {},
			wantReason: failure.ReasonAuthorization,
		},
		{
			name: "start date in the past",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req: func() dto.CreateBookingRequest {
				req := bookingRequest()
				req.StartDate = daysAhead(-2).Format(constant.DayDateFormat)

				return req
			},
			setupMock:  func(fixture) {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "start after end",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req: func() dto.CreateBookingRequest {
				req := bookingRequest()
				req.StartDate, req.EndDate = req.EndDate, req.StartDate

				return req
			},
			setupMock:  func(fixture) {},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "adventure not found",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req:  bookingRequest,
			setupMock: func(f fixture) {
				f.adventure.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adventureModel.Adventure{}, nil)
			},
			wantReason: failure.ReasonNotFound,
		},
		{
			name: "group larger than the adventure allows",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req: func() dto.CreateBookingRequest {
				req := bookingRequest()
				req.GroupSize = 9

				return req
			},
			setupMock: func(f fixture) {
				f.adventure.EXPECT().Get(gomock.Any(), gomock.Any()).Return(trek(), nil)
			},
			wantReason: failure.ReasonValidation,
		},
		{
			name: "guide not taking bookings",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req:  bookingRequest,
			setupMock: func(f fixture) {
				f.adventure.EXPECT().Get(gomock.Any(), gomock.Any()).Return(trek(), nil)
				f.guide.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guideModel.Guide{ID: "guide-1"}, nil)
			},
			wantReason: failure.ReasonAvailability,
		},
		{
			name: "blackout inside the range",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req:  bookingRequest,
			setupMock: func(f fixture) {
				f.adventure.EXPECT().Get(gomock.Any(), gomock.Any()).Return(trek(), nil)
				f.guide.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guideModel.Guide{ID: "guide-1", DailyRate: amount(100), Available: true}, nil)
				f.adventure.EXPECT().GetCalendar(gomock.Any(), "adv-1", gomock.Any(), gomock.Any()).Return(adventureModel.Calendar{
					Blackouts: []adventureModel.BlackoutDate{{Date: daysAhead(41), Reason: "festival"}},
				}, nil)
			},
			wantReason: failure.ReasonAvailability,
		},
		{
			name: "customer cannot grant discounts",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req: func() dto.CreateBookingRequest {
				req := bookingRequest()
				req.Discounts = &dto.DiscountRequest{Promotional: amount(100)}

				return req
			},
			setupMock:  func(f fixture) { f.expectCatalog() },
			wantReason: failure.ReasonAuthorization,
		},
		{
			name: "number collision surfaces as a concurrency conflict",
			ctx:  asUser("customer-1", constant.RoleCustomer),
			req:  bookingRequest,
			setupMock: func(f fixture) {
				f.expectCatalog()
				f.repo.EXPECT().NextNumber(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(1), nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.ConcurrencyConflict("booking number already taken"))
			},
			wantReason: failure.ReasonConcurrencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(tt.ctx, tt.req())

			require.Error(t, err)
			assert.Equal(t, tt.wantReason, failure.GetReason(err))
		})
	}
}

func TestBookingService_Create_ConcurrentNumbersAreUnique(t *testing.T) {
	f := newFixture(t)
	f.expectCatalog()

	var counter atomic.Int64

	f.repo.EXPECT().NextNumber(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, *sqlx.Tx, string) (int64, error) {
		return counter.Add(1), nil
	}).AnyTimes()
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	const workers = 25

	var (
		wg      sync.WaitGroup
		numbers sync.Map
		failed  atomic.Int32
	)

	for i := range workers {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			res, err := f.svc.Create(asUser(fmt.Sprintf("customer-%d", i), constant.RoleCustomer), bookingRequest())
			if err != nil {
				failed.Add(1)

				return
			}

			numbers.Store(res.BookingNumber, struct{}{})
		}(i)
	}

	wg.Wait()

	unique := 0

	numbers.Range(func(_, _ any) bool {
		unique++

		return true
	})

	assert.Zero(t, failed.Load())
	assert.Equal(t, workers, unique)
}

func TestBookingService_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		ctx        context.Context
		from       lifecycle.Status
		call       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error)
		updateErr  error
		wantStatus lifecycle.Status
		wantReason string
	}{
		{
			name:       "assigned guide confirms",
			ctx:        asUser("guide-1", constant.RoleGuide),
			from:       lifecycle.StatusPending,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Confirm(ctx, "booking-1") },
			wantStatus: lifecycle.StatusConfirmed,
		},
		{
			name:       "customer cannot confirm",
			ctx:        asUser("customer-1", constant.RoleCustomer),
			from:       lifecycle.StatusPending,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Confirm(ctx, "booking-1") },
			wantReason: failure.ReasonAuthorization,
		},
		{
			name:       "other guide cannot start",
			ctx:        asUser("guide-2", constant.RoleGuide),
			from:       lifecycle.StatusConfirmed,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Start(ctx, "booking-1") },
			wantReason: failure.ReasonAuthorization,
		},
		{
			name:       "admin starts a confirmed trip",
			ctx:        asUser("admin-1", constant.RoleAdmin),
			from:       lifecycle.StatusConfirmed,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Start(ctx, "booking-1") },
			wantStatus: lifecycle.StatusInProgress,
		},
		{
			name:       "pending cannot complete",
			ctx:        asUser("guide-1", constant.RoleGuide),
			from:       lifecycle.StatusPending,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Complete(ctx, "booking-1") },
			wantReason: failure.ReasonInvalidTransition,
		},
		{
			name:       "completed is terminal for confirm",
			ctx:        asUser("admin-1", constant.RoleAdmin),
			from:       lifecycle.StatusCompleted,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Confirm(ctx, "booking-1") },
			wantReason: failure.ReasonInvalidTransition,
		},
		{
			name:       "stale version",
			ctx:        asUser("guide-1", constant.RoleGuide),
			from:       lifecycle.StatusInProgress,
			call:       func(svc service.Booking, ctx context.Context) (dto.BookingResponse, error) { return svc.Complete(ctx, "booking-1") },
			updateErr:  failure.ConcurrencyConflict("booking was modified concurrently"),
			wantReason: failure.ReasonConcurrencyConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(tt.from), nil)

			if tt.wantStatus != "" || tt.updateErr != nil {
				f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "booking-1", 3).
					DoAndReturn(func(_ context.Context, mod map[string]any, _ string, _ int) error {
						if tt.wantStatus != "" {
							assert.Equal(t, tt.wantStatus.String(), mod[model.FieldStatus])
						}

						return tt.updateErr
					})
			}

			res, err := tt.call(f.svc, tt.ctx)

			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus.String(), res.Status)
			assert.Equal(t, 4, res.Version)
		})
	}
}

func TestBookingService_RecordProgress(t *testing.T) {
	t.Run("first milestone starts a confirmed trip", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusConfirmed), nil)
		f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "booking-1", 3).Return(nil)

		res, err := f.svc.RecordProgress(asUser("guide-1", constant.RoleGuide), "booking-1", dto.RecordProgressRequest{
			Milestone: &dto.MilestoneRequest{Title: "Thorong La", Location: "5416m"},
		})
		require.NoError(t, err)

		assert.Equal(t, lifecycle.StatusInProgress.String(), res.Status)
		require.Len(t, res.Progress.Milestones, 1)
		assert.Equal(t, "Thorong La", res.Progress.Milestones[0].Title)
		assert.Equal(t, "guide-1", res.Progress.Milestones[0].RecordedBy)
	})

	t.Run("empty update", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.RecordProgress(asUser("guide-1", constant.RoleGuide), "booking-1", dto.RecordProgressRequest{})
		assert.Equal(t, failure.ReasonValidation, failure.GetReason(err))
	})

	t.Run("pending booking rejects progress", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusPending), nil)

		_, err := f.svc.RecordProgress(asUser("guide-1", constant.RoleGuide), "booking-1", dto.RecordProgressRequest{
			DailyReport: &dto.DailyReportRequest{Day: 1, Summary: "acclimatisation"},
		})
		assert.Equal(t, failure.ReasonInvalidTransition, failure.GetReason(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	paid := func(status lifecycle.Status) model.Booking {
		b := storedBooking(status)
		b.PaidAmount = amount(500)
		b.RemainingAmount = amount(1500)

		return b
	}

	t.Run("customer cancels with a full refund", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid(lifecycle.StatusConfirmed), nil)
		f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "booking-1", 3).
			DoAndReturn(func(_ context.Context, mod map[string]any, _ string, _ int) error {
				assert.Equal(t, true, mod[model.FieldIsCancelled])
				assert.Equal(t, "customer-1", mod[model.FieldCancelledBy])

				return nil
			})

		res, err := f.svc.Cancel(asUser("customer-1", constant.RoleCustomer), "booking-1", dto.CancelBookingRequest{Reason: "injury"})
		require.NoError(t, err)

		assert.Equal(t, lifecycle.StatusCancelled.String(), res.Status)
		require.NotNil(t, res.Cancellation)
		assert.True(t, res.Cancellation.RefundEligible)
		assertAmount(t, 500, res.Cancellation.RefundAmount)
		assert.True(t, res.Cancellation.CancellationFee.IsZero())
	})

	tests := []struct {
		name       string
		ctx        context.Context
		status     lifecycle.Status
		reason     string
		wantReason string
	}{
		{name: "third party", ctx: asUser("customer-2", constant.RoleCustomer), status: lifecycle.StatusPending, reason: "no", wantReason: failure.ReasonAuthorization},
		{name: "guide cannot cancel", ctx: asUser("guide-1", constant.RoleGuide), status: lifecycle.StatusPending, reason: "no", wantReason: failure.ReasonAuthorization},
		{name: "missing reason", ctx: asUser("customer-1", constant.RoleCustomer), status: lifecycle.StatusPending, reason: " ", wantReason: failure.ReasonValidation},
		{name: "trip underway", ctx: asUser("customer-1", constant.RoleCustomer), status: lifecycle.StatusInProgress, reason: "weather", wantReason: failure.ReasonNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(paid(tt.status), nil)

			_, err := f.svc.Cancel(tt.ctx, "booking-1", dto.CancelBookingRequest{Reason: tt.reason})
			require.Error(t, err)
			assert.Equal(t, tt.wantReason, failure.GetReason(err))
		})
	}
}

func TestBookingService_CancellationEligibility(t *testing.T) {
	f := newFixture(t)

	b := storedBooking(lifecycle.StatusPending)
	b.StartDate = daysAhead(10)
	b.PaidAmount = amount(1000)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(b, nil)

	res, err := f.svc.CancellationEligibility(asUser("customer-1", constant.RoleCustomer), "booking-1")
	require.NoError(t, err)

	assert.True(t, res.Cancellable)
	assert.True(t, res.Refund.Eligible)
	assertAmount(t, 500, res.Refund.Amount)
	assertAmount(t, 500, res.Refund.Fee)
}

func TestBookingService_RecordPayment(t *testing.T) {
	t.Run("partial payment", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusConfirmed), nil)
		f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "booking-1", 3).Return(nil)

		res, err := f.svc.RecordPayment(asUser("customer-1", constant.RoleCustomer), "booking-1", dto.RecordPaymentRequest{Amount: amount(750), Method: "card"})
		require.NoError(t, err)

		assert.Equal(t, model.PaymentStatusPartial, res.Payment.Status)
		assertAmount(t, 750, res.Payment.PaidAmount)
		assertAmount(t, 1250, res.Payment.RemainingAmount)
		require.Len(t, res.Payment.Transactions, 1)
		assert.Equal(t, model.TransactionKindPayment, res.Payment.Transactions[0].Kind)
	})

	t.Run("settles the balance", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusConfirmed), nil)
		f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "booking-1", 3).Return(nil)

		res, err := f.svc.RecordPayment(asUser("admin-1", constant.RoleAdmin), "booking-1", dto.RecordPaymentRequest{Amount: amount(2000)})
		require.NoError(t, err)
		assert.Equal(t, model.PaymentStatusPaid, res.Payment.Status)
		assert.True(t, res.Payment.RemainingAmount.IsZero())
	})

	tests := []struct {
		name       string
		ctx        context.Context
		status     lifecycle.Status
		amount     int64
		wantReason string
	}{
		{name: "over the remaining balance", ctx: asUser("customer-1", constant.RoleCustomer), status: lifecycle.StatusPending, amount: 2500, wantReason: failure.ReasonValidation},
		{name: "cancelled booking", ctx: asUser("customer-1", constant.RoleCustomer), status: lifecycle.StatusCancelled, amount: 100, wantReason: failure.ReasonInvalidTransition},
		{name: "guide cannot pay", ctx: asUser("guide-1", constant.RoleGuide), status: lifecycle.StatusPending, amount: 100, wantReason: failure.ReasonAuthorization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(tt.status), nil)

			_, err := f.svc.RecordPayment(tt.ctx, "booking-1", dto.RecordPaymentRequest{Amount: amount(tt.amount)})
			require.Error(t, err)
			assert.Equal(t, tt.wantReason, failure.GetReason(err))
		})
	}
}

func TestBookingService_Refund(t *testing.T) {
	cancelled := func() model.Booking {
		b := storedBooking(lifecycle.StatusCancelled)
		b.PaidAmount = amount(500)
		b.IsCancelled = true
		b.RefundEligible = true
		b.CancellationRefundAmount = amount(250)

		return b
	}

	t.Run("admin refunds the cancellation amount", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled(), nil)
		f.repo.EXPECT().UpdateVersioned(gomock.Any(), gomock.Any(), "booking-1", 3).Return(nil)

		res, err := f.svc.Refund(asUser("admin-1", constant.RoleAdmin), "booking-1", dto.RefundBookingRequest{})
		require.NoError(t, err)

		assert.Equal(t, lifecycle.StatusRefunded.String(), res.Status)
		assert.Equal(t, model.PaymentStatusRefunded, res.Payment.Status)
		assertAmount(t, 250, res.Payment.RefundAmount)
	})

	t.Run("customer cannot refund", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled(), nil)

		_, err := f.svc.Refund(asUser("customer-1", constant.RoleCustomer), "booking-1", dto.RefundBookingRequest{})
		assert.Equal(t, failure.ReasonAuthorization, failure.GetReason(err))
	})

	t.Run("more than was paid", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled(), nil)

		_, err := f.svc.Refund(asUser("admin-1", constant.RoleAdmin), "booking-1", dto.RefundBookingRequest{Amount: amount(900)})
		assert.Equal(t, failure.ReasonValidation, failure.GetReason(err))
	})

	t.Run("trip underway cannot be refunded", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusInProgress), nil)

		_, err := f.svc.Refund(asUser("admin-1", constant.RoleAdmin), "booking-1", dto.RefundBookingRequest{})
		assert.Equal(t, failure.ReasonInvalidTransition, failure.GetReason(err))
	})
}

func TestBookingService_Get(t *testing.T) {
	t.Run("participant reads from the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "booking:get:booking-1", gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusPending), nil)

		res, err := f.svc.Get(asUser("guide-1", constant.RoleGuide), "booking-1")
		require.NoError(t, err)
		assert.Equal(t, "BK-2026-000001", res.BookingNumber)
	})

	t.Run("stranger is restricted", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedBooking(lifecycle.StatusPending), nil)

		_, err := f.svc.Get(asUser("customer-9", constant.RoleCustomer), "booking-1")
		assert.Equal(t, failure.ReasonAuthorization, failure.GetReason(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.GetByNumber(asUser("admin-1", constant.RoleAdmin), "BK-2026-999999")
		assert.Equal(t, failure.ReasonNotFound, failure.GetReason(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	t.Run("non admin only sees own bookings", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
			where, args := filter.GetWhereClause()

			assert.Contains(t, where, "OR")
			assert.Equal(t, "customer-1", args["scope_customer_id"])

			return 1, nil
		})
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{storedBooking(lifecycle.StatusPending)}, nil)

		res, err := f.svc.GetAll(asUser("customer-1", constant.RoleCustomer), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Len(t, res.Bookings, 1)
	})

	t.Run("admin filter is untouched", func(t *testing.T) {
		f := newFixture(t)

		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters:  []any{gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: "pending"}},
		}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
		f.repo.EXPECT().Count(gomock.Any(), filter).Return(0, nil)
		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), filter).Return([]model.Booking{}, nil)

		_, err := f.svc.GetAll(asUser("admin-1", constant.RoleAdmin), gDto.QueryParams{Page: 1, Limit: 10}, filter)
		require.NoError(t, err)
	})
}

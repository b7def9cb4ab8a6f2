package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"summit/config"
	"summit/infras/otel/mocks"
	adventureMocks "summit/internal/domains/adventure/mocks"
	"summit/internal/domains/adventure/model"
	"summit/internal/domains/adventure/model/dto"
	"summit/internal/domains/adventure/service"
	cacheMocks "summit/shared/cache/mocks"
	"summit/shared/constant"
	"summit/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

func newService(t *testing.T) (service.Adventure, *adventureMocks.MockAdventure, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := adventureMocks.NewMockAdventure(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func asUser(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func day(s string) time.Time {
	t, _ := time.Parse(constant.DayDateFormat, s)

	return t
}

func TestAdventureService_Create(t *testing.T) {
	req := dto.CreateAdventureRequest{
		Name:         "Annapurna Base Camp",
		Location:     "Pokhara",
		BasePrice:    decimal.NewFromInt(1000),
		Currency:     "USD",
		MaxGroupSize: 8,
	}

	tests := []struct {
		name       string
		ctx        context.Context
		setupMock  func(repo *adventureMocks.MockAdventure)
		wantReason string
	}{
		{
			name: "provider publishes adventure",
			ctx:  asUser("provider-1", constant.RoleProvider),
			setupMock: func(repo *adventureMocks.MockAdventure) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a model.Adventure) error {
					assert.Equal(t, "provider-1", a.ProviderID)
					assert.NotEmpty(t, a.ID)

					return nil
				})
			},
		},
		{
			name:       "customer cannot publish",
			ctx:        asUser("customer-1", constant.RoleCustomer),
			setupMock:  func(*adventureMocks.MockAdventure) {},
			wantReason: failure.ReasonAuthorization,
		},
		{
			name: "repository error",
			ctx:  asUser("provider-1", constant.RoleProvider),
			setupMock: func(repo *adventureMocks.MockAdventure) {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantReason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(tt.ctx, req)

			if tt.wantReason != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Annapurna Base Camp", res.Name)
		})
	}
}

func TestAdventureService_Get(t *testing.T) {
	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, c := newService(t)

		c.EXPECT().Get(gomock.Any(), "adventure:get:adv-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v any) error {
			v.(*dto.AdventureResponse).ID = "adv-1"

			return nil
		})

		res, err := svc.Get(context.Background(), "adv-1")
		require.NoError(t, err)
		assert.Equal(t, "adv-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, c := newService(t)

		c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Adventure{}, nil)

		_, err := svc.Get(context.Background(), "missing")
		assert.True(t, failure.IsReason(err, failure.ReasonNotFound))
	})
}

func TestAdventureService_CheckAvailability(t *testing.T) {
	tests := []struct {
		name         string
		start, end   string
		setupMock    func(repo *adventureMocks.MockAdventure)
		wantBookable bool
		wantReason   string
	}{
		{
			name:  "open calendar is bookable",
			start: "2026-11-02", end: "2026-11-10",
			setupMock: func(repo *adventureMocks.MockAdventure) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().GetCalendar(gomock.Any(), "adv-1", gomock.Any(), gomock.Any()).Return(model.Calendar{}, nil)
			},
			wantBookable: true,
		},
		{
			name:  "blackout inside the range",
			start: "2026-11-02", end: "2026-11-10",
			setupMock: func(repo *adventureMocks.MockAdventure) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().GetCalendar(gomock.Any(), "adv-1", gomock.Any(), gomock.Any()).Return(model.Calendar{
					Blackouts: []model.BlackoutDate{{Date: day("2026-11-05")}},
				}, nil)
			},
			wantBookable: false,
		},
		{
			name:  "covering window closed",
			start: "2026-11-02", end: "2026-11-10",
			setupMock: func(repo *adventureMocks.MockAdventure) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().GetCalendar(gomock.Any(), "adv-1", gomock.Any(), gomock.Any()).Return(model.Calendar{
					Windows: []model.AvailabilityWindow{{StartDate: day("2026-11-01"), EndDate: day("2026-11-30"), Reason: "monsoon"}},
				}, nil)
			},
			wantBookable: false,
		},
		{
			name:  "unknown adventure",
			start: "2026-11-02", end: "2026-11-10",
			setupMock: func(repo *adventureMocks.MockAdventure) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantReason: failure.ReasonNotFound,
		},
		{
			name:       "malformed date",
			start:      "02/11/2026",
			end:        "2026-11-10",
			setupMock:  func(*adventureMocks.MockAdventure) {},
			wantReason: failure.ReasonValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, c := newService(t)
			c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
			tt.setupMock(repo)

			res, err := svc.CheckAvailability(context.Background(), "adv-1", tt.start, tt.end)

			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBookable, res.Bookable)

			if !tt.wantBookable {
				assert.NotEmpty(t, res.Reason)
			}
		})
	}
}

func TestAdventureService_AddBlackout(t *testing.T) {
	owned := model.Adventure{ID: "adv-1", ProviderID: "provider-1"}

	t.Run("owner adds a blackout", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)
		repo.EXPECT().InsertBlackout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.BlackoutDate) error {
			assert.Equal(t, "adv-1", b.AdventureID)
			assert.Equal(t, "2026-12-25", b.Date.Format(constant.DayDateFormat))

			return nil
		})

		err := svc.AddBlackout(asUser("provider-1", constant.RoleProvider), "adv-1", dto.CreateBlackoutRequest{Date: "2026-12-25", Reason: "festival"})
		assert.NoError(t, err)
	})

	t.Run("another provider is rejected", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(owned, nil)

		err := svc.AddBlackout(asUser("provider-2", constant.RoleProvider), "adv-1", dto.CreateBlackoutRequest{Date: "2026-12-25"})
		assert.True(t, failure.IsReason(err, failure.ReasonAuthorization))
	})
}

func TestAdventureService_AddWindow(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Adventure{ID: "adv-1", ProviderID: "provider-1"}, nil)

	err := svc.AddWindow(asUser("admin-1", constant.RoleAdmin), "adv-1", dto.CreateWindowRequest{StartDate: "2026-12-10", EndDate: "2026-12-01"})
	assert.True(t, failure.IsReason(err, failure.ReasonValidation))
}

package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"summit/config"
	"summit/infras/otel/mocks"
	guideMocks "summit/internal/domains/guide/mocks"
	"summit/internal/domains/guide/model"
	"summit/internal/domains/guide/model/dto"
	"summit/internal/domains/guide/service"
	cacheMocks "summit/shared/cache/mocks"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
)

func TestGuideService_Register(t *testing.T) {
	req := dto.RegisterGuideRequest{Name: "Pasang", DailyRate: decimal.NewFromInt(40), Currency: "USD"}

	tests := []struct {
		name       string
		role       string
		setupMock  func(repo *guideMocks.MockGuide)
		wantReason string
	}{
		{
			name: "registers own profile",
			role: constant.RoleGuide,
			setupMock: func(repo *guideMocks.MockGuide) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Guide) error {
					assert.Equal(t, "user-1", m.ID)
					assert.True(t, m.Available)

					return nil
				})
			},
		},
		{
			name:       "wrong role",
			role:       constant.RolePorter,
			setupMock:  func(*guideMocks.MockGuide) {},
			wantReason: failure.ReasonAuthorization,
		},
		{
			name: "already registered",
			role: constant.RoleGuide,
			setupMock: func(repo *guideMocks.MockGuide) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantReason: failure.ReasonConflict,
		},
		{
			name: "repository error",
			role: constant.RoleGuide,
			setupMock: func(repo *guideMocks.MockGuide) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantReason: failure.ReasonInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockRepo := guideMocks.NewMockGuide(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, tt.role)

			res, err := svc.Register(ctx, req)

			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, failure.GetReason(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "user-1", res.ID)
		})
	}
}

func TestGuideService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRepo := guideMocks.NewMockGuide(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	found := model.Guide{ID: "user-1", Name: "Pasang", DailyRate: decimal.NewFromInt(40)}
	found.RatingAverage = 4.5
	found.RatingCount = 2

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(found, nil)

	res, err := svc.Get(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 4.5, res.Rating.Average)
	assert.Equal(t, 2, res.Rating.Count)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guide{}, nil)

	_, err = svc.Get(context.Background(), "missing")
	assert.True(t, failure.IsReason(err, failure.ReasonNotFound))

	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Guide{found}, nil)

	all, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Equal(t, 1, all.TotalData)
}

package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"summit/config"
	"summit/infras/otel/mocks"
	pgMocks "summit/infras/postgres/mocks"
	"summit/internal/domains/rating"
	ratingMocks "summit/internal/domains/rating/mocks"
	"summit/internal/domains/rating/model/dto"
	"summit/internal/domains/rating/service"
	reviewMocks "summit/internal/domains/review/mocks"
	reviewModel "summit/internal/domains/review/model"
	"summit/internal/events"
	"summit/shared/cache"
	cacheMocks "summit/shared/cache/mocks"
	"summit/shared/failure"
	gModel "summit/shared/model"
)

type fixture struct {
	svc     service.Rating
	repo    *ratingMocks.MockRating
	reviews *reviewMocks.MockReview
	cache   *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:    ratingMocks.NewMockRating(ctrl),
		reviews: reviewMocks.NewMockReview(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, f.reviews, pgMocks.NewTransactor(), cfg, f.cache, mocks.NewOtel())

	return f
}

// memoryCache keeps values the way redis would, so reads observe earlier writes.
type memoryCache struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string][]byte{}}
}

func (c *memoryCache) Save(_ context.Context, key string, value any, _ int) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = raw

	return nil
}

func (c *memoryCache) Get(_ context.Context, key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.values[key]
	if !ok {
		return cache.Nil
	}

	return json.Unmarshal(raw, value)
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.values, key)

	return nil
}

func (c *memoryCache) Clear(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.values {
		if strings.HasPrefix(key, prefix) {
			delete(c.values, key)
		}
	}

	return nil
}

func (c *memoryCache) Increment(context.Context, string, int) (int64, error) {
	return 0, nil
}

func porterReviews() []reviewModel.Review {
	return []reviewModel.Review{
		{ID: "r1", Rating: 5, Breakdown: gModel.NewJSON(map[string]int{"reliability": 5, "strength": 5})},
		{ID: "r2", Rating: 4, Breakdown: gModel.NewJSON(map[string]int{"reliability": 4})},
		{ID: "r3", Rating: 5, Breakdown: gModel.NewJSON(map[string]int{})},
	}
}

func TestRatingService_Recompute(t *testing.T) {
	target := reviewModel.PorterTarget{PorterID: "porter-1"}

	t.Run("aggregates every review under the lock", func(t *testing.T) {
		f := newFixture(t)

		var saved rating.Aggregate

		gomock.InOrder(
			f.repo.EXPECT().Lock(gomock.Any(), gomock.Any(), target).Return(nil),
			f.reviews.EXPECT().GetAllByTarget(gomock.Any(), gomock.Any(), target).Return(porterReviews(), nil),
			f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), target, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ reviewModel.Target, agg rating.Aggregate) error {
					saved = agg

					return nil
				}),
		)

		res, err := f.svc.Recompute(context.Background(), target)
		require.NoError(t, err)

		assert.InDelta(t, 4.7, saved.Average, 0.001)
		assert.Equal(t, 3, saved.Count)
		assert.InDelta(t, 4.5, saved.Criteria["reliability"], 0.001)
		assert.InDelta(t, 5, saved.Criteria["strength"], 0.001)
		assert.Zero(t, saved.Criteria["safety"])

		assert.Equal(t, "porter", res.TargetType)
		assert.Equal(t, "porter-1", res.TargetID)
		assert.InDelta(t, 4.7, res.Average, 0.001)
	})

	t.Run("recomputing twice writes the same aggregate", func(t *testing.T) {
		f := newFixture(t)

		var saved []rating.Aggregate

		f.repo.EXPECT().Lock(gomock.Any(), gomock.Any(), target).Return(nil).Times(2)
		f.reviews.EXPECT().GetAllByTarget(gomock.Any(), gomock.Any(), target).Return(porterReviews(), nil).Times(2)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), target, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ reviewModel.Target, agg rating.Aggregate) error {
				saved = append(saved, agg)

				return nil
			}).Times(2)

		_, err := f.svc.Recompute(context.Background(), target)
		require.NoError(t, err)

		_, err = f.svc.Recompute(context.Background(), target)
		require.NoError(t, err)

		require.Len(t, saved, 2)
		assert.Equal(t, saved[0], saved[1])
	})

	t.Run("lock failure stops the recomputation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Lock(gomock.Any(), gomock.Any(), target).Return(errors.New("connection reset"))

		_, err := f.svc.Recompute(context.Background(), target)
		require.Error(t, err)
	})

	t.Run("no reviews resets the rating", func(t *testing.T) {
		f := newFixture(t)

		adventure := reviewModel.AdventureTarget{AdventureID: "adv-1"}

		f.repo.EXPECT().Lock(gomock.Any(), gomock.Any(), adventure).Return(nil)
		f.reviews.EXPECT().GetAllByTarget(gomock.Any(), gomock.Any(), adventure).Return(nil, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), adventure, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ reviewModel.Target, agg rating.Aggregate) error {
				assert.Zero(t, agg.Count)
				assert.Zero(t, agg.Average)

				return nil
			})

		res, err := f.svc.Recompute(context.Background(), adventure)
		require.NoError(t, err)
		assert.Zero(t, res.Count)
	})
}

func TestRatingService_RecomputeRefreshesCachedRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := ratingMocks.NewMockRating(ctrl)
	reviews := reviewMocks.NewMockReview(ctrl)
	store := newMemoryCache()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(repo, reviews, pgMocks.NewTransactor(), cfg, store, mocks.NewOtel())

	target := reviewModel.GuideTarget{GuideID: "guide-1"}
	stored := gModel.Rating{RatingAverage: 3, RatingCount: 1, RatingBreakdown: gModel.NewJSON(map[string]float64{})}

	seeded := dto.RatingResponse{}
	seeded.FromModel(target, stored)
	require.NoError(t, store.Save(context.Background(), "rating:get:guide:guide-1", seeded, cfg.Cache.TTL))

	repo.EXPECT().Lock(gomock.Any(), gomock.Any(), target).Return(nil)
	reviews.EXPECT().GetAllByTarget(gomock.Any(), gomock.Any(), target).Return([]reviewModel.Review{
		{ID: "r1", Rating: 3, Breakdown: gModel.NewJSON(map[string]int{})},
		{ID: "r2", Rating: 5, Breakdown: gModel.NewJSON(map[string]int{})},
	}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any(), target, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, _ reviewModel.Target, agg rating.Aggregate) error {
			stored = gModel.Rating{
				RatingAverage:   agg.Average,
				RatingCount:     agg.Count,
				RatingBreakdown: gModel.NewJSON(agg.Criteria),
			}

			return nil
		})
	repo.EXPECT().Get(gomock.Any(), target).DoAndReturn(func(context.Context, reviewModel.Target) (gModel.Rating, error) {
		return stored, nil
	})

	recomputed, err := svc.Recompute(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, 2, recomputed.Count)

	current, err := svc.Get(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, 2, current.Count)
	assert.InDelta(t, 4, current.Average, 0.001)

	cached, err := svc.Get(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, 2, cached.Count)
}

func TestRatingService_HandleReviewEvent(t *testing.T) {
	t.Run("recomputes the reviewed entity", func(t *testing.T) {
		f := newFixture(t)

		target := reviewModel.GuideTarget{GuideID: "guide-1"}
		event := events.NewReviewEvent(events.ReviewCreated, "r1", "booking-1", "guide", "guide-1", time.Now())

		f.repo.EXPECT().Lock(gomock.Any(), gomock.Any(), target).Return(nil)
		f.reviews.EXPECT().GetAllByTarget(gomock.Any(), gomock.Any(), target).Return(nil, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), target, gomock.Any()).Return(nil)

		require.NoError(t, f.svc.HandleReviewEvent(context.Background(), event))
	})

	t.Run("invalid target is dropped", func(t *testing.T) {
		f := newFixture(t)

		event := events.NewReviewEvent(events.ReviewCreated, "r1", "booking-1", "hotel", "h-1", time.Now())

		assert.NoError(t, f.svc.HandleReviewEvent(context.Background(), event))
	})

	t.Run("save failure is returned for redelivery", func(t *testing.T) {
		f := newFixture(t)

		target := reviewModel.GuideTarget{GuideID: "guide-1"}
		event := events.NewReviewEvent(events.ReviewDeleted, "r1", "booking-1", "guide", "guide-1", time.Now())

		f.repo.EXPECT().Lock(gomock.Any(), gomock.Any(), target).Return(nil)
		f.reviews.EXPECT().GetAllByTarget(gomock.Any(), gomock.Any(), target).Return(nil, nil)
		f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), target, gomock.Any()).Return(errors.New("database error"))

		assert.Error(t, f.svc.HandleReviewEvent(context.Background(), event))
	})
}

func TestRatingService_Get(t *testing.T) {
	target := reviewModel.GearProviderTarget{ProviderID: "gear-1"}

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "rating:get:gear_provider:gear-1", gomock.Any()).DoAndReturn(func(_ context.Context, _ string, v any) error {
			v.(*dto.RatingResponse).Average = 4.2

			return nil
		})

		res, err := f.svc.Get(context.Background(), target)
		require.NoError(t, err)
		assert.InDelta(t, 4.2, res.Average, 0.001)
	})

	t.Run("reads the stored aggregate", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), target).Return(gModel.Rating{
			RatingAverage:   3.9,
			RatingCount:     12,
			RatingBreakdown: gModel.NewJSON(map[string]float64{"quality": 4}),
		}, nil)

		res, err := f.svc.Get(context.Background(), target)
		require.NoError(t, err)
		assert.Equal(t, 12, res.Count)
		assert.InDelta(t, 4, res.Criteria["quality"], 0.001)
	})

	t.Run("unknown entity", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		f.repo.EXPECT().Get(gomock.Any(), target).Return(gModel.Rating{}, failure.NotFound("gear_provider not found"))

		_, err := f.svc.Get(context.Background(), target)
		assert.True(t, failure.IsReason(err, failure.ReasonNotFound))
	})
}

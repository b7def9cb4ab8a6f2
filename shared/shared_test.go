package shared_test

import (
	"context"
	"errors"
	"strings"
	"summit/shared"
	cacheMocks "summit/shared/cache/mocks"
	"summit/shared/constant"
	"summit/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "false", input: "false", expected: boolPtr(false)},
		{name: "numeric true", input: "1", expected: boolPtr(true)},
		{name: "upper case false", input: "FALSE", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type reviewPatch struct {
		Title   string   `db:"title"`
		Body    string   `db:"body"`
		Rating  *float64 `db:"rating"`
		NoDBTag string
	}

	rating := 4.0
	result := shared.TransformFields(reviewPatch{Title: "Great porter", Rating: &rating, NoDBTag: "skip"}, "user-1")

	assert.Equal(t, "Great porter", result["title"])
	assert.Equal(t, &rating, result["rating"])
	assert.NotContains(t, result, "body")
	assert.NotContains(t, result, "NoDBTag")
	assert.Equal(t, "user-1", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("bk-1", "id", "bookings")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "bk-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
		},
	}, result)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get", shared.BuildCacheKey("booking:get"))
	assert.Equal(t, "booking:get:abc", shared.BuildCacheKey("booking:get", "abc"))
	assert.Equal(t, "rating:get:porter:p-1", shared.BuildCacheKey("rating:get", "porter", "p-1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd, Filters: []any{
		dto.Filter{Field: "status", Value: "pending", Operator: dto.FilterOperatorEq},
	}}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	other := shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
	assert.True(t, strings.HasPrefix(first, "booking:gets:"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "booking:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "booking:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "booking:count*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "booking:count")
}

func boolPtr(b bool) *bool {
	return &b
}

func TestUserFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "guide-1")
	ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleGuide)

	id, role := shared.UserFromContext(ctx)
	assert.Equal(t, "guide-1", id)
	assert.Equal(t, constant.RoleGuide, role)

	id, role = shared.UserFromContext(context.Background())
	assert.Empty(t, id)
	assert.Empty(t, role)
}

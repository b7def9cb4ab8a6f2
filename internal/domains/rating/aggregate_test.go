package rating_test

import (
	"summit/internal/domains/rating"
	"testing"

	"github.com/stretchr/testify/assert"
)

var porterCriteria = []string{"reliability", "strength", "attitude", "punctuality", "safety"}

func TestCompute_Idempotent(t *testing.T) {
	scores := []rating.Score{{Rating: 5}, {Rating: 4}, {Rating: 5}}

	first := rating.Compute(scores, nil)
	second := rating.Compute(scores, nil)

	assert.Equal(t, 4.7, first.Average)
	assert.Equal(t, 3, first.Count)
	assert.Equal(t, first, second)
}

func TestCompute_Empty(t *testing.T) {
	agg := rating.Compute(nil, porterCriteria)

	assert.Zero(t, agg.Average)
	assert.Zero(t, agg.Count)
	assert.Len(t, agg.Criteria, 5)

	for _, name := range porterCriteria {
		assert.Zero(t, agg.Criteria[name])
	}
}

func TestCompute_PorterCriteria(t *testing.T) {
	scores := []rating.Score{
		{Rating: 4.4, Criteria: map[string]int{"reliability": 5, "strength": 4, "attitude": 5, "punctuality": 4, "safety": 4}},
		{Rating: 3, Criteria: map[string]int{"reliability": 3, "strength": 3}},
		{Rating: 5},
		{Rating: 4, Criteria: map[string]int{"reliability": 4, "unknown": 1}},
	}

	agg := rating.Compute(scores, porterCriteria)

	assert.Equal(t, 4, agg.Count)
	assert.Equal(t, 4.1, agg.Average)
	assert.Equal(t, 4.0, agg.Criteria["reliability"])
	assert.Equal(t, 3.5, agg.Criteria["strength"])
	assert.Equal(t, 5.0, agg.Criteria["attitude"])
	assert.Equal(t, 4.0, agg.Criteria["punctuality"])
	assert.Equal(t, 4.0, agg.Criteria["safety"])
	assert.NotContains(t, agg.Criteria, "unknown")
}

func TestCompute_OrderIndependent(t *testing.T) {
	a := rating.Compute([]rating.Score{{Rating: 1}, {Rating: 2}, {Rating: 5}}, nil)
	b := rating.Compute([]rating.Score{{Rating: 5}, {Rating: 1}, {Rating: 2}}, nil)

	assert.Equal(t, a, b)
	assert.Equal(t, 2.7, a.Average)
}

package repository

import (
	"context"
	"summit/shared/dto"
	"summit/shared/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

type trip struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Internal string `db:"-"`
	Notes    string
	model.Metadata
}

func TestColumnsOf(t *testing.T) {
	repo := NewRepository[trip]("trip", "trips", "id", nil, nil)

	assert.Equal(t,
		[]string{"id", "name", "created_at", "modified_at", "created_by", "modified_by"},
		repo.columns,
	)
}

func TestSelectList(t *testing.T) {
	repo := NewRepository[trip]("trip", "trips", "id", nil, nil)

	assert.Equal(t, "trips.id, trips.name", repo.selectList([]string{"name", "id"}))
	assert.Contains(t, repo.selectList(nil), "trips.modified_by")
}

func TestBuildWhereClause(t *testing.T) {
	repo := NewRepository[trip]("trip", "trips", "id", nil, nil)

	where, args := repo.BuildWhereClause(context.Background(), dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd})
	assert.Empty(t, where)
	assert.Empty(t, args)

	where, args = repo.BuildWhereClause(context.Background(), dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters:  []any{dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "t1", Table: "trips"}},
	})
	assert.Equal(t, " WHERE (trips.id = :id) ", where)
	assert.Equal(t, map[string]any{"id": "t1"}, args)
}

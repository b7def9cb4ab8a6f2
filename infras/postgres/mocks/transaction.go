package mocks

import (
	"context"
	"summit/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithTransaction implements postgres.Transactor without a database. fn receives a nil tx.
func (t *transactorImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}

package postgres

//go:generate go run go.uber.org/mock/mockgen -source=./transaction.go -destination=./mocks/transaction_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

type transactorImpl struct {
	db *Connection
}

func NewTransactor(db *Connection) Transactor {
	return &transactorImpl{db: db}
}

// WithTransaction runs fn on the write connection and commits when fn returns nil.
// The error returned by fn is passed through unwrapped so typed failures survive.
func (t *transactorImpl) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) (err error) {
	tx, err := t.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback transaction after panic")
			}

			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Error().Err(rbErr).Msg("failed to rollback transaction")
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/internal/domains/booking/model"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
	"summit/shared/logger"
	gRepo "summit/shared/repository"

	"github.com/jmoiron/sqlx"
)

const nextNumberQuery = `INSERT INTO booking_number_sequences (scope, value) VALUES ($1, 1)
ON CONFLICT (scope) DO UPDATE SET value = booking_number_sequences.value + 1
RETURNING value`

type Booking interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateVersioned(ctx context.Context, mod map[string]any, id string, version int) error
	NextNumber(ctx context.Context, sqltx *sqlx.Tx, scope string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertTx reports a taken booking number as a concurrency conflict.
func (repo *repositoryImpl) InsertTx(ctx context.Context, sqltx *sqlx.Tx, booking model.Booking) error {
	err := repo.Repository.InsertTx(ctx, sqltx, booking)
	if gRepo.IsUniqueViolation(err, model.UniqueNumberConstraint) {
		return failure.ConcurrencyConflict("booking number " + booking.BookingNumber + " was issued twice, retry the request")
	}

	return err //nolint:wrapcheck
}

// UpdateVersioned writes mod only while the row is still at version and bumps the version.
func (repo *repositoryImpl) UpdateVersioned(ctx context.Context, mod map[string]any, id string, version int) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.UpdateVersioned")
	defer scope.End()

	mod[model.FieldVersion] = version + 1

	affected, err := repo.UpdateAffected(ctx, mod, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: id, Table: model.TableName},
			gDto.Filter{ArgName: "expected_version", Field: model.FieldVersion, Operator: gDto.FilterOperatorEq, Value: version, Table: model.TableName},
		},
	})
	if err != nil {
		scope.TraceError(err)

		return err //nolint:wrapcheck
	}

	if affected == 0 {
		return failure.ConcurrencyConflict("booking was modified concurrently, reload and retry") //nolint:wrapcheck
	}

	return nil
}

// NextNumber atomically issues the next value of the scope's counter row.
func (repo *repositoryImpl) NextNumber(ctx context.Context, sqltx *sqlx.Tx, scope string) (int64, error) {
	ctx, otelScope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.NextNumber")
	defer otelScope.End()

	otelScope.SetAttribute(constant.OtelQueryAttributeKey, nextNumberQuery)

	var value int64
	if err := sqltx.GetContext(ctx, &value, nextNumberQuery, scope); err != nil {
		logger.ErrorWithStack(err)
		otelScope.TraceError(err)

		return 0, fmt.Errorf("failed to issue booking number: %w", err)
	}

	return value, nil
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"summit/infras/otel"
	"summit/infras/postgres"
	adventureModel "summit/internal/domains/adventure/model"
	guideModel "summit/internal/domains/guide/model"
	porterModel "summit/internal/domains/porter/model"
	"summit/internal/domains/rating"
	reviewModel "summit/internal/domains/review/model"
	"summit/shared/constant"
	"summit/shared/failure"
	"summit/shared/logger"
	gModel "summit/shared/model"

	"github.com/jmoiron/sqlx"
)

const (
	lockQuery   = `SELECT pg_advisory_xact_lock(hashtext($1))`
	saveQuery   = `UPDATE %s SET rating_average = $1, rating_count = $2, rating_breakdown = $3 WHERE id = $4`
	selectQuery = `SELECT rating_average, rating_count, rating_breakdown FROM %s WHERE id = $1`
)

var tables = map[reviewModel.TargetKind]string{
	reviewModel.KindAdventure:    adventureModel.TableName,
	reviewModel.KindGearProvider: adventureModel.GearProviderTableName,
	reviewModel.KindGuide:        guideModel.TableName,
	reviewModel.KindPorter:       porterModel.TableName,
}

type Rating interface {
	Lock(ctx context.Context, sqltx *sqlx.Tx, target reviewModel.Target) error
	Save(ctx context.Context, sqltx *sqlx.Tx, target reviewModel.Target, aggregate rating.Aggregate) error
	Get(ctx context.Context, target reviewModel.Target) (gModel.Rating, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rating {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func table(target reviewModel.Target) (string, error) {
	name, ok := tables[target.Kind()]
	if !ok {
		return constant.Empty, failure.BadRequestFromString(fmt.Sprintf("unknown review target type %q", target.Kind()))
	}

	return name, nil
}

// Lock holds the target's advisory lock until sqltx ends. Recomputations of one target run one at a time.
func (repo *repositoryImpl) Lock(ctx context.Context, sqltx *sqlx.Tx, target reviewModel.Target) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.Lock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	if _, err = sqltx.ExecContext(ctx, lockQuery, reviewModel.TargetKey(target)); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock rating of %s: %w", reviewModel.TargetKey(target), err)
	}

	return nil
}

func (repo *repositoryImpl) Save(ctx context.Context, sqltx *sqlx.Tx, target reviewModel.Target, aggregate rating.Aggregate) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err := table(target)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(saveQuery, name)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	criteria := aggregate.Criteria
	if criteria == nil {
		criteria = map[string]float64{}
	}

	result, err := sqltx.ExecContext(ctx, query, aggregate.Average, aggregate.Count, gModel.NewJSON(criteria), target.ID())
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to save rating: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save rating: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(string(target.Kind()) + " not found") //nolint:wrapcheck
	}

	return nil
}

func (repo *repositoryImpl) Get(ctx context.Context, target reviewModel.Target) (res gModel.Rating, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rating.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, err := table(target)
	if err != nil {
		return res, err
	}

	query := fmt.Sprintf(selectQuery, name)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = repo.db.Read.GetContext(ctx, &res, query, target.ID()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return res, failure.NotFound(string(target.Kind()) + " not found") //nolint:wrapcheck
		}

		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get rating: %w", err)
	}

	return res, nil
}

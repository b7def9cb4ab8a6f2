package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/internal/domains/review/model"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	"summit/shared/failure"
	"summit/shared/logger"
	gRepo "summit/shared/repository"

	"github.com/jmoiron/sqlx"
)

const (
	voteHelpfulQuery    = `UPDATE reviews SET helpful_count = helpful_count + 1 WHERE id = $1`
	voteNotHelpfulQuery = `UPDATE reviews SET not_helpful_count = not_helpful_count + 1 WHERE id = $1`
)

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, mod map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IncrementVote(ctx context.Context, id string, helpful bool) error
	GetAllByTarget(ctx context.Context, sqltx *sqlx.Tx, target model.Target) ([]model.Review, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert reports a second review of the same target for the same booking as a duplicate.
func (repo *repositoryImpl) Insert(ctx context.Context, review model.Review) error {
	err := repo.Repository.Insert(ctx, review)
	if gRepo.IsUniqueViolation(err, model.UniqueReviewConstraint) {
		return failure.DuplicateReview("this booking already has a review for the " + review.TargetType)
	}

	return err //nolint:wrapcheck
}

func (repo *repositoryImpl) IncrementVote(ctx context.Context, id string, helpful bool) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".review.IncrementVote")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := voteNotHelpfulQuery
	if helpful {
		query = voteHelpfulQuery
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to record vote: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to record vote: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("review not found") //nolint:wrapcheck
	}

	return nil
}

// GetAllByTarget reads every review of target inside sqltx.
func (repo *repositoryImpl) GetAllByTarget(ctx context.Context, sqltx *sqlx.Tx, target model.Target) ([]model.Review, error) {
	return repo.GetAllTx(ctx, sqltx, model.TargetFilter(target)) //nolint:wrapcheck
}

package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/internal/domains/guide/model"
	gDto "summit/shared/dto"
	gRepo "summit/shared/repository"
)

type Guide interface {
	Insert(ctx context.Context, model model.Guide) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guide, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guide, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guide]
}

func New(db *postgres.Connection, otel otel.Otel) Guide {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guide](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

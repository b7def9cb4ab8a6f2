package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/internal/domains/porter/model"
	gDto "summit/shared/dto"
	gRepo "summit/shared/repository"
)

type Porter interface {
	Insert(ctx context.Context, model model.Porter) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Porter, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Porter, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Porter]
}

func New(db *postgres.Connection, otel otel.Otel) Porter {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Porter](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

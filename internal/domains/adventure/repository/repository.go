package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/internal/domains/adventure/model"
	"summit/shared"
	"summit/shared/constant"
	gDto "summit/shared/dto"
	gRepo "summit/shared/repository"
	"time"
)

type Adventure interface {
	Insert(ctx context.Context, model model.Adventure) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Adventure, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Adventure, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	InsertWindow(ctx context.Context, window model.AvailabilityWindow) error
	InsertBlackout(ctx context.Context, blackout model.BlackoutDate) error
	GetCalendar(ctx context.Context, adventureID string, start, end time.Time) (model.Calendar, error)
	InsertGearProvider(ctx context.Context, provider model.GearProvider) error
	GetGearProvider(ctx context.Context, id string) (model.GearProvider, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Adventure]
	windows   gRepo.Repository[model.AvailabilityWindow]
	blackouts gRepo.Repository[model.BlackoutDate]
	gear      gRepo.Repository[model.GearProvider]
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Adventure {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Adventure](model.EntityName, model.TableName, model.FieldID, db, otel),
		windows:    gRepo.NewRepository[model.AvailabilityWindow](model.WindowEntityName, model.WindowTableName, model.FieldID, db, otel),
		blackouts:  gRepo.NewRepository[model.BlackoutDate](model.BlackoutEntityName, model.BlackoutTableName, model.FieldID, db, otel),
		gear:       gRepo.NewRepository[model.GearProvider](model.GearProviderEntityName, model.GearProviderTableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (repo *repositoryImpl) InsertWindow(ctx context.Context, window model.AvailabilityWindow) error {
	return repo.windows.Insert(ctx, window) //nolint:wrapcheck
}

func (repo *repositoryImpl) InsertBlackout(ctx context.Context, blackout model.BlackoutDate) error {
	return repo.blackouts.Insert(ctx, blackout) //nolint:wrapcheck
}

// GetCalendar loads the blackout dates inside [start, end] and the windows overlapping it.
func (repo *repositoryImpl) GetCalendar(ctx context.Context, adventureID string, start, end time.Time) (res model.Calendar, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".adventure.GetCalendar")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	from := start.Format(constant.DayDateFormat)
	to := end.Format(constant.DayDateFormat)

	res.Blackouts, err = repo.blackouts.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAdventureID, Operator: gDto.FilterOperatorEq, Value: adventureID, Table: model.BlackoutTableName},
			gDto.Filter{ArgName: "date_from", Field: model.FieldDate, Operator: gDto.FilterOperatorGreaterEq, Value: from, Table: model.BlackoutTableName},
			gDto.Filter{ArgName: "date_to", Field: model.FieldDate, Operator: gDto.FilterOperatorLessEq, Value: to, Table: model.BlackoutTableName},
		},
	})
	if err != nil {
		return res, fmt.Errorf("failed to get blackout dates: %w", err)
	}

	res.Windows, err = repo.windows.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldAdventureID, Operator: gDto.FilterOperatorEq, Value: adventureID, Table: model.WindowTableName},
			gDto.Filter{ArgName: "window_start", Field: model.FieldStartDate, Operator: gDto.FilterOperatorLessEq, Value: to, Table: model.WindowTableName},
			gDto.Filter{ArgName: "window_end", Field: model.FieldEndDate, Operator: gDto.FilterOperatorGreaterEq, Value: from, Table: model.WindowTableName},
		},
	})
	if err != nil {
		return res, fmt.Errorf("failed to get availability windows: %w", err)
	}

	return res, nil
}

func (repo *repositoryImpl) InsertGearProvider(ctx context.Context, provider model.GearProvider) error {
	return repo.gear.Insert(ctx, provider) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetGearProvider(ctx context.Context, id string) (model.GearProvider, error) {
	return repo.gear.Get(ctx, shared.FilterByID(id, model.FieldID, model.GearProviderTableName)) //nolint:wrapcheck
}

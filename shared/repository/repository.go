package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
	"summit/infras/otel"
	"summit/infras/postgres"
	"summit/shared/constant"
	"summit/shared/dto"
	"summit/shared/logger"

	"github.com/jmoiron/sqlx"
)

var errRequiredFilter = errors.New("required filter")

// namedDB is satisfied by both *sqlx.DB and *sqlx.Tx.
type namedDB interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is the table gateway every domain repository embeds. Columns come from the
// db tags of T, including embedded structs such as model.Metadata.
type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	table   string
	entity  string
	primary string
	columns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      db,
		otel:    otl,
		table:   tableName,
		entity:  entityName,
		primary: primaryColumn,
		columns: columnsOf(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

func (repo *Repository[T]) insert(ctx context.Context, db namedDB, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := db.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	var exist bool

	err := repo.one(ctx, repo.db.Read, fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where), args, &exist, scope)
	if err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the zero T when nothing matches; callers check the primary key.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var model T

	err := repo.one(ctx, repo.db.Read, fmt.Sprintf("SELECT %s FROM %s %s", repo.selectList(columns), repo.table, where), args, &model, scope)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var ordering, pagination string

	if params.SortBy != "" && params.SortDir != "" && slices.Contains(repo.columns, params.SortBy) {
		ordering = fmt.Sprintf("ORDER BY %s.%s %s", repo.table, params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		args["offset"] = params.Offset()

		pagination = "LIMIT :limit OFFSET :offset"
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", repo.selectList(columns), repo.table, where, ordering, pagination)

	models, err := repo.many(ctx, repo.db.Read, query, args, scope)
	if err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

// GetAllTx reads inside sqltx so the rows are consistent with locks held by the transaction.
func (repo *Repository[T]) GetAllTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAllTx")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	models, err := repo.many(ctx, sqltx, fmt.Sprintf("SELECT %s FROM %s %s", repo.selectList(columns), repo.table, where), args, scope)
	if err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	var count int

	err := repo.one(ctx, repo.db.Read, fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s", repo.table, repo.primary, repo.table, where), args, &count, scope)
	if err != nil {
		return 0, repo.fail(scope, "count data", err)
	}

	return count, nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "delete data", err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	_, err := repo.UpdateAffected(ctx, mod, filter)

	return err
}

// UpdateAffected is Update that reports how many rows matched, for compare-and-set writes.
func (repo *Repository[T]) UpdateAffected(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	set := make([]string, 0, len(mod))
	for _, col := range slices.Sorted(maps.Keys(mod)) {
		set = append(set, col+" = :"+col)
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(set, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	maps.Copy(args, mod)

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		return 0, repo.fail(scope, "update data", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, repo.fail(scope, "read affected rows", err)
	}

	return affected, nil
}

// BuildWhereClause renders filter as a WHERE clause, or "" when the group is empty.
func (repo *Repository[T]) BuildWhereClause(_ context.Context, filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where + " ", args
}

func (repo *Repository[T]) one(ctx context.Context, db namedDB, query string, args map[string]any, dest any, scope otel.Scope) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return err //nolint:wrapcheck
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, args) //nolint:wrapcheck
}

func (repo *Repository[T]) many(ctx context.Context, db namedDB, query string, args map[string]any, scope otel.Scope) ([]T, error) {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var models []T

	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, err //nolint:wrapcheck
	}
	defer stmt.Close()

	err = stmt.SelectContext(ctx, &models, args)

	return models, err //nolint:wrapcheck
}

// selectList qualifies the requested columns, or every column of T when none are given.
func (repo *Repository[T]) selectList(only []string) string {
	list := make([]string, 0, len(repo.columns))
	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		list = append(list, repo.table+"."+col)
	}

	return strings.Join(list, ", ")
}

func columnsOf(t reflect.Type) []string {
	var columns []string

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

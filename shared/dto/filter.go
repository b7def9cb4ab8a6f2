package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is one named-parameter predicate. ArgName disambiguates two filters on the same field,
// e.g. the two ends of a date range.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null"`
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the predicate. Unknown operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, arg := f.column(), f.arg()

	if op, ok := comparisons[f.Operator]; ok {
		args[arg] = f.Value

		return fmt.Sprintf("%s %s :%s", column, op, arg), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[arg] = fmt.Sprintf("%%%v%%", f.Value)

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), args
	case FilterOperatorIn:
		val := reflect.ValueOf(f.Value)
		if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
			args[arg] = f.Value

			return fmt.Sprintf("%s = :%s", column, arg), args
		}

		if val.Len() == 0 {
			return "FALSE", args
		}

		named := make([]string, val.Len())
		for idx := range val.Len() {
			name := fmt.Sprintf("%s_%d", arg, idx)
			args[name] = val.Index(idx).Interface()
			named[idx] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(named, ", ")), args
	case FilterIsNull:
		return column + " IS NULL", args
	default:
		return "", args
	}
}

// FilterGroup joins Filters and nested FilterGroups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := make([]string, 0, len(f.Filters))

	add := func(where string, arg map[string]any) {
		if where == "" {
			return
		}

		clauses = append(clauses, where)
		maps.Copy(args, arg)
	}

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			add(fill.GetWhereClause())
		case FilterGroup:
			add(fill.GetWhereClause())
		}
	}

	if len(clauses) == 0 {
		return "", args
	}

	return fmt.Sprintf("(%s)", strings.Join(clauses, " "+f.Operator+" ")), args
}

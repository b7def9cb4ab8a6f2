package dto

import (
	"net/http"
	"strconv"
	"strings"
	"summit/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest reads page, limit, sort_by and sort_dir. Invalid numbers are ignored and
// the limit is capped at constant.MaxValueLimit. With defaults set, page and limit are never zero.
func (q *QueryParams) FromRequest(r *http.Request, defaults bool) {
	query := r.URL.Query()

	if page := positive(query.Get(constant.RequestParamPage)); page > 0 {
		q.Page = page
	}

	if limit := positive(query.Get(constant.RequestParamLimit)); limit > 0 {
		q.Limit = min(limit, constant.MaxValueLimit)
	}

	if sortBy := query.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if dir := strings.ToUpper(query.Get(constant.RequestParamSortDir)); dir == SortDirAsc || dir == SortDirDesc {
		q.SortDir = dir
	}

	if !defaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Offset is the number of rows skipped before the current page.
func (q QueryParams) Offset() int {
	if q.Page <= 1 || q.Limit <= 0 {
		return 0
	}

	return (q.Page - 1) * q.Limit
}

func positive(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0
	}

	return n
}

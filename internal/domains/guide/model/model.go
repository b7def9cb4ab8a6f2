package model

import (
	"summit/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "guides"
	EntityName = "guide"

	FieldID        = "id"
	FieldName      = "name"
	FieldDailyRate = "daily_rate"
	FieldAvailable = "available"
)

// Guide is the profile of a guide account and shares its id.
type Guide struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Bio       string          `db:"bio"`
	Languages string          `db:"languages"`
	DailyRate decimal.Decimal `db:"daily_rate"`
	Currency  string          `db:"currency"`
	Available bool            `db:"available"`
	model.Rating
	model.Metadata
}

package model

import (
	"summit/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "porters"
	EntityName = "porter"

	FieldID        = "id"
	FieldName      = "name"
	FieldDailyRate = "daily_rate"
	FieldAvailable = "available"
)

// Porter is the profile of a porter account and shares its id.
type Porter struct {
	ID        string          `db:"id"`
	Name      string          `db:"name"`
	Bio       string          `db:"bio"`
	MaxLoadKg int             `db:"max_load_kg"`
	DailyRate decimal.Decimal `db:"daily_rate"`
	Currency  string          `db:"currency"`
	Available bool            `db:"available"`
	model.Rating
	model.Metadata
}

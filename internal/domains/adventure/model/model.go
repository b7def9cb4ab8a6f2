package model

import (
	"summit/internal/domains/adventure/availability"
	"summit/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "adventures"
	EntityName = "adventure"

	FieldID           = "id"
	FieldProviderID   = "provider_id"
	FieldName         = "name"
	FieldLocation     = "location"
	FieldDifficulty   = "difficulty"
	FieldBasePrice    = "base_price"
	FieldCurrency     = "currency"
	FieldMaxGroupSize = "max_group_size"
)

const (
	WindowTableName  = "availability_windows"
	WindowEntityName = "availability_window"

	FieldAdventureID = "adventure_id"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
)

const (
	BlackoutTableName  = "blackout_dates"
	BlackoutEntityName = "blackout_date"

	FieldDate = "date"
)

const (
	GearProviderTableName  = "gear_providers"
	GearProviderEntityName = "gear_provider"

	FieldOwnerID = "owner_id"
)

type Adventure struct {
	ID           string          `db:"id"`
	ProviderID   string          `db:"provider_id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Location     string          `db:"location"`
	Difficulty   string          `db:"difficulty"`
	BasePrice    decimal.Decimal `db:"base_price"`
	Currency     string          `db:"currency"`
	MaxGroupSize int             `db:"max_group_size"`
	// PermitCost and EquipmentCost are charged per participant.
	PermitCost    decimal.Decimal `db:"permit_cost"`
	EquipmentCost decimal.Decimal `db:"equipment_cost"`
	TaxPercent    float64         `db:"tax_percent"`
	// Early-bird and group discounts are percentages of the base price.
	EarlyBirdDays        int     `db:"early_bird_days"`
	EarlyBirdPercent     float64 `db:"early_bird_percent"`
	GroupDiscountSize    int     `db:"group_discount_size"`
	GroupDiscountPercent float64 `db:"group_discount_percent"`
	model.Rating
	model.Metadata
}

type AvailabilityWindow struct {
	ID          string    `db:"id"`
	AdventureID string    `db:"adventure_id"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Available   bool      `db:"available"`
	Reason      string    `db:"reason"`
	model.Metadata
}

type BlackoutDate struct {
	ID          string    `db:"id"`
	AdventureID string    `db:"adventure_id"`
	Date        time.Time `db:"date"`
	Reason      string    `db:"reason"`
	model.Metadata
}

// GearProvider rents equipment for a booking, priced per participant per day.
type GearProvider struct {
	ID        string          `db:"id"`
	OwnerID   string          `db:"owner_id"`
	Name      string          `db:"name"`
	DailyRate decimal.Decimal `db:"daily_rate"`
	Currency  string          `db:"currency"`
	model.Rating
	model.Metadata
}

// Calendar is the part of an adventure's schedule that touches a requested range.
type Calendar struct {
	Blackouts []BlackoutDate
	Windows   []AvailabilityWindow
}

// Check evaluates the range with every stored date read on the calendar of start's location.
func (c Calendar) Check(start, end time.Time) availability.Result {
	loc := start.Location()

	blackouts := make([]time.Time, len(c.Blackouts))
	for i, b := range c.Blackouts {
		blackouts[i] = onDay(b.Date, loc)
	}

	windows := make([]availability.Window, len(c.Windows))
	for i, w := range c.Windows {
		windows[i] = availability.Window{
			Start:     onDay(w.StartDate, loc),
			End:       onDay(w.EndDate, loc),
			Available: w.Available,
			Reason:    w.Reason,
		}
	}

	return availability.Check(blackouts, windows, start, end)
}

// onDay keeps the calendar date of a DATE column and moves it into loc.
func onDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

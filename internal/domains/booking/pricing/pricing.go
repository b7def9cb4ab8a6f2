package pricing

import (
	"errors"
	"fmt"
	"summit/shared/money"
	"summit/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrGroupSize = errors.New("group size must be at least 1")
	ErrDuration  = errors.New("duration must be at least 1 day")
)

type Discounts struct {
	EarlyBird   decimal.Decimal `json:"early_bird"`
	Group       decimal.Decimal `json:"group"`
	Loyalty     decimal.Decimal `json:"loyalty"`
	Promotional decimal.Decimal `json:"promotional"`
}

func (d Discounts) Sum() decimal.Decimal {
	return money.Sum(d.EarlyBird, d.Group, d.Loyalty, d.Promotional)
}

type Input struct {
	BasePrice       decimal.Decimal
	GroupSize       int
	GuideDailyRate  *decimal.Decimal
	PorterDailyRate *decimal.Decimal
	DurationDays    int
	Permits         decimal.Decimal
	Equipment       decimal.Decimal
	Taxes           decimal.Decimal
	Discounts       Discounts
	Currency        string
}

type Breakdown struct {
	BasePrice     decimal.Decimal `json:"base_price"`
	GuidePrice    decimal.Decimal `json:"guide_price"`
	PorterPrice   decimal.Decimal `json:"porter_price"`
	PermitCosts   decimal.Decimal `json:"permit_costs"`
	EquipmentCost decimal.Decimal `json:"equipment_cost"`
	Taxes         decimal.Decimal `json:"taxes"`
	Discounts     Discounts       `json:"discounts"`
	Total         decimal.Decimal `json:"total"`
	Currency      string          `json:"currency"`
}

// Subtotal is the sum of every charged component before discounts.
func (b Breakdown) Subtotal() decimal.Decimal {
	return money.Sum(b.BasePrice, b.GuidePrice, b.PorterPrice, b.PermitCosts, b.EquipmentCost, b.Taxes)
}

// DurationDays is the number of started days between start and end, never less than 1.
// Days are counted on the calendar, so a daylight saving change inside the trip is not billed.
func DurationDays(start, end time.Time) int {
	if days := timezone.DaysBetween(start, end); days > 1 {
		return days
	}

	return 1
}

type amount struct {
	name  string
	value *decimal.Decimal
}

// checkAmounts reports the first negative amount in the order given.
func checkAmounts(amounts []amount) error {
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			return fmt.Errorf("%s must not be negative", a.name)
		}
	}

	return nil
}

func Compose(in Input) (Breakdown, error) {
	if in.GroupSize < 1 {
		return Breakdown{}, ErrGroupSize
	}

	if in.DurationDays < 1 {
		return Breakdown{}, ErrDuration
	}

	err := checkAmounts([]amount{
		{name: "base price", value: &in.BasePrice},
		{name: "guide daily rate", value: in.GuideDailyRate},
		{name: "porter daily rate", value: in.PorterDailyRate},
		{name: "permit costs", value: &in.Permits},
		{name: "equipment cost", value: &in.Equipment},
		{name: "taxes", value: &in.Taxes},
		{name: "early bird discount", value: &in.Discounts.EarlyBird},
		{name: "group discount", value: &in.Discounts.Group},
		{name: "loyalty discount", value: &in.Discounts.Loyalty},
		{name: "promotional discount", value: &in.Discounts.Promotional},
	})
	if err != nil {
		return Breakdown{}, err
	}

	out := Breakdown{
		BasePrice:     money.Round(money.Times(in.BasePrice, in.GroupSize)),
		GuidePrice:    decimal.Zero,
		PorterPrice:   decimal.Zero,
		PermitCosts:   money.Round(in.Permits),
		EquipmentCost: money.Round(in.Equipment),
		Taxes:         money.Round(in.Taxes),
		Discounts: Discounts{
			EarlyBird:   money.Round(in.Discounts.EarlyBird),
			Group:       money.Round(in.Discounts.Group),
			Loyalty:     money.Round(in.Discounts.Loyalty),
			Promotional: money.Round(in.Discounts.Promotional),
		},
		Currency: in.Currency,
	}

	if in.GuideDailyRate != nil {
		out.GuidePrice = money.Round(money.Times(*in.GuideDailyRate, in.DurationDays))
	}

	if in.PorterDailyRate != nil {
		out.PorterPrice = money.Round(money.Times(*in.PorterDailyRate, in.DurationDays))
	}

	out.Total = money.Round(money.NonNegative(out.Subtotal().Sub(out.Discounts.Sum())))

	return out, nil
}

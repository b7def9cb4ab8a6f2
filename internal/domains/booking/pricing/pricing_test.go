package pricing_test

import (
	"summit/internal/domains/booking/pricing"
	"summit/shared/money"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v string) decimal.Decimal {
	return money.FromString(v)
}

func rate(v string) *decimal.Decimal {
	d := amount(v)

	return &d
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	assert.True(t, amount(want).Equal(got), "want %s, got %s", want, got)
}

func TestCompose_WorkedExample(t *testing.T) {
	out, err := pricing.Compose(pricing.Input{
		BasePrice:       amount("1000"),
		GroupSize:       2,
		GuideDailyRate:  rate("50"),
		PorterDailyRate: rate("25"),
		DurationDays:    10,
		Permits:         amount("80"),
		Equipment:       amount("40"),
		Taxes:           amount("60"),
		Discounts:       pricing.Discounts{EarlyBird: amount("100"), Group: amount("50")},
		Currency:        "NPR",
	})
	require.NoError(t, err)

	assertAmount(t, "2000", out.BasePrice)
	assertAmount(t, "500", out.GuidePrice)
	assertAmount(t, "250", out.PorterPrice)
	assertAmount(t, "80", out.PermitCosts)
	assertAmount(t, "40", out.EquipmentCost)
	assertAmount(t, "60", out.Taxes)
	assertAmount(t, "150", out.Discounts.Sum())
	assertAmount(t, "2780", out.Total)
	assert.Equal(t, "NPR", out.Currency)
}

func TestCompose_Invariant(t *testing.T) {
	inputs := []pricing.Input{
		{BasePrice: amount("120.5"), GroupSize: 3, DurationDays: 4, Taxes: amount("12.25")},
		{BasePrice: amount("99.99"), GroupSize: 1, GuideDailyRate: rate("30"), DurationDays: 7, Discounts: pricing.Discounts{Loyalty: amount("10")}},
		{BasePrice: amount("10"), GroupSize: 1, DurationDays: 1, Discounts: pricing.Discounts{Promotional: amount("500")}},
		{BasePrice: amount("0"), GroupSize: 5, PorterDailyRate: rate("18.75"), DurationDays: 3, Permits: amount("45"), Equipment: amount("9.5")},
		{BasePrice: amount("0.1"), GroupSize: 3, DurationDays: 1, Taxes: amount("0.2")},
	}

	for _, in := range inputs {
		out, err := pricing.Compose(in)
		require.NoError(t, err)

		want := money.NonNegative(out.Subtotal().Sub(out.Discounts.Sum()))

		assertAmount(t, want.String(), out.Total)
		assert.False(t, out.Total.IsNegative())
	}
}

func TestCompose_UnassignedRolesCostNothing(t *testing.T) {
	out, err := pricing.Compose(pricing.Input{BasePrice: amount("100"), GroupSize: 1, DurationDays: 5})
	require.NoError(t, err)

	assert.True(t, out.GuidePrice.IsZero())
	assert.True(t, out.PorterPrice.IsZero())
	assertAmount(t, "100", out.Total)
}

func TestCompose_DiscountsClampAtZero(t *testing.T) {
	out, err := pricing.Compose(pricing.Input{BasePrice: amount("10"), GroupSize: 1, DurationDays: 1, Discounts: pricing.Discounts{Promotional: amount("500")}})
	require.NoError(t, err)

	assert.True(t, out.Total.IsZero())
}

func TestCompose_Validation(t *testing.T) {
	tests := []struct {
		name string
		in   pricing.Input
		err  string
	}{
		{name: "zero group", in: pricing.Input{BasePrice: amount("1"), GroupSize: 0, DurationDays: 1}, err: pricing.ErrGroupSize.Error()},
		{name: "zero duration", in: pricing.Input{BasePrice: amount("1"), GroupSize: 1, DurationDays: 0}, err: pricing.ErrDuration.Error()},
		{name: "negative base", in: pricing.Input{BasePrice: amount("-1"), GroupSize: 1, DurationDays: 1}, err: "base price must not be negative"},
		{name: "negative taxes", in: pricing.Input{BasePrice: amount("1"), GroupSize: 1, DurationDays: 1, Taxes: amount("-3")}, err: "taxes must not be negative"},
		{name: "negative guide rate", in: pricing.Input{BasePrice: amount("1"), GroupSize: 1, DurationDays: 1, GuideDailyRate: rate("-5")}, err: "guide daily rate must not be negative"},
		{name: "negative discount", in: pricing.Input{BasePrice: amount("1"), GroupSize: 1, DurationDays: 1, Discounts: pricing.Discounts{Group: amount("-1")}}, err: "group discount must not be negative"},
		{
			name: "several negatives report the first component",
			in: pricing.Input{
				BasePrice:    amount("-1"),
				GroupSize:    1,
				DurationDays: 1,
				Permits:      amount("-2"),
				Taxes:        amount("-3"),
				Discounts:    pricing.Discounts{Loyalty: amount("-4")},
			},
			err: "base price must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 5 {
				_, err := pricing.Compose(tt.in)

				require.Error(t, err)
				assert.Equal(t, tt.err, err.Error())
			}
		})
	}
}

func TestDurationDays(t *testing.T) {
	start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 10, pricing.DurationDays(start, start.AddDate(0, 0, 10)))
	assert.Equal(t, 3, pricing.DurationDays(start, start.Add(50*time.Hour)))
	assert.Equal(t, 1, pricing.DurationDays(start, start))
	assert.Equal(t, 1, pricing.DurationDays(start, start.Add(-time.Hour)))

	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	fallBack := time.Date(2026, time.October, 24, 0, 0, 0, 0, berlin)
	assert.Equal(t, 3, pricing.DurationDays(fallBack, time.Date(2026, time.October, 27, 0, 0, 0, 0, berlin)))

	springForward := time.Date(2026, time.March, 27, 0, 0, 0, 0, berlin)
	assert.Equal(t, 4, pricing.DurationDays(springForward, time.Date(2026, time.March, 31, 0, 0, 0, 0, berlin)))
}

func TestCompose_GuideBilledPerCalendarDay(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	days := pricing.DurationDays(time.Date(2026, time.October, 24, 0, 0, 0, 0, berlin), time.Date(2026, time.October, 27, 0, 0, 0, 0, berlin))

	out, err := pricing.Compose(pricing.Input{BasePrice: amount("0"), GroupSize: 1, GuideDailyRate: rate("40"), DurationDays: days})
	require.NoError(t, err)

	assertAmount(t, "120", out.GuidePrice)
}

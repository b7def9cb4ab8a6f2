package money

import "github.com/shopspring/decimal"

// Places is the precision amounts are stored with, matching the NUMERIC(12,2) columns.
const Places = 2

var hundred = decimal.NewFromInt(100)

func init() {
	// Amounts travel as JSON numbers, the way clients send them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Round rounds an amount to cents, half away from zero.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(Places)
}

// Percent returns pct percent of amount, rounded to cents.
func Percent(amount decimal.Decimal, pct float64) decimal.Decimal {
	return Round(amount.Mul(decimal.NewFromFloat(pct)).Div(hundred))
}

// Times multiplies a unit amount by a count of people or days.
func Times(amount decimal.Decimal, n int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(n)))
}

func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range amounts {
		total = total.Add(amount)
	}

	return total
}

// NonNegative clamps amount at zero.
func NonNegative(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}

	return amount
}

// FromString parses an amount such as "12.50". It panics on malformed input and is meant for
// constants and tests.
func FromString(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

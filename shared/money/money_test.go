package money_test

import (
	"encoding/json"
	"summit/shared/money"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRound(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "10.125", want: "10.13"},
		{in: "10.1249", want: "10.12"},
		{in: "0.004", want: "0"},
		{in: "-2.345", want: "-2.35"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Round(money.FromString(tt.in)).String())
		})
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "50", money.Percent(decimal.NewFromInt(100), 50).String())
	assert.Equal(t, "33.33", money.Percent(decimal.NewFromInt(100), 33.333).String())
	assert.True(t, money.Percent(decimal.NewFromInt(100), 0).IsZero())
}

func TestSumAndTimes(t *testing.T) {
	assert.Equal(t, "0.3", money.Sum(money.FromString("0.1"), money.FromString("0.2")).String())
	assert.True(t, money.Sum().IsZero())
	assert.Equal(t, "56.25", money.Times(money.FromString("18.75"), 3).String())
}

func TestNonNegative(t *testing.T) {
	assert.True(t, money.NonNegative(decimal.NewFromInt(-5)).IsZero())
	assert.Equal(t, "5", money.NonNegative(decimal.NewFromInt(5)).String())
}

func TestJSON(t *testing.T) {
	raw, err := json.Marshal(struct {
		Total decimal.Decimal `json:"total"`
	}{Total: money.FromString("2780.50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":2780.5}`, string(raw))

	var in struct {
		Amount decimal.Decimal `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount":0.1}`), &in))
	assert.Equal(t, "0.1", in.Amount.String())
}

package cancellation

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"summit/internal/domains/booking/lifecycle"
	"summit/shared/failure"
	"summit/shared/money"
	"summit/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

var ErrReasonRequired = errors.New("cancellation reason is required")

// DaysUntilTrip is the number of started days left before start, negative once it has passed.
func DaysUntilTrip(start, now time.Time) int {
	return timezone.DaysBetween(now, start)
}

func CanCancel(status lifecycle.Status, start, now time.Time) bool {
	return DaysUntilTrip(start, now) > 0 && (status == lifecycle.StatusPending || status == lifecycle.StatusConfirmed)
}

type Request struct {
	Status     lifecycle.Status
	StartDate  time.Time
	Now        time.Time
	Reason     string
	Actor      lifecycle.Actor
	PaidAmount decimal.Decimal
}

type Record struct {
	Cancelled       bool            `json:"cancelled"`
	CancelledBy     string          `json:"cancelled_by"`
	CancelledAt     time.Time       `json:"cancelled_at"`
	Reason          string          `json:"reason"`
	RefundEligible  bool            `json:"refund_eligible"`
	RefundAmount    decimal.Decimal `json:"refund_amount"`
	CancellationFee decimal.Decimal `json:"cancellation_fee"`
}

type Refund struct {
	Eligible bool            `json:"eligible"`
	Amount   decimal.Decimal `json:"amount"`
	Fee      decimal.Decimal `json:"fee"`
}

// RefundPolicy computes the financial consequence of a cancellation.
type RefundPolicy interface {
	Refund(daysUntilTrip int, paid decimal.Decimal) Refund
}

// NoRefund is used until a refund schedule has been agreed. It refunds nothing and charges nothing.
type NoRefund struct{}

func (NoRefund) Refund(_ int, _ decimal.Decimal) Refund {
	return Refund{Amount: decimal.Zero, Fee: decimal.Zero}
}

type Tier struct {
	MinDays int
	Percent float64
}

// Tiered refunds a percentage of the paid amount picked by the largest MinDays not exceeding
// the days left. The remainder of the paid amount is kept as the cancellation fee.
type Tiered struct {
	tiers []Tier
}

func NewTiered(tiers ...Tier) Tiered {
	sorted := slices.Clone(tiers)
	slices.SortFunc(sorted, func(a, b Tier) int { return b.MinDays - a.MinDays })

	return Tiered{tiers: sorted}
}

func (t Tiered) Refund(daysUntilTrip int, paid decimal.Decimal) Refund {
	for _, tier := range t.tiers {
		if daysUntilTrip < tier.MinDays {
			continue
		}

		amount := money.Percent(paid, tier.Percent)

		return Refund{
			Eligible: amount.IsPositive(),
			Amount:   amount,
			Fee:      money.Round(paid.Sub(amount)),
		}
	}

	return Refund{Amount: decimal.Zero, Fee: money.Round(paid)}
}

// ParsePolicy reads a "minDays:percent" list such as "30:100,7:50". An empty value yields NoRefund.
func ParsePolicy(value string) (RefundPolicy, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return NoRefund{}, nil
	}

	var tiers []Tier

	for _, part := range strings.Split(value, ",") {
		days, pct, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid refund tier %q", part)
		}

		minDays, err := strconv.Atoi(days)
		if err != nil || minDays < 0 {
			return nil, fmt.Errorf("invalid refund tier days %q", days)
		}

		percent, err := strconv.ParseFloat(pct, 64)
		if err != nil || percent < 0 || percent > 100 {
			return nil, fmt.Errorf("invalid refund tier percent %q", pct)
		}

		tiers = append(tiers, Tier{MinDays: minDays, Percent: percent})
	}

	return NewTiered(tiers...), nil
}

type Eligibility struct {
	Cancellable   bool   `json:"cancellable"`
	DaysUntilTrip int    `json:"days_until_trip"`
	Refund        Refund `json:"refund"`
}

type Evaluator struct {
	policy RefundPolicy
}

func NewEvaluator(policy RefundPolicy) *Evaluator {
	if policy == nil {
		policy = NoRefund{}
	}

	return &Evaluator{policy: policy}
}

// Preview reports eligibility and the refund a cancellation would carry without producing a record.
func (e *Evaluator) Preview(status lifecycle.Status, start, now time.Time, paid decimal.Decimal) Eligibility {
	days := DaysUntilTrip(start, now)
	if !CanCancel(status, start, now) {
		return Eligibility{DaysUntilTrip: days, Refund: Refund{Amount: decimal.Zero, Fee: decimal.Zero}}
	}

	return Eligibility{
		Cancellable:   true,
		DaysUntilTrip: days,
		Refund:        e.policy.Refund(days, paid),
	}
}

func (e *Evaluator) Evaluate(req Request) (Record, error) {
	if strings.TrimSpace(req.Reason) == "" {
		return Record{}, failure.BadRequest(ErrReasonRequired)
	}

	if !CanCancel(req.Status, req.StartDate, req.Now) {
		return Record{}, failure.NotCancellable(fmt.Sprintf("a %s booking starting in %d day(s) cannot be cancelled", req.Status, DaysUntilTrip(req.StartDate, req.Now)))
	}

	refund := e.policy.Refund(DaysUntilTrip(req.StartDate, req.Now), req.PaidAmount)

	return Record{
		Cancelled:       true,
		CancelledBy:     req.Actor.ID,
		CancelledAt:     req.Now,
		Reason:          strings.TrimSpace(req.Reason),
		RefundEligible:  refund.Eligible,
		RefundAmount:    refund.Amount,
		CancellationFee: refund.Fee,
	}, nil
}

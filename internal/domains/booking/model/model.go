package model

import (
	"summit/internal/domains/booking/cancellation"
	"summit/internal/domains/booking/lifecycle"
	"summit/internal/domains/booking/pricing"
	"summit/shared/model"
	"summit/shared/timezone"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldBookingNumber  = "booking_number"
	FieldCustomerID     = "customer_id"
	FieldAdventureID    = "adventure_id"
	FieldGuideID        = "guide_id"
	FieldPorterID       = "porter_id"
	FieldGearProviderID = "gear_provider_id"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldStatus         = "status"
	FieldVersion        = "version"
	FieldProgress       = "progress"

	FieldPaymentStatus   = "payment_status"
	FieldTransactions    = "transactions"
	FieldPaidAmount      = "paid_amount"
	FieldRemainingAmount = "remaining_amount"
	FieldRefundAmount    = "refund_amount"

	FieldIsCancelled              = "is_cancelled"
	FieldCancelledBy              = "cancelled_by"
	FieldCancelledAt              = "cancelled_at"
	FieldCancellationReason       = "cancellation_reason"
	FieldRefundEligible           = "refund_eligible"
	FieldCancellationRefundAmount = "cancellation_refund_amount"
	FieldCancellationFee          = "cancellation_fee"

	UniqueNumberConstraint = "bookings_booking_number_key"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPartial  = "partial"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

const (
	TransactionKindPayment = "payment"
	TransactionKindRefund  = "refund"
)

type Participant struct {
	Name             string `json:"name"`
	Age              int    `json:"age,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
}

type Milestone struct {
	Title      string    `json:"title"`
	Location   string    `json:"location,omitempty"`
	Note       string    `json:"note,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	RecordedBy string    `json:"recorded_by"`
}

type DailyReport struct {
	Day        int       `json:"day"`
	Summary    string    `json:"summary"`
	Weather    string    `json:"weather,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
	RecordedBy string    `json:"recorded_by"`
}

// Progress is append-only.
type Progress struct {
	Milestones   []Milestone   `json:"milestones"`
	DailyReports []DailyReport `json:"daily_reports"`
}

type Transaction struct {
	ID         string          `json:"id"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method,omitempty"`
	Reference  string          `json:"reference,omitempty"`
	RecordedAt time.Time       `json:"recorded_at"`
	RecordedBy string          `json:"recorded_by"`
}

// Pricing is the priced snapshot taken when the booking was created.
type Pricing struct {
	BasePrice           decimal.Decimal `db:"base_price"`
	GuidePrice          decimal.Decimal `db:"guide_price"`
	PorterPrice         decimal.Decimal `db:"porter_price"`
	PermitCosts         decimal.Decimal `db:"permit_costs"`
	EquipmentCost       decimal.Decimal `db:"equipment_cost"`
	Taxes               decimal.Decimal `db:"taxes"`
	DiscountEarlyBird   decimal.Decimal `db:"discount_early_bird"`
	DiscountGroup       decimal.Decimal `db:"discount_group"`
	DiscountLoyalty     decimal.Decimal `db:"discount_loyalty"`
	DiscountPromotional decimal.Decimal `db:"discount_promotional"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	Currency            string          `db:"currency"`
}

func NewPricing(b pricing.Breakdown) Pricing {
	return Pricing{
		BasePrice:           b.BasePrice,
		GuidePrice:          b.GuidePrice,
		PorterPrice:         b.PorterPrice,
		PermitCosts:         b.PermitCosts,
		EquipmentCost:       b.EquipmentCost,
		Taxes:               b.Taxes,
		DiscountEarlyBird:   b.Discounts.EarlyBird,
		DiscountGroup:       b.Discounts.Group,
		DiscountLoyalty:     b.Discounts.Loyalty,
		DiscountPromotional: b.Discounts.Promotional,
		TotalAmount:         b.Total,
		Currency:            b.Currency,
	}
}

func (p Pricing) Breakdown() pricing.Breakdown {
	return pricing.Breakdown{
		BasePrice:     p.BasePrice,
		GuidePrice:    p.GuidePrice,
		PorterPrice:   p.PorterPrice,
		PermitCosts:   p.PermitCosts,
		EquipmentCost: p.EquipmentCost,
		Taxes:         p.Taxes,
		Discounts: pricing.Discounts{
			EarlyBird:   p.DiscountEarlyBird,
			Group:       p.DiscountGroup,
			Loyalty:     p.DiscountLoyalty,
			Promotional: p.DiscountPromotional,
		},
		Total:    p.TotalAmount,
		Currency: p.Currency,
	}
}

type Payment struct {
	PaymentStatus   string                    `db:"payment_status"`
	Transactions    model.JSON[[]Transaction] `db:"transactions"`
	PaidAmount      decimal.Decimal           `db:"paid_amount"`
	RemainingAmount decimal.Decimal           `db:"remaining_amount"`
	RefundAmount    decimal.Decimal           `db:"refund_amount"`
}

type Cancellation struct {
	IsCancelled              bool            `db:"is_cancelled"`
	CancelledBy              string          `db:"cancelled_by"`
	CancelledAt              *time.Time      `db:"cancelled_at"`
	CancellationReason       string          `db:"cancellation_reason"`
	RefundEligible           bool            `db:"refund_eligible"`
	CancellationRefundAmount decimal.Decimal `db:"cancellation_refund_amount"`
	CancellationFee          decimal.Decimal `db:"cancellation_fee"`
}

func NewCancellation(record cancellation.Record) Cancellation {
	at := record.CancelledAt

	return Cancellation{
		IsCancelled:              record.Cancelled,
		CancelledBy:              record.CancelledBy,
		CancelledAt:              &at,
		CancellationReason:       record.Reason,
		RefundEligible:           record.RefundEligible,
		CancellationRefundAmount: record.RefundAmount,
		CancellationFee:          record.CancellationFee,
	}
}

type Booking struct {
	ID                  string                    `db:"id"`
	BookingNumber       string                    `db:"booking_number"`
	CustomerID          string                    `db:"customer_id"`
	AdventureID         string                    `db:"adventure_id"`
	GuideID             *string                   `db:"guide_id"`
	PorterID            *string                   `db:"porter_id"`
	GearProviderID      *string                   `db:"gear_provider_id"`
	StartDate           time.Time                 `db:"start_date"`
	EndDate             time.Time                 `db:"end_date"`
	DurationDays        int                       `db:"duration_days"`
	GroupSize           int                       `db:"group_size"`
	Participants        model.JSON[[]Participant] `db:"participants"`
	SpecialRequirements string                    `db:"special_requirements"`
	Status              string                    `db:"status"`
	Progress            model.JSON[Progress]      `db:"progress"`
	Version             int                       `db:"version"`
	Pricing
	Payment
	Cancellation
	model.Metadata
}

func (b Booking) Lifecycle() lifecycle.Status {
	return lifecycle.Status(b.Status)
}

func (b Booking) Parties() lifecycle.Parties {
	return lifecycle.Parties{
		CustomerID: b.CustomerID,
		GuideID:    b.GuideID,
		PorterID:   b.PorterID,
	}
}

// TripStart is midnight of the start date in the app timezone.
func (b Booking) TripStart() time.Time {
	y, m, d := b.StartDate.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, timezone.Location())
}

// PaymentStatusFor derives the payment status from what has been paid so far.
func PaymentStatusFor(paid, total decimal.Decimal) string {
	switch {
	case !paid.IsPositive():
		return PaymentStatusPending
	case paid.LessThan(total):
		return PaymentStatusPartial
	default:
		return PaymentStatusPaid
	}
}

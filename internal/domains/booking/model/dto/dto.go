package dto

import (
	"summit/internal/domains/booking/cancellation"
	"summit/internal/domains/booking/model"
	"summit/internal/domains/booking/pricing"
	"summit/shared"
	"summit/shared/constant"
	gDto "summit/shared/dto"

	"github.com/shopspring/decimal"
)

type ParticipantRequest struct {
	Name             string `json:"name"              validate:"required,max=255"`
	Age              int    `json:"age"               validate:"omitempty,gte=0,lte=120"`
	Nationality      string `json:"nationality"       validate:"omitempty,max=100"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=255"`
}

// DiscountRequest carries the loyalty and promotional discounts an administrator grants.
type DiscountRequest struct {
	Loyalty     decimal.Decimal `json:"loyalty"     validate:"gte=0" swaggertype:"number"`
	Promotional decimal.Decimal `json:"promotional" validate:"gte=0" swaggertype:"number"`
}

type CreateBookingRequest struct {
	CustomerID          string               `json:"customer_id"          validate:"omitempty,uuid"`
	AdventureID         string               `json:"adventure_id"         validate:"required,uuid"`
	GuideID             string               `json:"guide_id"             validate:"omitempty,uuid"`
	PorterID            string               `json:"porter_id"            validate:"omitempty,uuid"`
	GearProviderID      string               `json:"gear_provider_id"     validate:"omitempty,uuid"`
	StartDate           string               `json:"start_date"           validate:"required,date"`
	EndDate             string               `json:"end_date"             validate:"required,date"`
	GroupSize           int                  `json:"group_size"           validate:"required,gte=1"`
	Participants        []ParticipantRequest `json:"participants"         validate:"omitempty,dive"`
	SpecialRequirements string               `json:"special_requirements" validate:"omitempty,max=2000"`
	Discounts           *DiscountRequest     `json:"discounts"            validate:"omitempty"`
}

func (c *CreateBookingRequest) ToParticipants() []model.Participant {
	participants := make([]model.Participant, len(c.Participants))
	for i, p := range c.Participants {
		participants[i] = model.Participant{
			Name:             p.Name,
			Age:              p.Age,
			Nationality:      p.Nationality,
			EmergencyContact: p.EmergencyContact,
		}
	}

	return participants
}

type MilestoneRequest struct {
	Title    string `json:"title"    validate:"required,max=255"`
	Location string `json:"location" validate:"omitempty,max=255"`
	Note     string `json:"note"     validate:"omitempty,max=2000"`
}

type DailyReportRequest struct {
	Day     int    `json:"day"     validate:"gte=1"`
	Summary string `json:"summary" validate:"required,max=4000"`
	Weather string `json:"weather" validate:"omitempty,max=255"`
}

type RecordProgressRequest struct {
	Milestone   *MilestoneRequest   `json:"milestone"    validate:"required_without=DailyReport"`
	DailyReport *DailyReportRequest `json:"daily_report" validate:"required_without=Milestone"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

type RecordPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount"    validate:"gt=0" swaggertype:"number"`
	Method    string          `json:"method"    validate:"required,max=50"`
	Reference string          `json:"reference" validate:"omitempty,max=255"`
}

// RefundBookingRequest records a refund. A zero amount refunds what the cancellation policy granted.
type RefundBookingRequest struct {
	Amount    decimal.Decimal `json:"amount"    validate:"gte=0" swaggertype:"number"`
	Reference string          `json:"reference" validate:"omitempty,max=255"`
}

type PaymentResponse struct {
	Status          string              `json:"status"`
	Transactions    []model.Transaction `json:"transactions"`
	PaidAmount      decimal.Decimal     `json:"paid_amount"`
	RemainingAmount decimal.Decimal     `json:"remaining_amount"`
	RefundAmount    decimal.Decimal     `json:"refund_amount"`
}

type BookingResponse struct {
	ID                  string               `json:"id"`
	BookingNumber       string               `json:"booking_number"`
	CustomerID          string               `json:"customer_id"`
	AdventureID         string               `json:"adventure_id"`
	GuideID             *string              `json:"guide_id,omitempty"`
	PorterID            *string              `json:"porter_id,omitempty"`
	GearProviderID      *string              `json:"gear_provider_id,omitempty"`
	StartDate           string               `json:"start_date"`
	EndDate             string               `json:"end_date"`
	DurationDays        int                  `json:"duration_days"`
	GroupSize           int                  `json:"group_size"`
	Participants        []model.Participant  `json:"participants"`
	SpecialRequirements string               `json:"special_requirements"`
	Status              string               `json:"status"`
	Pricing             pricing.Breakdown    `json:"pricing"`
	Payment             PaymentResponse      `json:"payment"`
	Cancellation        *cancellation.Record `json:"cancellation,omitempty"`
	Progress            model.Progress       `json:"progress"`
	Version             int                  `json:"version"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.BookingNumber = model.BookingNumber
	r.CustomerID = model.CustomerID
	r.AdventureID = model.AdventureID
	r.GuideID = model.GuideID
	r.PorterID = model.PorterID
	r.GearProviderID = model.GearProviderID
	r.StartDate = model.StartDate.Format(constant.DayDateFormat)
	r.EndDate = model.EndDate.Format(constant.DayDateFormat)
	r.DurationDays = model.DurationDays
	r.GroupSize = model.GroupSize
	r.Participants = model.Participants.V
	r.SpecialRequirements = model.SpecialRequirements
	r.Status = model.Status
	r.Pricing = model.Pricing.Breakdown()
	r.Payment = PaymentResponse{
		Status:          model.PaymentStatus,
		Transactions:    model.Transactions.V,
		PaidAmount:      model.PaidAmount,
		RemainingAmount: model.RemainingAmount,
		RefundAmount:    model.RefundAmount,
	}
	r.Progress = model.Progress.V
	r.Version = model.Version
	r.Metadata.FromModel(model.Metadata)

	if model.IsCancelled {
		record := cancellation.Record{
			Cancelled:       true,
			CancelledBy:     model.CancelledBy,
			Reason:          model.CancellationReason,
			RefundEligible:  model.RefundEligible,
			RefundAmount:    model.CancellationRefundAmount,
			CancellationFee: model.CancellationFee,
		}

		if model.CancelledAt != nil {
			record.CancelledAt = *model.CancelledAt
		}

		r.Cancellation = &record
	}
}

// VisibleTo reports whether user takes part in the booking.
func (r *BookingResponse) VisibleTo(user string) bool {
	return user != constant.Empty &&
		(r.CustomerID == user || (r.GuideID != nil && *r.GuideID == user) || (r.PorterID != nil && *r.PorterID == user))
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type EligibilityResponse struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	cancellation.Eligibility
}

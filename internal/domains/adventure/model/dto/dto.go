package dto

import (
	"summit/internal/domains/adventure/availability"
	"summit/internal/domains/adventure/model"
	"summit/shared"
	gDto "summit/shared/dto"
	gModel "summit/shared/model"
	"summit/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateAdventureRequest struct {
	Name                 string          `json:"name"                   validate:"required,max=255"`
	Description          string          `json:"description"            validate:"omitempty"`
	Location             string          `json:"location"               validate:"required,max=255"`
	Difficulty           string          `json:"difficulty"             validate:"omitempty,oneof=easy moderate strenuous extreme"`
	BasePrice            decimal.Decimal `json:"base_price"             validate:"gte=0" swaggertype:"number"`
	Currency             string          `json:"currency"               validate:"required,currency"`
	MaxGroupSize         int             `json:"max_group_size"         validate:"gte=1"`
	PermitCost           decimal.Decimal `json:"permit_cost"            validate:"gte=0" swaggertype:"number"`
	EquipmentCost        decimal.Decimal `json:"equipment_cost"         validate:"gte=0" swaggertype:"number"`
	TaxPercent           float64         `json:"tax_percent"            validate:"gte=0,lte=100"`
	EarlyBirdDays        int             `json:"early_bird_days"        validate:"gte=0"`
	EarlyBirdPercent     float64         `json:"early_bird_percent"     validate:"gte=0,lte=100"`
	GroupDiscountSize    int             `json:"group_discount_size"    validate:"gte=0"`
	GroupDiscountPercent float64         `json:"group_discount_percent" validate:"gte=0,lte=100"`
}

func (c *CreateAdventureRequest) ToModel(provider string) model.Adventure {
	return model.Adventure{
		ID:                   uuid.NewString(),
		ProviderID:           provider,
		Name:                 c.Name,
		Description:          c.Description,
		Location:             c.Location,
		Difficulty:           c.Difficulty,
		BasePrice:            c.BasePrice,
		Currency:             c.Currency,
		MaxGroupSize:         c.MaxGroupSize,
		PermitCost:           c.PermitCost,
		EquipmentCost:        c.EquipmentCost,
		TaxPercent:           c.TaxPercent,
		EarlyBirdDays:        c.EarlyBirdDays,
		EarlyBirdPercent:     c.EarlyBirdPercent,
		GroupDiscountSize:    c.GroupDiscountSize,
		GroupDiscountPercent: c.GroupDiscountPercent,
		Rating:               gModel.Rating{RatingBreakdown: gModel.NewJSON(map[string]float64{})},
		Metadata:             gModel.NewMetadata(timezone.Now(), provider),
	}
}

type RatingResponse struct {
	Average  float64            `json:"average"`
	Count    int                `json:"count"`
	Criteria map[string]float64 `json:"criteria,omitempty"`
}

func (r *RatingResponse) FromModel(model gModel.Rating) {
	r.Average = model.RatingAverage
	r.Count = model.RatingCount
	r.Criteria = model.RatingBreakdown.V
}

type AdventureResponse struct {
	ID                   string          `json:"id"`
	ProviderID           string          `json:"provider_id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Location             string          `json:"location"`
	Difficulty           string          `json:"difficulty"`
	BasePrice            decimal.Decimal `json:"base_price"`
	Currency             string          `json:"currency"`
	MaxGroupSize         int             `json:"max_group_size"`
	PermitCost           decimal.Decimal `json:"permit_cost"`
	EquipmentCost        decimal.Decimal `json:"equipment_cost"`
	TaxPercent           float64         `json:"tax_percent"`
	EarlyBirdDays        int             `json:"early_bird_days"`
	EarlyBirdPercent     float64         `json:"early_bird_percent"`
	GroupDiscountSize    int             `json:"group_discount_size"`
	GroupDiscountPercent float64         `json:"group_discount_percent"`
	Rating               RatingResponse  `json:"rating"`
	gDto.Metadata
}

func (r *AdventureResponse) FromModel(model model.Adventure) {
	r.ID = model.ID
	r.ProviderID = model.ProviderID
	r.Name = model.Name
	r.Description = model.Description
	r.Location = model.Location
	r.Difficulty = model.Difficulty
	r.BasePrice = model.BasePrice
	r.Currency = model.Currency
	r.MaxGroupSize = model.MaxGroupSize
	r.PermitCost = model.PermitCost
	r.EquipmentCost = model.EquipmentCost
	r.TaxPercent = model.TaxPercent
	r.EarlyBirdDays = model.EarlyBirdDays
	r.EarlyBirdPercent = model.EarlyBirdPercent
	r.GroupDiscountSize = model.GroupDiscountSize
	r.GroupDiscountPercent = model.GroupDiscountPercent
	r.Rating.FromModel(model.Rating)
	r.Metadata.FromModel(model.Metadata)
}

type GetAdventuresResponse struct {
	Adventures []AdventureResponse `json:"adventures"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetAdventuresResponse) FromModels(models []model.Adventure, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Adventures = make([]AdventureResponse, len(models))
	for i, mod := range models {
		r.Adventures[i].FromModel(mod)
	}
}

type CreateWindowRequest struct {
	StartDate string `json:"start_date" validate:"required,date"`
	EndDate   string `json:"end_date"   validate:"required,date"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"     validate:"omitempty,max=255"`
}

func (c *CreateWindowRequest) ToModel(adventureID, user string) (model.AvailabilityWindow, error) {
	start, end, err := ParseRange(c.StartDate, c.EndDate)
	if err != nil {
		return model.AvailabilityWindow{}, err
	}

	return model.AvailabilityWindow{
		ID:          uuid.NewString(),
		AdventureID: adventureID,
		StartDate:   start,
		EndDate:     end,
		Available:   c.Available,
		Reason:      c.Reason,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}, nil
}

type CreateBlackoutRequest struct {
	Date   string `json:"date"   validate:"required,date"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

func (c *CreateBlackoutRequest) ToModel(adventureID, user string) (model.BlackoutDate, error) {
	date, err := timezone.ParseDay(c.Date)
	if err != nil {
		return model.BlackoutDate{}, err
	}

	return model.BlackoutDate{
		ID:          uuid.NewString(),
		AdventureID: adventureID,
		Date:        date,
		Reason:      c.Reason,
		Metadata:    gModel.NewMetadata(timezone.Now(), user),
	}, nil
}

type AvailabilityResponse struct {
	AdventureID string `json:"adventure_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	availability.Result
}

type CreateGearProviderRequest struct {
	Name      string          `json:"name"       validate:"required,max=255"`
	DailyRate decimal.Decimal `json:"daily_rate" validate:"gte=0" swaggertype:"number"`
	Currency  string          `json:"currency"   validate:"required,currency"`
}

func (c *CreateGearProviderRequest) ToModel(owner string) model.GearProvider {
	return model.GearProvider{
		ID:        uuid.NewString(),
		OwnerID:   owner,
		Name:      c.Name,
		DailyRate: c.DailyRate,
		Currency:  c.Currency,
		Rating:    gModel.Rating{RatingBreakdown: gModel.NewJSON(map[string]float64{})},
		Metadata:  gModel.NewMetadata(timezone.Now(), owner),
	}
}

type GearProviderResponse struct {
	ID        string          `json:"id"`
	OwnerID   string          `json:"owner_id"`
	Name      string          `json:"name"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Currency  string          `json:"currency"`
	Rating    RatingResponse  `json:"rating"`
	gDto.Metadata
}

func (r *GearProviderResponse) FromModel(model model.GearProvider) {
	r.ID = model.ID
	r.OwnerID = model.OwnerID
	r.Name = model.Name
	r.DailyRate = model.DailyRate
	r.Currency = model.Currency
	r.Rating.FromModel(model.Rating)
	r.Metadata.FromModel(model.Metadata)
}

// ParseRange reads two YYYY-MM-DD dates in the app timezone.
func ParseRange(startDate, endDate string) (start, end time.Time, err error) {
	start, err = timezone.ParseDay(startDate)
	if err != nil {
		return start, end, err
	}

	end, err = timezone.ParseDay(endDate)
	if err != nil {
		return start, end, err
	}

	return start, end, nil
}

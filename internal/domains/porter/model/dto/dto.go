package dto

import (
	"summit/internal/domains/porter/model"
	"summit/shared"
	gDto "summit/shared/dto"
	gModel "summit/shared/model"
	"summit/shared/timezone"

	"github.com/shopspring/decimal"
)

type RegisterPorterRequest struct {
	Name      string          `json:"name"        validate:"required,max=255"`
	Bio       string          `json:"bio"         validate:"omitempty"`
	MaxLoadKg int             `json:"max_load_kg" validate:"gte=0,lte=60"`
	DailyRate decimal.Decimal `json:"daily_rate"  validate:"gte=0" swaggertype:"number"`
	Currency  string          `json:"currency"    validate:"required,currency"`
}

// ToModel builds the profile for the account user.
func (c *RegisterPorterRequest) ToModel(user string) model.Porter {
	return model.Porter{
		ID:        user,
		Name:      c.Name,
		Bio:       c.Bio,
		MaxLoadKg: c.MaxLoadKg,
		DailyRate: c.DailyRate,
		Currency:  c.Currency,
		Available: true,
		Rating:    gModel.Rating{RatingBreakdown: gModel.NewJSON(map[string]float64{})},
		Metadata:  gModel.NewMetadata(timezone.Now(), user),
	}
}

type RatingResponse struct {
	Average  float64            `json:"average"`
	Count    int                `json:"count"`
	Criteria map[string]float64 `json:"criteria,omitempty"`
}

type PorterResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Bio       string          `json:"bio"`
	MaxLoadKg int             `json:"max_load_kg"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Currency  string          `json:"currency"`
	Available bool            `json:"available"`
	Rating    RatingResponse  `json:"rating"`
	gDto.Metadata
}

func (r *PorterResponse) FromModel(model model.Porter) {
	r.ID = model.ID
	r.Name = model.Name
	r.Bio = model.Bio
	r.MaxLoadKg = model.MaxLoadKg
	r.DailyRate = model.DailyRate
	r.Currency = model.Currency
	r.Available = model.Available
	r.Rating = RatingResponse{
		Average:  model.RatingAverage,
		Count:    model.RatingCount,
		Criteria: model.RatingBreakdown.V,
	}
	r.Metadata.FromModel(model.Metadata)
}

type GetPortersResponse struct {
	Porters   []PorterResponse `json:"porters"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetPortersResponse) FromModels(models []model.Porter, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Porters = make([]PorterResponse, len(models))
	for i, mod := range models {
		r.Porters[i].FromModel(mod)
	}
}

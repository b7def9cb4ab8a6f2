package dto

import (
	"summit/internal/domains/guide/model"
	"summit/shared"
	gDto "summit/shared/dto"
	gModel "summit/shared/model"
	"summit/shared/timezone"

	"github.com/shopspring/decimal"
)

type RegisterGuideRequest struct {
	Name      string          `json:"name"       validate:"required,max=255"`
	Bio       string          `json:"bio"        validate:"omitempty"`
	Languages string          `json:"languages"  validate:"omitempty,max=255"`
	DailyRate decimal.Decimal `json:"daily_rate" validate:"gte=0" swaggertype:"number"`
	Currency  string          `json:"currency"   validate:"required,currency"`
}

// ToModel builds the profile for the account user.
func (c *RegisterGuideRequest) ToModel(user string) model.Guide {
	return model.Guide{
		ID:        user,
		Name:      c.Name,
		Bio:       c.Bio,
		Languages: c.Languages,
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

type GuideResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Bio       string          `json:"bio"`
	Languages string          `json:"languages"`
	DailyRate decimal.Decimal `json:"daily_rate"`
	Currency  string          `json:"currency"`
	Available bool            `json:"available"`
	Rating    RatingResponse  `json:"rating"`
	gDto.Metadata
}

func (r *GuideResponse) FromModel(model model.Guide) {
	r.ID = model.ID
	r.Name = model.Name
	r.Bio = model.Bio
	r.Languages = model.Languages
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

type GetGuidesResponse struct {
	Guides    []GuideResponse `json:"guides"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuidesResponse) FromModels(models []model.Guide, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guides = make([]GuideResponse, len(models))
	for i, mod := range models {
		r.Guides[i].FromModel(mod)
	}
}

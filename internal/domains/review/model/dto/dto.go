package dto

import (
	ratingDto "summit/internal/domains/rating/model/dto"
	"summit/internal/domains/review/model"
	"summit/shared"
	gDto "summit/shared/dto"
	gModel "summit/shared/model"
	"summit/shared/timezone"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	BookingID  string         `json:"booking_id"  validate:"required,uuid"`
	TargetType string         `json:"target_type" validate:"required,oneof=guide porter adventure gear_provider"`
	TargetID   string         `json:"target_id"   validate:"required"`
	Rating     float64        `json:"rating"      validate:"omitempty,gte=1,lte=5"`
	Breakdown  map[string]int `json:"breakdown"   validate:"omitempty,dive,gte=1,lte=5"`
	Title      string         `json:"title"       validate:"omitempty,max=200"`
	Body       string         `json:"body"        validate:"omitempty,max=5000"`
}

func (c *SubmitReviewRequest) ToModel(reviewer string, rating float64) model.Review {
	breakdown := c.Breakdown
	if breakdown == nil {
		breakdown = map[string]int{}
	}

	return model.Review{
		ID:         uuid.NewString(),
		ReviewerID: reviewer,
		BookingID:  c.BookingID,
		TargetType: c.TargetType,
		TargetID:   c.TargetID,
		Rating:     rating,
		Breakdown:  gModel.NewJSON(breakdown),
		Title:      c.Title,
		Body:       c.Body,
		Metadata:   gModel.NewMetadata(timezone.Now(), reviewer),
	}
}

type UpdateReviewRequest struct {
	Rating    float64        `json:"rating"    validate:"omitempty,gte=1,lte=5"`
	Breakdown map[string]int `json:"breakdown" validate:"omitempty,dive,gte=1,lte=5"`
	Title     *string        `json:"title"     validate:"omitempty,max=200"`
	Body      *string        `json:"body"      validate:"omitempty,max=5000"`
}

type VoteRequest struct {
	Helpful *bool `json:"helpful" validate:"required"`
}

type ReviewResponse struct {
	ID                    string         `json:"id"`
	ReviewerID            string         `json:"reviewer_id"`
	BookingID             string         `json:"booking_id"`
	TargetType            string         `json:"target_type"`
	TargetID              string         `json:"target_id"`
	Rating                float64        `json:"rating"`
	Breakdown             map[string]int `json:"breakdown,omitempty"`
	Title                 string         `json:"title"`
	Body                  string         `json:"body"`
	HelpfulCount          int            `json:"helpful_count"`
	NotHelpfulCount       int            `json:"not_helpful_count"`
	HelpfulnessPercentage int            `json:"helpfulness_percentage"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.ReviewerID = mod.ReviewerID
	r.BookingID = mod.BookingID
	r.TargetType = mod.TargetType
	r.TargetID = mod.TargetID
	r.Rating = mod.Rating
	r.Breakdown = mod.Breakdown.V
	r.Title = mod.Title
	r.Body = mod.Body
	r.HelpfulCount = mod.HelpfulCount
	r.NotHelpfulCount = mod.NotHelpfulCount
	r.HelpfulnessPercentage = model.HelpfulnessPercentage(mod.HelpfulCount, mod.NotHelpfulCount)
	r.Metadata.FromModel(mod.Metadata)
}

type SubmitReviewResponse struct {
	Review       ReviewResponse           `json:"review"`
	TargetRating ratingDto.RatingResponse `json:"target_rating"`
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}

package dto

import (
	reviewModel "summit/internal/domains/review/model"
	gModel "summit/shared/model"
)

type RatingResponse struct {
	TargetType string             `json:"target_type"`
	TargetID   string             `json:"target_id"`
	Average    float64            `json:"average"`
	Count      int                `json:"count"`
	Criteria   map[string]float64 `json:"criteria,omitempty"`
}

func (r *RatingResponse) FromModel(target reviewModel.Target, model gModel.Rating) {
	r.TargetType = string(target.Kind())
	r.TargetID = target.ID()
	r.Average = model.RatingAverage
	r.Count = model.RatingCount
	r.Criteria = model.RatingBreakdown.V
}

package model

import (
	"fmt"
	"math"
	"slices"
	"summit/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID              = "id"
	FieldReviewerID      = "reviewer_id"
	FieldBookingID       = "booking_id"
	FieldTargetType      = "target_type"
	FieldTargetID        = "target_id"
	FieldRating          = "rating"
	FieldBreakdown       = "breakdown"
	FieldTitle           = "title"
	FieldBody            = "body"
	FieldHelpfulCount    = "helpful_count"
	FieldNotHelpfulCount = "not_helpful_count"

	UniqueReviewConstraint = "reviews_reviewer_booking_target_key"
)

type Review struct {
	ID              string                     `db:"id"`
	ReviewerID      string                     `db:"reviewer_id"`
	BookingID       string                     `db:"booking_id"`
	TargetType      string                     `db:"target_type"`
	TargetID        string                     `db:"target_id"`
	Rating          float64                    `db:"rating"`
	Breakdown       model.JSON[map[string]int] `db:"breakdown"`
	Title           string                     `db:"title"`
	Body            string                     `db:"body"`
	HelpfulCount    int                        `db:"helpful_count"`
	NotHelpfulCount int                        `db:"not_helpful_count"`
	model.Metadata
}

func (r Review) Target() (Target, error) {
	return NewTarget(r.TargetType, r.TargetID)
}

// HelpfulnessPercentage is the share of helpful votes, rounded to a whole percent.
func HelpfulnessPercentage(helpful, notHelpful int) int {
	total := helpful + notHelpful
	if total == 0 {
		return 0
	}

	return int(math.Round(float64(helpful) * 100 / float64(total)))
}

// OverallRating derives the review rating. A non-empty breakdown wins over the explicit value
// and must only use the criteria of kind.
func OverallRating(kind TargetKind, explicit float64, breakdown map[string]int) (float64, error) {
	if len(breakdown) == 0 {
		if explicit < 1 || explicit > 5 {
			return 0, fmt.Errorf("rating must be between 1 and 5")
		}

		return math.Round(explicit*10) / 10, nil
	}

	allowed := kind.Criteria()
	sum := 0

	for name, value := range breakdown {
		if !slices.Contains(allowed, name) {
			return 0, fmt.Errorf("%s is not a rating criterion for %s reviews", name, kind)
		}

		if value < 1 || value > 5 {
			return 0, fmt.Errorf("%s rating must be between 1 and 5", name)
		}

		sum += value
	}

	return math.Round(float64(sum)*10/float64(len(breakdown))) / 10, nil
}

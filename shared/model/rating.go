package model

// Rating holds the aggregate columns shared by every reviewable entity. They are only written
// by the rating recomputation.
type Rating struct {
	RatingAverage   float64                  `db:"rating_average"`
	RatingCount     int                      `db:"rating_count"`
	RatingBreakdown JSON[map[string]float64] `db:"rating_breakdown"`
}

// Package rating turns the reviews of one entity into its rating aggregate.
package rating

import (
	"math"
	"slices"
)

type Score struct {
	Rating   float64
	Criteria map[string]int
}

type Aggregate struct {
	Average  float64            `json:"average"`
	Count    int                `json:"count"`
	Criteria map[string]float64 `json:"criteria,omitempty"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Compute averages scores. Every name in criteria gets its own mean over the reviews that
// rated it, and stays at zero when none did. The result depends only on the multiset of scores.
func Compute(scores []Score, criteria []string) Aggregate {
	agg := Aggregate{Count: len(scores)}

	if len(criteria) > 0 {
		agg.Criteria = make(map[string]float64, len(criteria))
		for _, name := range criteria {
			agg.Criteria[name] = 0
		}
	}

	if len(scores) == 0 {
		return agg
	}

	var total float64

	sums := map[string]int{}
	counts := map[string]int{}

	for _, score := range scores {
		total += score.Rating

		for name, value := range score.Criteria {
			if !slices.Contains(criteria, name) {
				continue
			}

			sums[name] += value
			counts[name]++
		}
	}

	agg.Average = round1(total / float64(len(scores)))

	for name, n := range counts {
		agg.Criteria[name] = round1(float64(sums[name]) / float64(n))
	}

	return agg
}

package analytics

import (
	"math"

	"creditlens/pkg/contracts/domain"
)

// Summary holds the scalar metrics of a filtered view. An empty view
// produces a zero-valued Summary with Count 0, never an error.
type Summary struct {
	Count              int     `json:"count"`
	AgeMin             int     `json:"age_min"`
	AgeMean            float64 `json:"age_mean"`
	AgeMax             int     `json:"age_max"`
	MeanCreditAmount   float64 `json:"mean_credit_amount"`
	MedianCreditAmount float64 `json:"median_credit_amount"`
	TotalCreditAmount  int64   `json:"total_credit_amount"`
	MeanDuration       float64 `json:"mean_duration"`
}

// Summarize computes the scalar metrics over a view.
// Invariant: Summary.Count == len(view) and
// MeanCreditAmount * Count == TotalCreditAmount (up to float rounding).
func Summarize(view []domain.CreditRecord) Summary {
	if len(view) == 0 {
		return Summary{}
	}

	s := Summary{
		Count:  len(view),
		AgeMin: view[0].Age,
		AgeMax: view[0].Age,
	}

	var ageSum, durationSum int
	amounts := make([]int64, 0, len(view))
	for _, rec := range view {
		if rec.Age < s.AgeMin {
			s.AgeMin = rec.Age
		}
		if rec.Age > s.AgeMax {
			s.AgeMax = rec.Age
		}
		ageSum += rec.Age
		durationSum += rec.Duration
		s.TotalCreditAmount += rec.CreditAmount
		amounts = append(amounts, rec.CreditAmount)
	}

	n := float64(len(view))
	s.AgeMean = round1(float64(ageSum) / n)
	s.MeanDuration = round1(float64(durationSum) / n)
	s.MeanCreditAmount = float64(s.TotalCreditAmount) / n
	s.MedianCreditAmount = medianInt64(amounts)
	return s
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

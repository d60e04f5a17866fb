package analytics

import (
	"sort"

	"creditlens/pkg/contracts/domain"
)

// Findings is the dashboard's key findings block: a customer profile,
// credit patterns, and risk indicators for the current view.
type Findings struct {
	Profile CustomerProfile `json:"profile"`
	Credit  CreditPatterns  `json:"credit"`
	Risk    RiskIndicators  `json:"risk"`
}

// CustomerProfile summarizes who the filtered applicants are.
type CustomerProfile struct {
	AverageAge        float64 `json:"average_age"`
	MaleCount         int     `json:"male_count"`
	MalePercent       float64 `json:"male_percent"`
	FemaleCount       int     `json:"female_count"`
	FemalePercent     float64 `json:"female_percent"`
	MostCommonHousing string  `json:"most_common_housing"`
}

// CreditPatterns summarizes how much they borrow and for what.
type CreditPatterns struct {
	AverageCreditAmount float64 `json:"average_credit_amount"`
	MedianCreditAmount  float64 `json:"median_credit_amount"`
	AverageDuration     float64 `json:"average_duration"`
	MostCommonPurpose   string  `json:"most_common_purpose"`
}

// RiskIndicators counts account coverage and ownership in the view.
type RiskIndicators struct {
	WithSavings       int     `json:"with_savings"`
	WithChecking      int     `json:"with_checking"`
	OwnHousingCount   int     `json:"own_housing_count"`
	OwnHousingPercent float64 `json:"own_housing_percent"`
}

// ComputeFindings derives the key findings block from a view. An empty view
// yields zero counts and empty mode strings.
func ComputeFindings(view []domain.CreditRecord) Findings {
	var f Findings
	if len(view) == 0 {
		return f
	}

	summary := Summarize(view)
	f.Profile.AverageAge = summary.AgeMean
	f.Credit.AverageCreditAmount = round1(summary.MeanCreditAmount)
	f.Credit.MedianCreditAmount = summary.MedianCreditAmount
	f.Credit.AverageDuration = summary.MeanDuration

	housing := map[string]int{}
	purposes := map[string]int{}
	for _, rec := range view {
		switch rec.Sex {
		case domain.SexMale:
			f.Profile.MaleCount++
		case domain.SexFemale:
			f.Profile.FemaleCount++
		}
		housing[rec.Housing]++
		purposes[rec.Purpose]++

		if rec.HasSavings() {
			f.Risk.WithSavings++
		}
		if rec.HasChecking() {
			f.Risk.WithChecking++
		}
		if rec.Housing == domain.HousingOwn {
			f.Risk.OwnHousingCount++
		}
	}

	total := float64(len(view))
	f.Profile.MalePercent = round1(float64(f.Profile.MaleCount) / total * 100)
	f.Profile.FemalePercent = round1(float64(f.Profile.FemaleCount) / total * 100)
	f.Profile.MostCommonHousing = mode(housing)
	f.Credit.MostCommonPurpose = mode(purposes)
	f.Risk.OwnHousingPercent = round1(float64(f.Risk.OwnHousingCount) / total * 100)
	return f
}

// mode returns the most frequent value; ties resolve to the lexicographically
// smallest so output is deterministic.
func mode(counts map[string]int) string {
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Strings(values)

	best, bestCount := "", -1
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

package analytics

import (
	"sort"

	"creditlens/pkg/contracts/domain"
)

// BoxStats is the five-number summary of one group in a box plot series.
type BoxStats struct {
	Group  string  `json:"group"`
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// BoxPlot is a grouped distribution series for one numeric column.
type BoxPlot struct {
	Column string     `json:"column"`
	By     string     `json:"by"`
	Groups []BoxStats `json:"groups"`
}

// AgeBySex summarizes the age distribution per gender.
func AgeBySex(view []domain.CreditRecord) BoxPlot {
	return boxPlot("age", "sex", view,
		func(rec domain.CreditRecord) string { return rec.Sex },
		func(rec domain.CreditRecord) float64 { return float64(rec.Age) })
}

// CreditAmountBySex summarizes the credit amount distribution per gender.
func CreditAmountBySex(view []domain.CreditRecord) BoxPlot {
	return boxPlot("credit_amount", "sex", view,
		func(rec domain.CreditRecord) string { return rec.Sex },
		func(rec domain.CreditRecord) float64 { return float64(rec.CreditAmount) })
}

// DurationByPurpose summarizes the duration distribution per loan purpose.
func DurationByPurpose(view []domain.CreditRecord) BoxPlot {
	return boxPlot("duration", "purpose", view,
		func(rec domain.CreditRecord) string { return rec.Purpose },
		func(rec domain.CreditRecord) float64 { return float64(rec.Duration) })
}

// boxPlot buckets the view by group key and computes a five-number summary
// per group. Groups are sorted by name for deterministic output; an empty
// view yields an empty group list.
func boxPlot(column, by string, view []domain.CreditRecord, key func(domain.CreditRecord) string, value func(domain.CreditRecord) float64) BoxPlot {
	grouped := map[string][]float64{}
	for _, rec := range view {
		k := key(rec)
		grouped[k] = append(grouped[k], value(rec))
	}

	names := make([]string, 0, len(grouped))
	for name := range grouped {
		names = append(names, name)
	}
	sort.Strings(names)

	groups := make([]BoxStats, len(names))
	for i, name := range names {
		values := grouped[name]
		sort.Float64s(values)
		groups[i] = BoxStats{
			Group:  name,
			Count:  len(values),
			Min:    values[0],
			P25:    round2(quantile(values, 0.25)),
			Median: round2(quantile(values, 0.5)),
			P75:    round2(quantile(values, 0.75)),
			Max:    values[len(values)-1],
		}
	}
	return BoxPlot{Column: column, By: by, Groups: groups}
}

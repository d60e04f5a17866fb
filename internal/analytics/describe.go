package analytics

import (
	"fmt"
	"math"
	"sort"

	"creditlens/pkg/contracts/domain"
)

// ColumnStats is the describe() row for one numeric column.
type ColumnStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Describe computes summary statistics for the numeric columns of a view
// (Age, Credit amount, Duration). An empty view yields zero-valued rows.
func Describe(view []domain.CreditRecord) []ColumnStats {
	ages := make([]float64, len(view))
	amounts := make([]float64, len(view))
	durations := make([]float64, len(view))
	for i, rec := range view {
		ages[i] = float64(rec.Age)
		amounts[i] = float64(rec.CreditAmount)
		durations[i] = float64(rec.Duration)
	}

	return []ColumnStats{
		columnStats("age", ages),
		columnStats("credit_amount", amounts),
		columnStats("duration", durations),
	}
}

func columnStats(column string, values []float64) ColumnStats {
	stats := ColumnStats{Column: column, Count: len(values)}
	if len(values) == 0 {
		return stats
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(len(sorted))

	// Sample standard deviation (n-1 denominator).
	var sqSum float64
	for _, v := range sorted {
		d := v - mean
		sqSum += d * d
	}
	std := 0.0
	if len(sorted) > 1 {
		std = math.Sqrt(sqSum / float64(len(sorted)-1))
	}

	stats.Mean = round2(mean)
	stats.Std = round2(std)
	stats.Min = sorted[0]
	stats.P25 = round2(quantile(sorted, 0.25))
	stats.Median = round2(quantile(sorted, 0.5))
	stats.P75 = round2(quantile(sorted, 0.75))
	stats.Max = sorted[len(sorted)-1]
	return stats
}

// quantile uses linear interpolation between closest ranks over a sorted
// slice.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func medianInt64(values []int64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]int64(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}
	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func formatRange(lo, hi float64) string {
	return fmt.Sprintf("%.0f-%.0f", lo, hi)
}

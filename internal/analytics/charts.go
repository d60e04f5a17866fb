package analytics

import (
	"sort"

	"creditlens/pkg/contracts/domain"
)

// Age group bins used by the overview chart, matching the dashboard's
// bucketing of applicants: <25, 25-35, 35-45, 45-55, 55-65, 65+.
var (
	ageBounds = []int{25, 35, 45, 55, 65}
	ageLabels = []string{"<25", "25-35", "35-45", "45-55", "55-65", "65+"}
)

const (
	creditAmountBins = 30
	durationBins     = 20
)

// Bucket is one bar of a histogram series.
type Bucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram is a binned distribution of one numeric column.
type Histogram struct {
	Column  string   `json:"column"`
	Buckets []Bucket `json:"buckets"`
}

// ScatterPoint is one row of the duration vs credit amount scatter chart,
// carrying age for color mapping.
type ScatterPoint struct {
	Duration     int   `json:"duration"`
	CreditAmount int64 `json:"credit_amount"`
	Age          int   `json:"age"`
}

// CrosstabRow is one row of a two-way frequency table.
type CrosstabRow struct {
	Value  string         `json:"value"`
	Counts map[string]int `json:"counts"`
}

// AgeGroups bins the view into the fixed age groups. All labels are present
// in order, with zero counts where the view has no rows.
func AgeGroups(view []domain.CreditRecord) Histogram {
	counts := make([]int, len(ageLabels))
	for _, rec := range view {
		counts[ageGroupIndex(rec.Age)]++
	}

	buckets := make([]Bucket, len(ageLabels))
	for i, label := range ageLabels {
		buckets[i] = Bucket{Label: label, Count: counts[i]}
	}
	return Histogram{Column: "age", Buckets: buckets}
}

func ageGroupIndex(age int) int {
	for i, bound := range ageBounds {
		if age < bound {
			return i
		}
	}
	return len(ageBounds)
}

// CreditAmountHistogram bins credit amounts into 30 equal-width buckets over
// the observed range of the view.
func CreditAmountHistogram(view []domain.CreditRecord) Histogram {
	values := make([]float64, len(view))
	for i, rec := range view {
		values[i] = float64(rec.CreditAmount)
	}
	return histogram("credit_amount", values, creditAmountBins)
}

// DurationHistogram bins durations into 20 equal-width buckets.
func DurationHistogram(view []domain.CreditRecord) Histogram {
	values := make([]float64, len(view))
	for i, rec := range view {
		values[i] = float64(rec.Duration)
	}
	return histogram("duration", values, durationBins)
}

// Scatter returns duration/amount/age points for every row of the view.
func Scatter(view []domain.CreditRecord) []ScatterPoint {
	points := make([]ScatterPoint, len(view))
	for i, rec := range view {
		points[i] = ScatterPoint{
			Duration:     rec.Duration,
			CreditAmount: rec.CreditAmount,
			Age:          rec.Age,
		}
	}
	return points
}

// HousingBySex cross-tabulates housing type against gender. Rows and count
// keys are sorted for deterministic output.
func HousingBySex(view []domain.CreditRecord) []CrosstabRow {
	table := map[string]map[string]int{}
	for _, rec := range view {
		row, ok := table[rec.Housing]
		if !ok {
			row = map[string]int{}
			table[rec.Housing] = row
		}
		row[rec.Sex]++
	}

	values := make([]string, 0, len(table))
	for v := range table {
		values = append(values, v)
	}
	sort.Strings(values)

	rows := make([]CrosstabRow, len(values))
	for i, v := range values {
		rows[i] = CrosstabRow{Value: v, Counts: table[v]}
	}
	return rows
}

func histogram(column string, values []float64, bins int) Histogram {
	h := Histogram{Column: column, Buckets: []Bucket{}}
	if len(values) == 0 {
		return h
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	// Degenerate range: every value identical, one bucket holds everything.
	if hi == lo {
		h.Buckets = []Bucket{{Label: formatRange(lo, hi), Count: len(values)}}
		return h
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	h.Buckets = make([]Bucket, bins)
	for i := range counts {
		start := lo + width*float64(i)
		h.Buckets[i] = Bucket{Label: formatRange(start, start+width), Count: counts[i]}
	}
	return h
}

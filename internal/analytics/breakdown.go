package analytics

import (
	"fmt"
	"sort"
	"strconv"

	"creditlens/pkg/contracts/domain"
)

// BreakdownField names a categorical axis a view can be grouped by.
type BreakdownField string

const (
	BySex             BreakdownField = "sex"
	ByHousing         BreakdownField = "housing"
	ByPurpose         BreakdownField = "purpose"
	ByJob             BreakdownField = "job"
	BySavingAccounts  BreakdownField = "saving_accounts"
	ByCheckingAccount BreakdownField = "checking_account"
)

// BreakdownFields lists the supported grouping axes in UI order.
var BreakdownFields = []BreakdownField{
	BySex, ByHousing, ByPurpose, ByJob, BySavingAccounts, ByCheckingAccount,
}

// Group is one category bucket of a breakdown.
type Group struct {
	Value            string  `json:"value"`
	Count            int     `json:"count"`
	Share            float64 `json:"share"`
	MeanCreditAmount float64 `json:"mean_credit_amount"`
	MeanDuration     float64 `json:"mean_duration"`
}

// Breakdown is a grouped view of one categorical field, ordered by count
// descending (ties broken by value for deterministic output).
type Breakdown struct {
	Field  BreakdownField `json:"field"`
	Groups []Group        `json:"groups"`
}

// BreakdownBy groups the view by the given field. An unknown field is the
// only error condition; an empty view yields an empty group list.
func BreakdownBy(view []domain.CreditRecord, field BreakdownField) (Breakdown, error) {
	key, err := groupKey(field)
	if err != nil {
		return Breakdown{}, err
	}

	type acc struct {
		count     int
		amountSum int64
		durSum    int
	}
	buckets := map[string]*acc{}
	for _, rec := range view {
		v := key(rec)
		b, ok := buckets[v]
		if !ok {
			b = &acc{}
			buckets[v] = b
		}
		b.count++
		b.amountSum += rec.CreditAmount
		b.durSum += rec.Duration
	}

	groups := make([]Group, 0, len(buckets))
	total := float64(len(view))
	for value, b := range buckets {
		n := float64(b.count)
		groups = append(groups, Group{
			Value:            value,
			Count:            b.count,
			Share:            round1(n / total * 100),
			MeanCreditAmount: round1(float64(b.amountSum) / n),
			MeanDuration:     round1(float64(b.durSum) / n),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Value < groups[j].Value
	})

	return Breakdown{Field: field, Groups: groups}, nil
}

func groupKey(field BreakdownField) (func(domain.CreditRecord) string, error) {
	switch field {
	case BySex:
		return func(r domain.CreditRecord) string { return r.Sex }, nil
	case ByHousing:
		return func(r domain.CreditRecord) string { return r.Housing }, nil
	case ByPurpose:
		return func(r domain.CreditRecord) string { return r.Purpose }, nil
	case ByJob:
		return func(r domain.CreditRecord) string { return strconv.Itoa(r.Job) }, nil
	case BySavingAccounts:
		return func(r domain.CreditRecord) string { return accountValue(r.SavingAccounts) }, nil
	case ByCheckingAccount:
		return func(r domain.CreditRecord) string { return accountValue(r.CheckingAccount) }, nil
	default:
		return nil, fmt.Errorf("unknown breakdown field: %s", field)
	}
}

func accountValue(v string) string {
	if v == "" {
		return domain.AccountUnknown
	}
	return v
}

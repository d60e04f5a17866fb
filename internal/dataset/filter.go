package dataset

import (
	"strings"

	"creditlens/pkg/contracts/domain"
)

// Filter selects a subset of the credit table. Predicates combine with
// logical AND; each category predicate is an OR over its selected values.
// An empty slice (or a zero age bound) means no restriction on that axis.
type Filter struct {
	AgeMin   int      `json:"age_min,omitempty"`
	AgeMax   int      `json:"age_max,omitempty"`
	Sexes    []string `json:"sexes,omitempty"`
	Housing  []string `json:"housing,omitempty"`
	Purposes []string `json:"purposes,omitempty"`
}

// IsZero reports whether the filter places no restriction at all.
func (f Filter) IsZero() bool {
	return f.AgeMin == 0 && f.AgeMax == 0 &&
		len(f.Sexes) == 0 && len(f.Housing) == 0 && len(f.Purposes) == 0
}

// Matches reports whether rec satisfies every active predicate.
func (f Filter) Matches(rec domain.CreditRecord) bool {
	if f.AgeMin > 0 && rec.Age < f.AgeMin {
		return false
	}
	if f.AgeMax > 0 && rec.Age > f.AgeMax {
		return false
	}
	if !matchesAny(rec.Sex, f.Sexes) {
		return false
	}
	if !matchesAny(rec.Housing, f.Housing) {
		return false
	}
	if !matchesAny(rec.Purpose, f.Purposes) {
		return false
	}
	return true
}

// Normalize lowercases and trims category selections so filters built from
// query parameters compare cleanly against loader-normalized records.
func (f Filter) Normalize() Filter {
	f.Sexes = normalizeValues(f.Sexes)
	f.Housing = normalizeValues(f.Housing)
	f.Purposes = normalizeValues(f.Purposes)
	return f
}

func matchesAny(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if value == s {
			return true
		}
	}
	return false
}

func normalizeValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"creditlens/pkg/contracts/domain"
)

// Store holds the loaded credit table. The table is immutable; Reload swaps
// in a freshly parsed table atomically so concurrent readers always see a
// consistent snapshot.
type Store struct {
	path   string
	logger *slog.Logger

	mu      sync.RWMutex
	records []domain.CreditRecord
	options FilterOptions
}

// FilterOptions describes the filterable value space of the loaded table.
// The dashboard uses it to populate its filter controls.
type FilterOptions struct {
	AgeMin   int      `json:"age_min"`
	AgeMax   int      `json:"age_max"`
	Sexes    []string `json:"sexes"`
	Housing  []string `json:"housing"`
	Purposes []string `json:"purposes"`
}

// NewStore loads the dataset from path. Load failure is returned to the
// caller; at process start it is fatal per the dashboard contract.
func NewStore(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		path:   path,
		logger: logger.With(slog.String("component", "dataset.store")),
	}
	if err := s.Reload(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the dataset file and swaps the table. On error the
// previous table stays live.
func (s *Store) Reload(ctx context.Context) error {
	records, err := Load(s.path)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("dataset %s contains no records", s.path)
	}

	options := buildOptions(records)

	s.mu.Lock()
	s.records = records
	s.options = options
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "dataset table swapped",
		slog.Int("record_count", len(records)),
		slog.Int("age_min", options.AgeMin),
		slog.Int("age_max", options.AgeMax))

	return nil
}

// All returns the full table.
func (s *Store) All() []domain.CreditRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Options returns the filterable value space of the current table.
func (s *Store) Options() FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options
}

// Select returns the subset of rows satisfying every active predicate of f.
// A zero-valued filter returns the full table. Select never fails; an empty
// result is a valid view.
func (s *Store) Select(f Filter) []domain.CreditRecord {
	s.mu.RLock()
	records := s.records
	s.mu.RUnlock()

	if f.IsZero() {
		return records
	}

	view := make([]domain.CreditRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			view = append(view, rec)
		}
	}
	return view
}

func buildOptions(records []domain.CreditRecord) FilterOptions {
	opts := FilterOptions{AgeMin: records[0].Age, AgeMax: records[0].Age}

	sexes := map[string]struct{}{}
	housing := map[string]struct{}{}
	purposes := map[string]struct{}{}

	for _, rec := range records {
		if rec.Age < opts.AgeMin {
			opts.AgeMin = rec.Age
		}
		if rec.Age > opts.AgeMax {
			opts.AgeMax = rec.Age
		}
		sexes[rec.Sex] = struct{}{}
		housing[rec.Housing] = struct{}{}
		purposes[rec.Purpose] = struct{}{}
	}

	opts.Sexes = sortedKeys(sexes)
	opts.Housing = sortedKeys(housing)
	opts.Purposes = sortedKeys(purposes)
	return opts
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

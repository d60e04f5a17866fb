package dataset

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := writeTestCSV(t, testCSV)
	store, err := NewStore(path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return store, path
}

func TestNewStore(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Equal(t, 6, store.Len())
	assert.Len(t, store.All(), 6)
}

func TestNewStoreMissingFile(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "missing.csv"), nil)
	require.Error(t, err)
}

func TestNewStoreEmptyDataset(t *testing.T) {
	path := writeTestCSV(t, ",Age,Sex,Job,Housing,Saving accounts,Checking account,Credit amount,Duration,Purpose\n")

	_, err := NewStore(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}

func TestStoreOptions(t *testing.T) {
	store, _ := newTestStore(t)

	opts := store.Options()
	assert.Equal(t, 22, opts.AgeMin)
	assert.Equal(t, 67, opts.AgeMax)
	assert.Equal(t, []string{"female", "male"}, opts.Sexes)
	assert.Equal(t, []string{"free", "own", "rent"}, opts.Housing)
	assert.Equal(t, []string{"car", "education", "furniture/equipment", "radio/tv"}, opts.Purposes)
}

func TestStoreSelect(t *testing.T) {
	store, _ := newTestStore(t)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"zero filter returns all", Filter{}, 6},
		{"sex only", Filter{Sexes: []string{"female"}}, 2},
		{"housing or", Filter{Housing: []string{"own", "rent"}}, 4},
		{"age range", Filter{AgeMin: 40, AgeMax: 60}, 3},
		{"conjunction", Filter{Sexes: []string{"male"}, Housing: []string{"free"}}, 2},
		{"no match", Filter{Purposes: []string{"vacation/others"}}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, store.Select(tt.filter), tt.want)
		})
	}
}

func TestStoreReloadSwapsTable(t *testing.T) {
	store, path := newTestStore(t)

	smaller := `,Age,Sex,Job,Housing,Saving accounts,Checking account,Credit amount,Duration,Purpose
0,40,female,2,rent,little,little,900,12,business
`
	require.NoError(t, os.WriteFile(path, []byte(smaller), 0644))
	require.NoError(t, store.Reload(context.Background()))

	assert.Equal(t, 1, store.Len())
	opts := store.Options()
	assert.Equal(t, 40, opts.AgeMin)
	assert.Equal(t, []string{"business"}, opts.Purposes)
}

func TestStoreReloadFailureKeepsTable(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, os.Remove(path))
	require.Error(t, store.Reload(context.Background()))

	assert.Equal(t, 6, store.Len())
	assert.Equal(t, 22, store.Options().AgeMin)
}

func TestStoreConcurrentAccess(t *testing.T) {
	store, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = store.Select(Filter{Sexes: []string{"male"}})
				_ = store.Options()
				_ = store.Len()
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 10; j++ {
			_ = store.Reload(context.Background())
		}
	}()
	wg.Wait()

	assert.Equal(t, 6, store.Len())
}

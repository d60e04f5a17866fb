package exporter

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditlens/pkg/contracts/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRecords() []domain.CreditRecord {
	return []domain.CreditRecord{
		{ID: 0, Age: 67, Sex: "male", Job: 2, Housing: "own", SavingAccounts: "", CheckingAccount: "little", CreditAmount: 1169, Duration: 6, Purpose: "radio/TV"},
		{ID: 1, Age: 22, Sex: "female", Job: 2, Housing: "own", SavingAccounts: "little", CheckingAccount: "moderate", CreditAmount: 5951, Duration: 48, Purpose: "radio/TV"},
	}
}

func TestCSVExporterWrite(t *testing.T) {
	exporter := NewCSVExporter(testLogger())

	t.Run("writes BOM header and rows", func(t *testing.T) {
		var buf bytes.Buffer
		err := exporter.Write(&buf, sampleRecords(), WriteOptions{BOMPrefix: true})
		require.NoError(t, err)

		data := buf.Bytes()
		require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

		reader := csv.NewReader(bytes.NewReader(data[3:]))
		rows, err := reader.ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, domain.Columns, rows[0])
		assert.Equal(t, []string{"67", "male", "2", "own", "NA", "little", "1169", "6", "radio/TV"}, rows[1])
	})

	t.Run("unknown accounts round-trip as NA", func(t *testing.T) {
		records := []domain.CreditRecord{
			{Age: 35, Sex: "male", Job: 1, Housing: "rent", SavingAccounts: domain.AccountUnknown, CheckingAccount: "", CreditAmount: 2000, Duration: 12, Purpose: "car"},
		}

		var buf bytes.Buffer
		require.NoError(t, exporter.Write(&buf, records, WriteOptions{}))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "NA", rows[1][4])
		assert.Equal(t, "NA", rows[1][5])
	})

	t.Run("empty view writes header only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, exporter.Write(&buf, nil, WriteOptions{}))

		rows, err := csv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, domain.Columns, rows[0])
	})
}

func TestCSVExporterWriteFile(t *testing.T) {
	exporter := NewCSVExporter(testLogger())
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "records.csv")

	require.NoError(t, exporter.WriteFile(path, sampleRecords()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))

	rows, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestCSVExporterWriteTable(t *testing.T) {
	exporter := NewCSVExporter(testLogger())

	var buf bytes.Buffer
	headers := []string{"metric", "value"}
	rows := [][]string{{"count", "10"}, {"age_mean", "35.50"}}
	require.NoError(t, exporter.WriteTable(&buf, headers, rows, WriteOptions{}))

	parsed, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, headers, parsed[0])
	assert.Equal(t, []string{"age_mean", "35.50"}, parsed[2])
}

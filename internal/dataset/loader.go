package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"creditlens/pkg/contracts/domain"
)

// expectedHeader is the fixed schema of the German Credit CSV. The first
// column is an unnamed row index written by the original exporter.
var expectedHeader = []string{
	"", "Age", "Sex", "Job", "Housing",
	"Saving accounts", "Checking account",
	"Credit amount", "Duration", "Purpose",
}

// Load reads the dataset file and parses every row. A missing file or a row
// that fails type coercion is an error; the caller treats load failure at
// startup as fatal.
func Load(path string) ([]domain.CreditRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}

	slog.Info("dataset loaded",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return records, nil
}

// Parse decodes credit records from CSV data. The header row is validated
// against the expected schema so a wrong or truncated file fails loudly
// instead of producing a silently empty table.
func Parse(r io.Reader) ([]domain.CreditRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(expectedHeader)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	var records []domain.CreditRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("unexpected column count: got %d, want %d", len(header), len(expectedHeader))
	}
	for i, want := range expectedHeader {
		got := strings.TrimSpace(header[i])
		// Strip a UTF-8 BOM on the first cell; exporters for Excel add one.
		if i == 0 {
			got = strings.TrimPrefix(got, "\uFEFF")
		}
		if !strings.EqualFold(got, want) {
			return fmt.Errorf("unexpected column %d: got %q, want %q", i, got, want)
		}
	}
	return nil
}

func parseRow(row []string) (domain.CreditRecord, error) {
	id, err := parseInt("index", row[0])
	if err != nil {
		return domain.CreditRecord{}, err
	}
	age, err := parseInt("Age", row[1])
	if err != nil {
		return domain.CreditRecord{}, err
	}
	job, err := parseInt("Job", row[3])
	if err != nil {
		return domain.CreditRecord{}, err
	}
	amount, err := parseInt("Credit amount", row[7])
	if err != nil {
		return domain.CreditRecord{}, err
	}
	duration, err := parseInt("Duration", row[8])
	if err != nil {
		return domain.CreditRecord{}, err
	}

	return domain.CreditRecord{
		ID:              id,
		Age:             age,
		Sex:             strings.ToLower(strings.TrimSpace(row[2])),
		Job:             job,
		Housing:         strings.ToLower(strings.TrimSpace(row[4])),
		SavingAccounts:  parseAccount(row[5]),
		CheckingAccount: parseAccount(row[6]),
		CreditAmount:    int64(amount),
		Duration:        duration,
		Purpose:         strings.ToLower(strings.TrimSpace(row[9])),
	}, nil
}

func parseInt(column, cell string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(cell))
	if err != nil {
		return 0, fmt.Errorf("column %s: invalid integer %q", column, cell)
	}
	return v, nil
}

// parseAccount normalizes saving/checking account cells. The source file
// encodes absent status as "NA" or an empty cell.
func parseAccount(cell string) string {
	v := strings.ToLower(strings.TrimSpace(cell))
	if v == "" || v == "na" {
		return ""
	}
	return v
}

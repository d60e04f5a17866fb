package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"creditlens/pkg/contracts/domain"
)

// utf8BOM helps Excel recognize the file encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVExporter streams credit record views as CSV
type CSVExporter struct {
	logger *slog.Logger
}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter(logger *slog.Logger) *CSVExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVExporter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	// BOMPrefix adds a UTF-8 BOM so Excel opens the file correctly
	BOMPrefix bool
	// Headers overrides the canonical column header row; nil uses domain.Columns
	Headers []string
}

// Write streams records to w in the canonical column order.
// The header row is always written first.
func (e *CSVExporter) Write(w io.Writer, records []domain.CreditRecord, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	headers := options.Headers
	if headers == nil {
		headers = domain.Columns
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, record := range records {
		if err := cw.Write(record.Row()); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes records to a CSV file, creating parent directories as needed
func (e *CSVExporter) WriteFile(path string, records []domain.CreditRecord) error {
	e.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := e.Write(file, records, WriteOptions{BOMPrefix: true}); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteTable writes arbitrary tabular data to w. Used for summary and
// breakdown exports where rows are not credit records.
func (e *CSVExporter) WriteTable(w io.Writer, headers []string, rows [][]string, options WriteOptions) error {
	if options.BOMPrefix {
		if _, err := w.Write(utf8BOM); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	cw := csv.NewWriter(w)
	if len(headers) > 0 {
		if err := cw.Write(headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteTableFile writes tabular data to a CSV file
func (e *CSVExporter) WriteTableFile(path string, headers []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := e.WriteTable(file, headers, rows, WriteOptions{BOMPrefix: true}); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// formatFloat formats a float64 value for CSV output with exactly 2 decimal places
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

// formatInt formats an int64 value for CSV output
func formatInt(i int64) string {
	return fmt.Sprintf("%d", i)
}

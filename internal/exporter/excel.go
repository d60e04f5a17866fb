package exporter

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"creditlens/internal/analytics"
	"creditlens/pkg/contracts/domain"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

// ExcelExporter renders a filtered view as an xlsx workbook with a
// records sheet and a summary sheet.
type ExcelExporter struct {
	logger *slog.Logger
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter(logger *slog.Logger) *ExcelExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExcelExporter{logger: logger}
}

// Write builds the workbook and streams it to w
func (e *ExcelExporter) Write(w io.Writer, records []domain.CreditRecord, summary analytics.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	// The default sheet becomes the records sheet
	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := e.writeRecords(f, records); err != nil {
		return err
	}
	if err := e.writeSummary(f, summary); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Debug("xlsx export complete", slog.Int("record_count", len(records)))
	return nil
}

func (e *ExcelExporter) writeRecords(f *excelize.File, records []domain.CreditRecord) error {
	sw, err := f.NewStreamWriter(recordsSheet)
	if err != nil {
		return fmt.Errorf("failed to create stream writer: %w", err)
	}

	header := make([]interface{}, len(domain.Columns))
	for i, col := range domain.Columns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, record := range records {
		row := record.Row()
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return sw.Flush()
}

func (e *ExcelExporter) writeSummary(f *excelize.File, summary analytics.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Record count", summary.Count},
		{"Age min", summary.AgeMin},
		{"Age mean", summary.AgeMean},
		{"Age max", summary.AgeMax},
		{"Mean credit amount", summary.MeanCreditAmount},
		{"Median credit amount", summary.MedianCreditAmount},
		{"Total credit amount", summary.TotalCreditAmount},
		{"Mean duration", summary.MeanDuration},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i, err)
		}
	}

	return nil
}

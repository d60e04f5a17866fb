package exporter

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"golang.org/x/sync/errgroup"

	"creditlens/internal/analytics"
	"creditlens/pkg/contracts/domain"
)

// ReportExporter writes a bundle of CSV files describing a filtered view
// to an output directory. Used by the offline report command.
type ReportExporter struct {
	csv    *CSVExporter
	logger *slog.Logger
}

// NewReportExporter creates a new report exporter
func NewReportExporter(logger *slog.Logger) *ReportExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportExporter{
		csv:    NewCSVExporter(logger),
		logger: logger,
	}
}

// Export writes records.csv, summary.csv and one breakdown file per
// categorical field into outputDir. The files are independent, so they are
// written concurrently; the first failure aborts the bundle.
func (r *ReportExporter) Export(outputDir string, records []domain.CreditRecord) error {
	r.logger.Info("generating report bundle",
		slog.String("output_dir", outputDir),
		slog.Int("record_count", len(records)))

	var g errgroup.Group

	g.Go(func() error {
		if err := r.csv.WriteFile(filepath.Join(outputDir, "records.csv"), records); err != nil {
			return fmt.Errorf("failed to export records: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		summary := analytics.Summarize(records)
		rows := [][]string{
			{"count", strconv.Itoa(summary.Count)},
			{"age_min", strconv.Itoa(summary.AgeMin)},
			{"age_mean", formatFloat(summary.AgeMean)},
			{"age_max", strconv.Itoa(summary.AgeMax)},
			{"mean_credit_amount", formatFloat(summary.MeanCreditAmount)},
			{"median_credit_amount", formatFloat(summary.MedianCreditAmount)},
			{"total_credit_amount", formatInt(summary.TotalCreditAmount)},
			{"mean_duration", formatFloat(summary.MeanDuration)},
		}
		path := filepath.Join(outputDir, "summary.csv")
		if err := r.csv.WriteTableFile(path, []string{"metric", "value"}, rows); err != nil {
			return fmt.Errorf("failed to export summary: %w", err)
		}
		return nil
	})

	for _, field := range analytics.BreakdownFields {
		g.Go(func() error {
			breakdown, err := analytics.BreakdownBy(records, field)
			if err != nil {
				return fmt.Errorf("failed to compute breakdown %s: %w", field, err)
			}

			rows := make([][]string, 0, len(breakdown.Groups))
			for _, group := range breakdown.Groups {
				rows = append(rows, []string{
					group.Value,
					strconv.Itoa(group.Count),
					formatFloat(group.Share),
					formatFloat(group.MeanCreditAmount),
					formatFloat(group.MeanDuration),
				})
			}

			path := filepath.Join(outputDir, fmt.Sprintf("breakdown_%s.csv", field))
			headers := []string{"value", "count", "share", "mean_credit_amount", "mean_duration"}
			if err := r.csv.WriteTableFile(path, headers, rows); err != nil {
				return fmt.Errorf("failed to export breakdown %s: %w", field, err)
			}
			return nil
		})
	}

	return g.Wait()
}

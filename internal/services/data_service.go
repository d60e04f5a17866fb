package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"creditlens/internal/analytics"
	"creditlens/internal/dataset"
	"creditlens/internal/exporter"
	"creditlens/internal/infrastructure"
	"creditlens/pkg/contracts/domain"
)

// WebSocketHub is the broadcast surface the data service needs. The
// concrete hub lives in internal/websocket.
type WebSocketHub interface {
	Broadcast(messageType string, data interface{})
}

// Chart names accepted by GetChart.
const (
	ChartAgeGroups       = "age-groups"
	ChartCreditHistogram = "credit-histogram"
	ChartDurationHist    = "duration-histogram"
	ChartScatter         = "scatter"
	ChartHousingBySex    = "housing-by-sex"
	ChartAgeBySex        = "age-by-sex"
	ChartCreditBySex     = "credit-by-sex"
	ChartDurationByUse   = "duration-by-purpose"
)

// ReloadResult reports the outcome of a dataset reload
type ReloadResult struct {
	Records  int       `json:"records"`
	LoadedAt time.Time `json:"loaded_at"`
}

// DataService resolves filters against the dataset store and runs the
// analytics and exports over the resulting view.
type DataService struct {
	store   *dataset.Store
	csv     *exporter.CSVExporter
	excel   *exporter.ExcelExporter
	hub     WebSocketHub
	metrics *infrastructure.BusinessMetrics
	logger  *slog.Logger
}

// NewDataService creates a new data service. hub and metrics may be nil;
// broadcasts and metric recording become no-ops.
func NewDataService(store *dataset.Store, hub WebSocketHub, metrics *infrastructure.BusinessMetrics, logger *slog.Logger) *DataService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DataService{
		store:   store,
		csv:     exporter.NewCSVExporter(logger),
		excel:   exporter.NewExcelExporter(logger),
		hub:     hub,
		metrics: metrics,
		logger:  logger,
	}
}

// GetRecords returns the filtered view
func (s *DataService) GetRecords(ctx context.Context, filter dataset.Filter) []domain.CreditRecord {
	view := s.store.Select(filter.Normalize())
	s.metrics.RecordQuery(ctx, "records", len(view))

	s.logger.DebugContext(ctx, "records query",
		slog.Int("total", s.store.Len()),
		slog.Int("matched", len(view)))
	return view
}

// GetSummary computes the scalar metrics of the filtered view
func (s *DataService) GetSummary(ctx context.Context, filter dataset.Filter) analytics.Summary {
	view := s.store.Select(filter.Normalize())
	s.metrics.RecordQuery(ctx, "summary", len(view))
	return analytics.Summarize(view)
}

// GetBreakdown groups the filtered view by a categorical field
func (s *DataService) GetBreakdown(ctx context.Context, filter dataset.Filter, field string) (analytics.Breakdown, error) {
	view := s.store.Select(filter.Normalize())

	breakdown, err := analytics.BreakdownBy(view, analytics.BreakdownField(field))
	if err != nil {
		return analytics.Breakdown{}, fmt.Errorf("%w: %s", ErrUnknownBreakdownField, field)
	}

	s.metrics.RecordQuery(ctx, "breakdown", len(view))
	return breakdown, nil
}

// GetChart computes one of the named chart series over the filtered view
func (s *DataService) GetChart(ctx context.Context, filter dataset.Filter, name string) (interface{}, error) {
	view := s.store.Select(filter.Normalize())

	var result interface{}
	switch name {
	case ChartAgeGroups:
		result = analytics.AgeGroups(view)
	case ChartCreditHistogram:
		result = analytics.CreditAmountHistogram(view)
	case ChartDurationHist:
		result = analytics.DurationHistogram(view)
	case ChartScatter:
		result = analytics.Scatter(view)
	case ChartHousingBySex:
		result = analytics.HousingBySex(view)
	case ChartAgeBySex:
		result = analytics.AgeBySex(view)
	case ChartCreditBySex:
		result = analytics.CreditAmountBySex(view)
	case ChartDurationByUse:
		result = analytics.DurationByPurpose(view)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}

	s.metrics.RecordQuery(ctx, "chart:"+name, len(view))
	return result, nil
}

// GetDescribe computes descriptive statistics for the numeric columns
func (s *DataService) GetDescribe(ctx context.Context, filter dataset.Filter) []analytics.ColumnStats {
	view := s.store.Select(filter.Normalize())
	s.metrics.RecordQuery(ctx, "describe", len(view))
	return analytics.Describe(view)
}

// GetFindings computes the narrative findings over the filtered view
func (s *DataService) GetFindings(ctx context.Context, filter dataset.Filter) analytics.Findings {
	view := s.store.Select(filter.Normalize())
	s.metrics.RecordQuery(ctx, "findings", len(view))
	return analytics.ComputeFindings(view)
}

// GetFilterOptions returns the selectable filter values of the loaded dataset
func (s *DataService) GetFilterOptions(ctx context.Context) dataset.FilterOptions {
	return s.store.Options()
}

// ExportCSV streams the filtered view to w as CSV with a UTF-8 BOM
func (s *DataService) ExportCSV(ctx context.Context, w io.Writer, filter dataset.Filter) error {
	view := s.store.Select(filter.Normalize())

	if err := s.csv.Write(w, view, exporter.WriteOptions{BOMPrefix: true}); err != nil {
		return fmt.Errorf("csv export failed: %w", err)
	}

	s.metrics.RecordExport(ctx, "csv")
	s.logger.InfoContext(ctx, "csv export",
		slog.Int("record_count", len(view)))
	return nil
}

// ExportExcel streams the filtered view to w as an xlsx workbook
func (s *DataService) ExportExcel(ctx context.Context, w io.Writer, filter dataset.Filter) error {
	view := s.store.Select(filter.Normalize())

	if err := s.excel.Write(w, view, analytics.Summarize(view)); err != nil {
		return fmt.Errorf("xlsx export failed: %w", err)
	}

	s.metrics.RecordExport(ctx, "xlsx")
	s.logger.InfoContext(ctx, "xlsx export",
		slog.Int("record_count", len(view)))
	return nil
}

// Reload re-reads the dataset file. On success all connected dashboard
// clients receive a data:refresh broadcast; on failure the previous
// table stays live.
func (s *DataService) Reload(ctx context.Context) (ReloadResult, error) {
	if err := s.store.Reload(ctx); err != nil {
		s.metrics.RecordReload(ctx, false)
		s.logger.ErrorContext(ctx, "dataset reload failed",
			slog.String("error", err.Error()))
		return ReloadResult{}, fmt.Errorf("%w: %v", ErrReloadFailed, err)
	}

	result := ReloadResult{
		Records:  s.store.Len(),
		LoadedAt: time.Now().UTC(),
	}

	s.metrics.RecordReload(ctx, true)
	if s.hub != nil {
		s.hub.Broadcast("data:refresh", result)
	}

	s.logger.InfoContext(ctx, "dataset reloaded",
		slog.Int("record_count", result.Records))
	return result, nil
}

// TotalRecords returns the size of the loaded dataset
func (s *DataService) TotalRecords() int {
	return s.store.Len()
}

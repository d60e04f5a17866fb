package http

import (
	"context"
	"io"

	"creditlens/internal/analytics"
	"creditlens/internal/dataset"
	"creditlens/internal/services"
	"creditlens/pkg/contracts/domain"
)

// DataServiceInterface defines the contract between the data handler and
// the data service. The handler depends on this interface so tests can
// substitute a mock.
type DataServiceInterface interface {
	GetRecords(ctx context.Context, filter dataset.Filter) []domain.CreditRecord
	GetSummary(ctx context.Context, filter dataset.Filter) analytics.Summary
	GetBreakdown(ctx context.Context, filter dataset.Filter, field string) (analytics.Breakdown, error)
	GetChart(ctx context.Context, filter dataset.Filter, name string) (interface{}, error)
	GetDescribe(ctx context.Context, filter dataset.Filter) []analytics.ColumnStats
	GetFindings(ctx context.Context, filter dataset.Filter) analytics.Findings
	GetFilterOptions(ctx context.Context) dataset.FilterOptions
	ExportCSV(ctx context.Context, w io.Writer, filter dataset.Filter) error
	ExportExcel(ctx context.Context, w io.Writer, filter dataset.Filter) error
	Reload(ctx context.Context) (services.ReloadResult, error)
}

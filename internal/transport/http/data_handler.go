package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "creditlens/internal/errors"
	"creditlens/internal/infrastructure"
	"creditlens/internal/services"
)

// DataHandler handles dataset query and export requests
type DataHandler struct {
	service      DataServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewDataHandler creates a new data handler
func NewDataHandler(service DataServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *DataHandler {
	return &DataHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "data_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the data routes
func (h *DataHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/records", h.GetRecords)
	r.Get("/summary", h.GetSummary)
	r.Get("/breakdowns", h.GetBreakdown)
	r.Get("/charts/{chart}", h.GetChart)
	r.Get("/describe", h.GetDescribe)
	r.Get("/findings", h.GetFindings)
	r.Get("/filters", h.GetFilterOptions)

	// Export routes stream their own content type, no JSON middleware
	r.Get("/export/csv", h.ExportCSV)
	r.Get("/export/xlsx", h.ExportExcel)

	r.Post("/reload", h.Reload)

	return r
}

// GetRecords handles GET /api/data/records
func (h *DataHandler) GetRecords(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	records := h.service.GetRecords(r.Context(), req.Filter())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   records,
		"count":  len(records),
	})
}

// GetSummary handles GET /api/data/summary
func (h *DataHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	summary := h.service.GetSummary(r.Context(), req.Filter())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summary,
		"count":  summary.Count,
	})
}

// GetBreakdown handles GET /api/data/breakdowns?field=sex
func (h *DataHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	field := r.URL.Query().Get("field")
	if field == "" {
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("field", "field parameter is required"))
		return
	}

	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	breakdown, err := h.service.GetBreakdown(r.Context(), req.Filter(), field)
	if err != nil {
		if errors.Is(err, services.ErrUnknownBreakdownField) {
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest,
				"UNKNOWN_BREAKDOWN_FIELD",
				fmt.Sprintf("Unknown breakdown field: %s", field),
				field,
			))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   breakdown,
		"count":  len(breakdown.Groups),
	})
}

// GetChart handles GET /api/data/charts/{chart}
func (h *DataHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	chart := chi.URLParam(r, "chart")

	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	data, err := h.service.GetChart(r.Context(), req.Filter(), chart)
	if err != nil {
		if errors.Is(err, services.ErrUnknownChart) {
			h.errorHandler.HandleError(w, r, apierrors.NewWithDetails(
				http.StatusBadRequest,
				"UNKNOWN_CHART",
				fmt.Sprintf("Unknown chart: %s", chart),
				chart,
			))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   data,
	})
}

// GetDescribe handles GET /api/data/describe
func (h *DataHandler) GetDescribe(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	stats := h.service.GetDescribe(r.Context(), req.Filter())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   stats,
		"count":  len(stats),
	})
}

// GetFindings handles GET /api/data/findings
func (h *DataHandler) GetFindings(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	findings := h.service.GetFindings(r.Context(), req.Filter())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   findings,
	})
}

// GetFilterOptions handles GET /api/data/filters
func (h *DataHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	options := h.service.GetFilterOptions(r.Context())

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   options,
	})
}

// ExportCSV handles GET /api/data/export/csv
func (h *DataHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	reqID := infrastructure.GetTraceID(r.Context())
	h.logger.InfoContext(r.Context(), "csv export requested",
		slog.String("request_id", reqID))

	filename := fmt.Sprintf("credit_data_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportCSV(r.Context(), w, req.Filter()); err != nil {
		// Headers are already sent; log and drop the connection
		h.logger.ErrorContext(r.Context(), "csv export failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
	}
}

// ExportExcel handles GET /api/data/export/xlsx
func (h *DataHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	req, err := parseFilterRequest(r)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	reqID := infrastructure.GetTraceID(r.Context())
	h.logger.InfoContext(r.Context(), "xlsx export requested",
		slog.String("request_id", reqID))

	filename := fmt.Sprintf("credit_data_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.service.ExportExcel(r.Context(), w, req.Filter()); err != nil {
		h.logger.ErrorContext(r.Context(), "xlsx export failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))
	}
}

// Reload handles POST /api/data/reload
func (h *DataHandler) Reload(w http.ResponseWriter, r *http.Request) {
	reqID := infrastructure.GetTraceID(r.Context())
	h.logger.InfoContext(r.Context(), "dataset reload requested",
		slog.String("request_id", reqID))

	result, err := h.service.Reload(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "dataset reload failed",
			slog.String("error", err.Error()),
			slog.String("request_id", reqID))

		h.errorHandler.HandleError(w, r, apierrors.DatasetReloadError(err))
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   result,
	})
}

package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"

	"creditlens/internal/infrastructure"
)

// ErrorHandler provides centralized error handling for HTTP responses
type ErrorHandler struct {
	logger *slog.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *slog.Logger) *ErrorHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ErrorHandler{logger: logger}
}

// HandleError processes an error and writes an appropriate HTTP response
func (h *ErrorHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	problem := h.ErrorToProblem(r, err)

	logAttrs := []slog.Attr{
		slog.String("error", err.Error()),
		slog.Int("status", problem.Status),
		slog.String("type", problem.Type),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
	}
	if reqID := infrastructure.GetTraceID(r.Context()); reqID != "" {
		logAttrs = append(logAttrs, slog.String("request_id", reqID))
		problem.TraceID = reqID
	}

	if problem.Status >= 500 {
		h.logger.LogAttrs(r.Context(), slog.LevelError, "request failed", logAttrs...)
	} else {
		h.logger.LogAttrs(r.Context(), slog.LevelWarn, "request error", logAttrs...)
	}

	if renderErr := render.Render(w, r, problem); renderErr != nil {
		h.logger.Error("failed to render error response",
			slog.String("error", renderErr.Error()),
			slog.String("original_error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ErrorToProblem converts any error to RFC 7807 problem details
func (h *ErrorHandler) ErrorToProblem(r *http.Request, err error) *ProblemDetails {
	instance := ""
	if r != nil {
		instance = r.URL.Path
	}

	var problem *ProblemDetails
	if errors.As(err, &problem) {
		if problem.Instance == "" {
			problem.Instance = instance
		}
		return problem
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		p := NewProblemDetails(
			apiErr.StatusCode,
			problemTypeForStatus(apiErr.StatusCode),
			http.StatusText(apiErr.StatusCode),
			apiErr.Message,
			instance,
		)
		if apiErr.Details != nil {
			p.WithExtension("details", apiErr.Details)
		}
		p.WithExtension("error_code", apiErr.ErrorCode)
		return p
	}

	return NewProblemDetails(
		http.StatusInternalServerError,
		"/errors/internal",
		"Internal Server Error",
		"An unexpected error occurred",
		instance,
	)
}

// problemTypeForStatus maps HTTP status codes to problem type URIs
func problemTypeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "/errors/validation"
	case http.StatusNotFound:
		return "/errors/not-found"
	case http.StatusMethodNotAllowed:
		return "/errors/method-not-allowed"
	case http.StatusTooManyRequests:
		return "/errors/rate-limit"
	default:
		return "/errors/internal"
	}
}

// HandlePanic recovers from panics and writes a 500 response
func (h *ErrorHandler) HandlePanic(w http.ResponseWriter, r *http.Request, recovered interface{}) {
	h.logger.Error("panic recovered",
		slog.Any("panic", recovered),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.String("stack", string(debug.Stack())))

	problem := NewProblemDetails(
		http.StatusInternalServerError,
		"/errors/internal",
		"Internal Server Error",
		"An unexpected error occurred",
		r.URL.Path,
	)
	if reqID := infrastructure.GetTraceID(r.Context()); reqID != "" {
		problem.TraceID = reqID
	}

	if err := render.Render(w, r, problem); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NotFound returns a handler for unmatched routes
func (h *ErrorHandler) NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.HandleError(w, r, NewProblemDetails(
			http.StatusNotFound,
			"/errors/not-found",
			"Not Found",
			fmt.Sprintf("The requested resource %s was not found", r.URL.Path),
			r.URL.Path,
		))
	}
}

// MethodNotAllowed returns a handler for unsupported methods
func (h *ErrorHandler) MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.HandleError(w, r, NewProblemDetails(
			http.StatusMethodNotAllowed,
			"/errors/method-not-allowed",
			"Method Not Allowed",
			fmt.Sprintf("Method %s is not allowed for %s", r.Method, r.URL.Path),
			r.URL.Path,
		))
	}
}

// Middleware returns an HTTP middleware that recovers from panics
func (h *ErrorHandler) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if recovered := recover(); recovered != nil {
					h.HandlePanic(w, r, recovered)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

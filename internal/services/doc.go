// Package services implements the business logic layer between HTTP
// handlers and the dataset store.
//
// DataService answers every dashboard query: it resolves a filter into a
// view of the loaded records, runs the analytics over it, and streams
// exports. HealthService reports process and dependency health for the
// readiness and liveness endpoints.
//
// Services receive their dependencies through constructors, propagate
// context.Context for cancellation and tracing, and log through injected
// *slog.Logger instances.
package services

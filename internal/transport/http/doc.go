// Package http implements the HTTP request handlers of the dashboard API.
// It is a thin layer between transport and business logic: handlers parse
// filter query parameters, delegate to the service layer, and render JSON
// or streamed export responses.
//
// Error responses follow RFC 7807 problem details via the shared
// ErrorHandler. Success responses use a consistent envelope:
//
//	{"status": "success", "data": ..., "count": ...}
//
// Filters arrive as query parameters on every data endpoint:
//
//	GET /api/data/summary?age_min=25&age_max=45&sex=female&housing=own&purpose=car
//
// Repeated sex, housing and purpose parameters combine as alternatives
// within the field; fields combine conjunctively.
package http

// Package analytics computes summary statistics, grouped breakdowns, and
// chart series over a filtered view of the credit table.
//
// Every function tolerates an empty view, returning zero-valued metrics and
// empty series instead of an error; the only failure mode is asking for an
// unknown breakdown field.
package analytics

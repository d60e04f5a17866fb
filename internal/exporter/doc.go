// Package exporter renders filtered credit record views to downloadable
// formats.
//
// CSVExporter streams records as CSV with an optional UTF-8 BOM so the
// files open cleanly in Excel. ExcelExporter builds xlsx workbooks with
// a records sheet and a summary sheet. ReportExporter writes a bundle of
// CSV files (records, summary, per-field breakdowns) to a directory for
// offline report generation.
package exporter

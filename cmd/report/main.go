package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"creditlens/internal/config"
	"creditlens/internal/dataset"
	"creditlens/internal/exporter"
	"creditlens/internal/infrastructure"
)

func main() {
	outputDir := flag.String("out", "reports", "output directory for the report bundle")
	datasetPath := flag.String("dataset", "", "path to the credit dataset CSV (defaults to configured path)")
	sexes := flag.String("sex", "", "comma-separated sex values to include (e.g. male,female)")
	housing := flag.String("housing", "", "comma-separated housing values to include (e.g. own,rent,free)")
	purposes := flag.String("purpose", "", "comma-separated purpose values to include (e.g. car,education)")
	ageMin := flag.Int("age-min", 0, "minimum age to include (0 disables the bound)")
	ageMax := flag.Int("age-max", 0, "maximum age to include (0 disables the bound)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	path := cfg.DatasetPath()
	if *datasetPath != "" {
		path = *datasetPath
	}

	store, err := dataset.NewStore(path, logger)
	if err != nil {
		logger.Error("Failed to load dataset", "path", path, "error", err)
		os.Exit(1)
	}
	logger.Info("Loaded dataset", "path", path, "records", store.Len())

	filter := dataset.Filter{
		AgeMin:   *ageMin,
		AgeMax:   *ageMax,
		Sexes:    splitValues(*sexes),
		Housing:  splitValues(*housing),
		Purposes: splitValues(*purposes),
	}.Normalize()

	records := store.Select(filter)
	if len(records) == 0 {
		// An empty view is still a valid report; the bundle carries
		// headers and zero-valued metrics.
		logger.Warn("No records match the requested filter",
			"age_min", *ageMin,
			"age_max", *ageMax,
			"sexes", *sexes,
			"housing", *housing,
			"purposes", *purposes)
	}
	logger.Info("Selected records", "count", len(records), "total", store.Len())

	if err := exporter.NewReportExporter(logger).Export(*outputDir, records); err != nil {
		logger.Error("Failed to write report bundle", "dir", *outputDir, "error", err)
		os.Exit(1)
	}
	logger.Info("Report bundle written", "dir", *outputDir)
}

func splitValues(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

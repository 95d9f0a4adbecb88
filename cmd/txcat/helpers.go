package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/txcat/internal/batch"
	"github.com/Veraticus/txcat/internal/cli"
	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/config"
	"github.com/Veraticus/txcat/internal/engine"
	"github.com/Veraticus/txcat/internal/ml"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/spf13/viper"
)

// Output formats for batch results.
const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

// loadConfig builds the typed configuration from the global viper instance.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return config.Config{}, common.NewUserError("Invalid configuration", err)
	}
	return cfg, nil
}

// buildEngine loads the rule table and the classifier model once. A bad
// rule table is fatal; a missing model only disables the model tier.
func buildEngine(ctx context.Context, cfg config.Config) (*engine.Engine, error) {
	table, err := config.LoadRuleTable(ctx, cfg.Rules)
	if err != nil {
		return nil, common.NewUserError("Rule table is invalid", err)
	}

	logger := slog.Default()
	logger.Info("Loaded rule table",
		"source", cfg.Rules.Source(),
		"rules", table.Len())

	classifier := ml.Load(cfg.Model.Path, logger)

	return engine.NewWithConfig(table, classifier, engine.Config{
		Logger:          logger,
		ParallelWorkers: cfg.Batch.Concurrency,
	}), nil
}

// expandFiles resolves glob patterns; plain paths that exist are kept.
func expandFiles(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, common.NewUserError("No input files found", nil)
	}
	return files, nil
}

// writeResults renders a batch in the requested format.
func writeResults(w io.Writer, format string, inputs []model.TransactionInput, results []model.ClassificationResult) error {
	switch strings.ToLower(format) {
	case formatTable:
		_, err := fmt.Fprint(w, cli.RenderResultsTable(inputs, results))
		return err
	case formatCSV, formatJSON:
		records, err := batch.Records(inputs, results)
		if err != nil {
			return err
		}
		if strings.EqualFold(format, formatCSV) {
			return batch.WriteCSV(w, records)
		}
		return batch.WriteJSONLines(w, records)
	default:
		return common.NewUserError(fmt.Sprintf("Unknown output format %q (use table, csv or json)", format), nil)
	}
}

// openOutput returns stdout for "" or "-", otherwise a created file.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

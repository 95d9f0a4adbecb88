package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/txcat/internal/batch"
	"github.com/Veraticus/txcat/internal/cli"
	"github.com/Veraticus/txcat/internal/engine"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/spf13/cobra"
)

func classifyFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify-file <statement.csv>",
		Short: "Classify every transaction of a CSV export",
		Long: `Classify a ';'-separated statement export with a header row such as
Date;Type;Description;Montant;Sens. Use "-" to read from stdin.

Examples:
  txcat classify-file export.csv
  txcat classify-file export.csv --format csv --output classified.csv
  cat export.csv | txcat classify-file - --format json`,
		Args: cobra.ExactArgs(1),
		RunE: runClassifyFile,
	}
	addBatchFlags(cmd)
	return cmd
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", formatTable, "output format (table, csv, json)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().Bool("no-progress", false, "disable the progress bar")
	cmd.Flags().Bool("stats", false, "print a summary of decision methods")
}

func runClassifyFile(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open statement: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	inputs, err := batch.ReadCSV(r)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	slog.Info("Read statement", "file", args[0], "transactions", len(inputs))

	return classifyBatch(cmd, inputs)
}

// classifyBatch runs the engine over inputs and writes the results.
func classifyBatch(cmd *cobra.Command, inputs []model.TransactionInput) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	showStats, _ := cmd.Flags().GetBool("stats")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	onDone := func() {}
	if !noProgress {
		onDone = cli.ProgressFunc(cli.NewProgressBar(cmd.ErrOrStderr(), len(inputs)))
	}

	results, err := e.ClassifyAll(ctx, inputs, onDone)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := writeResults(w, format, inputs, results); err != nil {
		_ = closeOut()
		return err
	}
	if err := closeOut(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	if showStats {
		printStats(cmd.ErrOrStderr(), e)
	}
	return nil
}

func printStats(w io.Writer, e *engine.Engine) {
	if _, err := fmt.Fprintln(w, cli.RenderStats(e.Stats())); err != nil {
		slog.Warn("Failed to write stats", "error", err)
	}
}

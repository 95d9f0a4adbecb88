package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/ofx"
	"github.com/spf13/cobra"
)

func classifyOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify-ofx [files...]",
		Short: "Classify transactions from OFX/QFX statements",
		Long: `Classify the transactions of OFX or QFX statements exported from your bank.
Debits and credits are taken from the sign of each amount.

Examples:
  txcat classify-ofx ~/Downloads/releve_2024_01.ofx
  txcat classify-ofx ~/Downloads/*.qfx --format csv -o classified.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassifyOFX,
	}
	addBatchFlags(cmd)
	return cmd
}

func runClassifyOFX(cmd *cobra.Command, args []string) error {
	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	parser := ofx.NewParser(slog.Default())
	var inputs []model.TransactionInput

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			slog.Error("Failed to open file", "file", path, "error", err)
			continue
		}

		parsed, err := parser.ParseFile(cmd.Context(), f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", path, "error", err)
			continue
		}
		if len(parsed) == 0 {
			slog.Warn("No transactions found in file", "file", filepath.Base(path))
			continue
		}
		inputs = append(inputs, parsed...)
	}

	if len(inputs) == 0 {
		return common.NewUserError("No transactions found in the given files", common.ErrNoTransactions)
	}

	return classifyBatch(cmd, inputs)
}

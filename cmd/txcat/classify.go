package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Veraticus/txcat/internal/cli"
	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [description]",
		Short: "Classify a single transaction",
		Long: `Classify one transaction and print the decision.

Examples:
  txcat classify "AMAZON.FR*XZ1234"
  txcat classify --description "CB INTERMARCHE" --amount "29,21" --sense DEBIT
  txcat classify "Apple.com/bill" --json`,
		RunE: runClassify,
	}

	cmd.Flags().String("description", "", "bank description (alternative to the positional argument)")
	cmd.Flags().String("type", "", "transaction type as reported by the bank")
	cmd.Flags().String("amount", "", "amount, with '.' or ',' as decimal separator")
	cmd.Flags().String("sense", "", "DEBIT or CREDIT")
	cmd.Flags().String("date", "", "transaction date")
	cmd.Flags().Bool("json", false, "print the result as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	description, _ := cmd.Flags().GetString("description")
	txType, _ := cmd.Flags().GetString("type")
	amount, _ := cmd.Flags().GetString("amount")
	sense, _ := cmd.Flags().GetString("sense")
	date, _ := cmd.Flags().GetString("date")
	asJSON, _ := cmd.Flags().GetBool("json")

	if description == "" {
		description = strings.Join(args, " ")
	}
	if strings.TrimSpace(description) == "" {
		return common.NewUserError("A description is required", nil)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	e, err := buildEngine(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	in := model.TransactionInput{
		Date:        date,
		Type:        txType,
		Description: description,
		Amount:      amount,
		Sense:       model.Sense(strings.ToUpper(sense)),
	}
	result := e.Classify(cmd.Context(), in)

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	_, err = fmt.Fprintln(out, cli.RenderResult(in, result))
	return err
}

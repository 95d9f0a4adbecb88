package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/txcat/internal/cli"
	"github.com/Veraticus/txcat/internal/common"
	"github.com/Veraticus/txcat/internal/config"
	"github.com/Veraticus/txcat/internal/rules"
	"github.com/Veraticus/txcat/internal/storage"
	"github.com/spf13/cobra"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and export the rule table",
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesTestCmd())
	cmd.AddCommand(rulesExportCmd())

	return cmd
}

// activeTable loads the table from the configured source.
func activeTable(cmd *cobra.Command) (*rules.Table, config.RulesConfig, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.RulesConfig{}, err
	}
	table, err := config.LoadRuleTable(cmd.Context(), cfg.Rules)
	if err != nil {
		return nil, cfg.Rules, common.NewUserError("Rule table is invalid", err)
	}
	return table, cfg.Rules, nil
}

func rulesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules in evaluation order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			table, rc, err := activeTable(cmd)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(table.Definitions())
			}

			source, err := config.DescribeRuleSource(cmd.Context(), rc)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d rules (%s)", table.Len(), source)))
			_, err = fmt.Fprint(out, cli.RenderRulesTable(table))
			return err
		},
	}
	cmd.Flags().Bool("json", false, "print rules as JSON")
	return cmd
}

func rulesTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <description>",
		Short: "Show which rule matches a description",
		Long: `Show the rule that wins for a description, followed by every later rule
that also matches and is therefore shadowed.

Example:
  txcat rules test "AMAZON PRIME FR 2469664"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, _, err := activeTable(cmd)
			if err != nil {
				return err
			}
			return printRuleTest(cmd.OutOrStdout(), table, strings.Join(args, " "))
		},
	}
}

func printRuleTest(w io.Writer, table *rules.Table, description string) error {
	normalized := common.NormalizeDescription(description)
	fmt.Fprintf(w, "%s %q\n", cli.BoldStyle.Render("Normalized:"), normalized)

	matches := table.MatchAll(normalized)
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w, cli.FormatWarning("No rule matches"))
		return err
	}

	winner := matches[0]
	fmt.Fprintln(w, cli.FormatSuccess(fmt.Sprintf("%s → %s / %s", winner.ID, winner.Category, winner.Subcategory)))
	for _, r := range matches[1:] {
		fmt.Fprintln(w, cli.SubtleStyle.Render(fmt.Sprintf("  shadowed: %s → %s / %s", r.ID, r.Category, r.Subcategory)))
	}
	return nil
}

func rulesExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the active rule table to YAML or SQLite",
		Long: `Write the active rule table, in order, to a YAML file or a SQLite store.
The result can be loaded back with --rules-file or --rules-db.

Examples:
  txcat rules export --yaml rules.yaml
  txcat rules export --db ~/.local/share/txcat/rules.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yamlPath, _ := cmd.Flags().GetString("yaml")
			dbPath, _ := cmd.Flags().GetString("db")

			table, rc, err := activeTable(cmd)
			if err != nil {
				return err
			}
			return exportRules(cmd, table, rc.Origin(), yamlPath, dbPath)
		},
	}
	cmd.Flags().String("yaml", "", "YAML file to write (\"-\" for stdout)")
	cmd.Flags().String("db", "", "SQLite database to write")
	return cmd
}

func exportRules(cmd *cobra.Command, table *rules.Table, source, yamlPath, dbPath string) error {
	switch {
	case yamlPath != "" && dbPath != "":
		return common.NewUserError("Use only one of --yaml and --db", nil)

	case yamlPath != "":
		w, closeOut, err := openOutput(config.ExpandPath(yamlPath), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := rules.WriteYAML(w, table); err != nil {
			_ = closeOut()
			return err
		}
		return closeOut()

	case dbPath != "":
		store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(cmd.Context()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		if err := store.SaveRules(cmd.Context(), table.Definitions(), source); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatSuccess(fmt.Sprintf("Exported %d rules to %s", table.Len(), store.Path())))
		return nil

	default:
		return common.NewUserError("Specify --yaml or --db", nil)
	}
}

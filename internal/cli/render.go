package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/txcat/internal/engine"
	"github.com/Veraticus/txcat/internal/model"
	"github.com/Veraticus/txcat/internal/rules"
	"github.com/charmbracelet/lipgloss"
)

// MethodStyle returns the style used for a decision method.
func MethodStyle(m model.Method) lipgloss.Style {
	switch m {
	case model.MethodRules:
		return SuccessStyle
	case model.MethodML:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

func methodIcon(m model.Method) string {
	switch m {
	case model.MethodRules:
		return RuleIcon
	case model.MethodML:
		return RobotIcon
	default:
		return ErrorIcon
	}
}

// FormatLabel renders "CATEGORY / SUBCATEGORY", or the category alone
// when there is no subcategory.
func FormatLabel(r model.ClassificationResult) string {
	if sub := r.SubcategoryOrEmpty(); sub != "" {
		return r.Category + " / " + sub
	}
	return r.Category
}

// RenderResult renders a single decision for the terminal.
func RenderResult(in model.TransactionInput, r model.ClassificationResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Description:"), in.Description)
	fmt.Fprintf(&b, "%s %s\n", BoldStyle.Render("Category:   "), MethodStyle(r.Method).Render(FormatLabel(r)))
	fmt.Fprintf(&b, "%s %s %s\n", BoldStyle.Render("Method:     "), methodIcon(r.Method), r.Method)
	fmt.Fprintf(&b, "%s %.2f", BoldStyle.Render("Confidence: "), r.Confidence)
	if id := r.RuleIDOrEmpty(); id != "" {
		fmt.Fprintf(&b, "\n%s %s", BoldStyle.Render("Rule:       "), id)
	}

	return RenderBox("Classification", b.String())
}

// RenderResultsTable renders one row per input, in input order.
func RenderResultsTable(inputs []model.TransactionInput, results []model.ClassificationResult) string {
	header := []string{"DATE", "DESCRIPTION", "AMOUNT", "CATEGORY", "METHOD", "CONF", "RULE"}
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		in := inputs[i]
		rows = append(rows, []string{
			in.Date,
			truncate(in.Description, 40),
			fmt.Sprintf("%v", in.Amount),
			FormatLabel(r),
			string(r.Method),
			fmt.Sprintf("%.2f", r.Confidence),
			r.RuleIDOrEmpty(),
		})
	}
	return renderTable(header, rows, func(row int) lipgloss.Style {
		return MethodStyle(results[row].Method)
	})
}

// RenderRulesTable lists the rule table in evaluation order.
func RenderRulesTable(t *rules.Table) string {
	header := []string{"#", "ID", "CATEGORY", "SUBCATEGORY", "PATTERN"}
	defs := t.Definitions()
	rows := make([][]string, 0, len(defs))
	for i, def := range defs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			def.ID,
			def.Category,
			def.Subcategory,
			truncate(def.Pattern, 50),
		})
	}
	return renderTable(header, rows, nil)
}

// RenderStats summarizes how decisions were reached.
func RenderStats(s engine.Stats) string {
	total := s.Total()
	pct := func(n int64) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) * 100 / float64(total)
	}

	lines := []string{
		fmt.Sprintf("Total:    %d", total),
		SuccessStyle.Render(fmt.Sprintf("Rules:    %d (%.1f%%)", s.Rules, pct(s.Rules))),
		WarningStyle.Render(fmt.Sprintf("Model:    %d (%.1f%%)", s.ML, pct(s.ML))),
		ErrorStyle.Render(fmt.Sprintf("Unknown:  %d (%.1f%%)", s.Fallback, pct(s.Fallback))),
	}
	if s.Cache != nil {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("Cache:    %d hits, %d misses (%.1f%%)",
			s.Cache.Hits, s.Cache.Misses, s.Cache.HitRate()*100)))
	}
	return RenderBox(ChartIcon+" Summary", strings.Join(lines, "\n"))
}

func renderTable(header []string, rows [][]string, rowStyle func(int) lipgloss.Style) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	cells := make([]string, len(header))
	for i, h := range header {
		cells[i] = TableCellStyle.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(TableHeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
	b.WriteString("\n")

	for r, row := range rows {
		for i, cell := range row {
			cells[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if rowStyle != nil {
			line = rowStyle(r).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-1]) + "…"
}

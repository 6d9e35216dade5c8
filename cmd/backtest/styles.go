package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rxtech-lab/signalbench/internal/types"
)

// Style definitions.
var (
	// TitleStyle for headers.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// HelpStyle for help text.
	HelpStyle = lipgloss.NewStyle().Faint(true)

	// ErrorStyle for error messages.
	ErrorStyle = lipgloss.NewStyle().Bold(true)
)

// FormatReturnWithColor formats a percentage with a direction indicator.
func FormatReturnWithColor(value float64) string {
	formatted := fmt.Sprintf("%.2f%%", value)

	if value > 0 {
		return formatted + " ▲"
	} else if value < 0 {
		return formatted + " ▼"
	}

	return formatted
}

// RenderReport renders the per-strategy results as a plain-text table.
func RenderReport(results []types.TradeResult) string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Backtest results"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-12s %8s %14s %14s\n", "STRATEGY", "TRADES", "SUCCESS", "AVG RETURN"))

	for _, result := range results {
		b.WriteString(fmt.Sprintf("%-12s %8d %14s %14s\n",
			result.StrategyName,
			result.TotalTrades,
			fmt.Sprintf("%.2f%%", result.SuccessRatePercent),
			FormatReturnWithColor(result.AvgReturnPercent),
		))
	}

	return b.String()
}

func sortedIndicators(names []types.IndicatorType) []string {
	sorted := make([]string, 0, len(names))
	for _, name := range names {
		sorted = append(sorted, string(name))
	}

	sort.Strings(sorted)

	return sorted
}

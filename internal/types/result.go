package types

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TradeResult is the summary produced by one strategy evaluation.
// It is returned by value and never mutated after the run.
type TradeResult struct {
	// StrategyName identifies the strategy that produced this result.
	StrategyName string `yaml:"strategy_name"`
	// SuccessRatePercent is the percentage of closed trades whose return
	// exceeded the profitability threshold. Zero when no trades closed.
	SuccessRatePercent float64 `yaml:"success_rate_percent"`
	// AvgReturnPercent is the mean return over closed trades, as a
	// percentage. Zero when no trades closed.
	AvgReturnPercent float64 `yaml:"avg_return_percent"`
	// TotalTrades counts completed buy-then-sell round trips. A position
	// still open at series end is not counted.
	TotalTrades int `yaml:"total_trades"`
	// Signals is the per-bar signal track, aligned with the input series.
	Signals SignalTrack `yaml:"signals,flow"`
}

// WriteTradeResults serializes results to YAML at the given path.
func WriteTradeResults(path string, results []TradeResult) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal trade results to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write trade results to file: %w", err)
	}

	return nil
}

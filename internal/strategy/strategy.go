// Package strategy implements the three strategy engines (RSI, MACD
// crossover, Bollinger Bands) that convert indicator readings into
// buy/sell signals through a shared single-position state machine.
package strategy

import (
	"math"

	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// Strategy evaluates a fully-materialized candle series against a
// profitability threshold and produces one TradeResult. Evaluations are
// pure: the same inputs always produce the same result, and no state is
// carried between calls.
type Strategy interface {
	// Name returns the strategy's identifier used in results and the ledger
	Name() string
	// MinBars returns the minimum series length the strategy accepts
	MinBars() int
	// Evaluate runs the strategy over the candle series
	Evaluate(candles []types.Candle, threshold float64) (types.TradeResult, error)
}

// validateInput enforces the shared preconditions: enough bars for the
// strategy, a finite threshold, and finite closes.
func validateInput(name string, closes []float64, minBars int, threshold float64) error {
	if len(closes) < minBars {
		return errors.NewInsufficientDataErrorf(minBars, len(closes), name,
			"insufficient data for %s strategy: required %d bars, got %d", name, minBars, len(closes))
	}

	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return errors.NewDegenerateInputErrorf("threshold", threshold,
			"profitability threshold for %s strategy is not finite", name)
	}

	for i, close := range closes {
		if math.IsNaN(close) || math.IsInf(close, 0) {
			return errors.NewDegenerateInputErrorf("close", close,
				"close price at bar %d is not finite", i)
		}
	}

	return nil
}

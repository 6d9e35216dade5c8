package strategy

import (
	"github.com/rxtech-lab/signalbench/internal/indicator"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// MACDStrategyConfig holds the tunable parameters of the MACD crossover
// strategy. Defaults reproduce the reference behavior.
type MACDStrategyConfig struct {
	// FastPeriod is the short EMA window.
	FastPeriod int `yaml:"fast_period" validate:"gt=0"`
	// SlowPeriod is the long EMA window and the first bar of the MACD line.
	SlowPeriod int `yaml:"slow_period" validate:"gt=0,gtfield=FastPeriod"`
	// SignalPeriod is the EMA window applied to the MACD line itself.
	SignalPeriod int `yaml:"signal_period" validate:"gt=0"`
}

// DefaultMACDStrategyConfig returns the reference parameters.
func DefaultMACDStrategyConfig() MACDStrategyConfig {
	return MACDStrategyConfig{
		FastPeriod:   12,
		SlowPeriod:   26,
		SignalPeriod: 9,
	}
}

// MACDStrategy trades bullish and bearish crossovers of the MACD line
// against its signal line.
type MACDStrategy struct {
	config MACDStrategyConfig
	macd   *indicator.MACD
}

// NewMACDStrategy creates a MACD strategy with the given configuration.
func NewMACDStrategy(config MACDStrategyConfig) (Strategy, error) {
	macd := indicator.NewMACD()

	if err := macd.Config(config.FastPeriod, config.SlowPeriod, config.SignalPeriod); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStrategyConfigError, "invalid MACD strategy configuration", err)
	}

	return &MACDStrategy{
		config: config,
		macd:   macd.(*indicator.MACD),
	}, nil
}

// Name implements Strategy.
func (s *MACDStrategy) Name() string {
	return string(types.IndicatorTypeMACD)
}

// MinBars implements Strategy. The EMA seeds read the raw closes at
// bars fastPeriod-1 and slowPeriod-1, so the series must reach the slow
// period. The reference reads those indices unconditionally; here the
// length is checked before any indexing.
func (s *MACDStrategy) MinBars() int {
	return s.config.SlowPeriod
}

// Evaluate implements Strategy.
func (s *MACDStrategy) Evaluate(candles []types.Candle, threshold float64) (types.TradeResult, error) {
	closes := types.ClosePrices(candles)

	if err := validateInput(s.Name(), closes, s.MinBars(), threshold); err != nil {
		return types.TradeResult{}, err
	}

	macdLine, signalLine, err := s.macd.Lines(closes)
	if err != nil {
		return types.TradeResult{}, errors.Wrap(errors.ErrCodeIndicatorCalculation, "MACD line construction failed", err)
	}

	tracker := NewTracker(len(closes), threshold)

	for i := 1; i < len(signalLine); i++ {
		// Map the signal-line index back to the absolute bar.
		idx := i + s.config.SlowPeriod

		bullish := macdLine[i-1] < signalLine[i-1] && macdLine[i] > signalLine[i]
		bearish := macdLine[i-1] > signalLine[i-1] && macdLine[i] < signalLine[i]

		if !tracker.Holding() && bullish {
			tracker.Open(idx, closes[idx])
		} else if tracker.Holding() && bearish {
			tracker.Close(idx, closes[idx])
		}
	}

	return tracker.Result(s.Name()), nil
}

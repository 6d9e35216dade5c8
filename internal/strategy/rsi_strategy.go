package strategy

import (
	"github.com/rxtech-lab/signalbench/internal/indicator"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// RSIStrategyConfig holds the tunable parameters of the RSI strategy.
// Defaults reproduce the reference behavior.
type RSIStrategyConfig struct {
	// Period is the RSI window length.
	Period int `yaml:"period" validate:"gt=0"`
	// WarmUpBars is the first bar the evaluation loop looks at. The
	// reference uses 15 regardless of the period; the off-by-one against
	// period+1 is intentional and preserved.
	WarmUpBars int `yaml:"warm_up_bars" validate:"gte=0"`
	// Oversold opens a position when RSI drops below it.
	Oversold float64 `yaml:"oversold" validate:"gt=0,ltfield=Overbought"`
	// Overbought closes the position when RSI rises above it.
	Overbought float64 `yaml:"overbought" validate:"lt=100"`
	// Mode selects the reference-compatible or the classic RSI formula.
	Mode indicator.RSIMode `yaml:"mode" validate:"omitempty,oneof=compat classic"`
}

// DefaultRSIStrategyConfig returns the reference parameters.
func DefaultRSIStrategyConfig() RSIStrategyConfig {
	return RSIStrategyConfig{
		Period:     14,
		WarmUpBars: 15,
		Oversold:   30,
		Overbought: 70,
		Mode:       indicator.RSIModeCompat,
	}
}

// RSIStrategy buys oversold bars and sells overbought ones.
type RSIStrategy struct {
	config RSIStrategyConfig
	rsi    indicator.Indicator
}

// NewRSIStrategy creates an RSI strategy with the given configuration.
func NewRSIStrategy(config RSIStrategyConfig) (Strategy, error) {
	rsi := indicator.NewRSI()

	mode := config.Mode
	if mode == "" {
		mode = indicator.RSIModeCompat
		config.Mode = mode
	}

	if err := rsi.Config(config.Period, mode); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStrategyConfigError, "invalid RSI strategy configuration", err)
	}

	if config.WarmUpBars < 0 {
		return nil, errors.Newf(errors.ErrCodeStrategyConfigError, "warm-up bars must be non-negative, got %d", config.WarmUpBars)
	}

	if config.Oversold >= config.Overbought {
		return nil, errors.Newf(errors.ErrCodeStrategyConfigError, "oversold threshold %.2f must be below overbought threshold %.2f", config.Oversold, config.Overbought)
	}

	return &RSIStrategy{
		config: config,
		rsi:    rsi,
	}, nil
}

// Name implements Strategy.
func (s *RSIStrategy) Name() string {
	return string(types.IndicatorTypeRSI)
}

// MinBars implements Strategy. The reference loop starts at the warm-up
// bar, so anything shorter cannot produce a single decision.
func (s *RSIStrategy) MinBars() int {
	return s.config.WarmUpBars
}

// Evaluate implements Strategy.
func (s *RSIStrategy) Evaluate(candles []types.Candle, threshold float64) (types.TradeResult, error) {
	closes := types.ClosePrices(candles)

	if err := validateInput(s.Name(), closes, s.MinBars(), threshold); err != nil {
		return types.TradeResult{}, err
	}

	tracker := NewTracker(len(closes), threshold)

	for i := s.config.WarmUpBars; i < len(closes); i++ {
		value, err := s.rsi.RawValue(closes, i)
		if err != nil {
			return types.TradeResult{}, errors.Wrap(errors.ErrCodeIndicatorCalculation, "RSI calculation failed", err)
		}

		if !tracker.Holding() && value < s.config.Oversold {
			tracker.Open(i, closes[i])
		} else if tracker.Holding() && value > s.config.Overbought {
			tracker.Close(i, closes[i])
		}
	}

	return tracker.Result(s.Name()), nil
}

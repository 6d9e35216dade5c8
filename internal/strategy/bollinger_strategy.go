package strategy

import (
	"github.com/rxtech-lab/signalbench/internal/indicator"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// BollingerStrategyConfig holds the tunable parameters of the Bollinger
// Bands strategy. Defaults reproduce the reference behavior.
type BollingerStrategyConfig struct {
	// Period is the moving-average window.
	Period int `yaml:"period" validate:"gt=0"`
	// BandWidth is the band distance in standard deviations.
	BandWidth float64 `yaml:"band_width" validate:"gt=0"`
}

// DefaultBollingerStrategyConfig returns the reference parameters.
func DefaultBollingerStrategyConfig() BollingerStrategyConfig {
	return BollingerStrategyConfig{
		Period:    20,
		BandWidth: 2.0,
	}
}

// BollingerStrategy buys closes breaking below the lower band and sells
// closes breaking above the upper band.
type BollingerStrategy struct {
	config BollingerStrategyConfig
	bands  *indicator.BollingerBands
}

// NewBollingerStrategy creates a Bollinger Bands strategy with the given configuration.
func NewBollingerStrategy(config BollingerStrategyConfig) (Strategy, error) {
	bands := indicator.NewBollingerBands()

	if err := bands.Config(config.Period, config.BandWidth); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStrategyConfigError, "invalid Bollinger strategy configuration", err)
	}

	return &BollingerStrategy{
		config: config,
		bands:  bands.(*indicator.BollingerBands),
	}, nil
}

// Name implements Strategy.
func (s *BollingerStrategy) Name() string {
	return "bollinger"
}

// MinBars implements Strategy. The first decision bar is the period
// itself, so the window needs that many bars behind it.
func (s *BollingerStrategy) MinBars() int {
	return s.config.Period
}

// Evaluate implements Strategy.
func (s *BollingerStrategy) Evaluate(candles []types.Candle, threshold float64) (types.TradeResult, error) {
	closes := types.ClosePrices(candles)

	if err := validateInput(s.Name(), closes, s.MinBars(), threshold); err != nil {
		return types.TradeResult{}, err
	}

	tracker := NewTracker(len(closes), threshold)

	for i := s.config.Period; i < len(closes); i++ {
		upper, _, lower, err := s.bands.Bands(closes, i)
		if err != nil {
			return types.TradeResult{}, errors.Wrap(errors.ErrCodeIndicatorCalculation, "Bollinger band calculation failed", err)
		}

		if !tracker.Holding() && closes[i] < lower {
			tracker.Open(i, closes[i])
		} else if tracker.Holding() && closes[i] > upper {
			tracker.Close(i, closes[i])
		}
	}

	return tracker.Result(s.Name()), nil
}

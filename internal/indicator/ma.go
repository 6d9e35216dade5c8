package indicator

import (
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// SMA implements the simple (arithmetic) moving average.
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator with default configuration.
func NewSMA() Indicator {
	return &SMA{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (s *SMA) Name() types.IndicatorType {
	return types.IndicatorTypeSMA
}

// Config configures the SMA indicator. Expected parameters: period (int).
func (s *SMA) Config(params ...any) error {
	if len(params) != 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	s.period = period

	return nil
}

// RawValue computes the mean of closes[i-period+1 .. i].
// Expected parameters: closes ([]float64), index (int).
func (s *SMA) RawValue(params ...any) (float64, error) {
	closes, i, err := closesAndIndex(params)
	if err != nil {
		return 0, err
	}

	if err := validateWindow(s.Name(), closes, i, s.period); err != nil {
		return 0, err
	}

	sum := 0.0
	for j := i - s.period + 1; j <= i; j++ {
		sum += closes[j]
	}

	return sum / float64(s.period), nil
}

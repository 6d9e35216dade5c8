package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// EMA implements the exponential moving average recursion
//
//	ema[i] = closes[i]*k + prev*(1-k), k = 2/(period+1)
//
// The recursion needs a seed: callers pass the previous EMA value, or
// None to seed with the raw close at the current bar.
type EMA struct {
	period int
}

// NewEMA creates a new EMA indicator with default configuration.
func NewEMA() Indicator {
	return &EMA{
		period: 12, // Default period
	}
}

// Name returns the name of the indicator.
func (e *EMA) Name() types.IndicatorType {
	return types.IndicatorTypeEMA
}

// Config configures the EMA indicator. Expected parameters: period (int).
func (e *EMA) Config(params ...any) error {
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

	e.period = period

	return nil
}

// RawValue advances the EMA recursion by one bar. Expected parameters:
// closes ([]float64), index (int), prev (optional.Option[float64]).
func (e *EMA) RawValue(params ...any) (float64, error) {
	closes, i, err := closesAndIndex(params)
	if err != nil {
		return 0, err
	}

	prev := optional.None[float64]()

	if len(params) >= 3 {
		p, ok := params[2].(optional.Option[float64])
		if !ok {
			return 0, errors.New(errors.ErrCodeInvalidType, "third parameter must be of type optional.Option[float64] (previous EMA)")
		}

		prev = p
	}

	return e.Step(closes[i], prev), nil
}

// Step computes one EMA recursion step from the current close and the
// previous EMA value. A None seed returns the close unchanged, which is
// how the first in-window value is seeded.
func (e *EMA) Step(close float64, prev optional.Option[float64]) float64 {
	if prev.IsNone() {
		return close
	}

	k := 2.0 / float64(e.period+1)

	return close*k + prev.Unwrap()*(1-k)
}

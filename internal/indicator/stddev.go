package indicator

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// StdDev implements the population standard deviation over the same
// trailing window as SMA (divides by period, not period-1).
type StdDev struct {
	period int
}

// NewStdDev creates a new StdDev indicator with default configuration.
func NewStdDev() Indicator {
	return &StdDev{
		period: 20, // Default period
	}
}

// Name returns the name of the indicator.
func (s *StdDev) Name() types.IndicatorType {
	return types.IndicatorTypeStdDev
}

// Config configures the StdDev indicator. Expected parameters: period (int).
func (s *StdDev) Config(params ...any) error {
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

// RawValue computes the population standard deviation of
// closes[i-period+1 .. i]. Expected parameters: closes ([]float64),
// index (int), and optionally a precomputed window mean
// (optional.Option[float64]); when absent the mean is computed here.
func (s *StdDev) RawValue(params ...any) (float64, error) {
	closes, i, err := closesAndIndex(params)
	if err != nil {
		return 0, err
	}

	if err := validateWindow(s.Name(), closes, i, s.period); err != nil {
		return 0, err
	}

	mean := optional.None[float64]()

	if len(params) >= 3 {
		m, ok := params[2].(optional.Option[float64])
		if !ok {
			return 0, errors.New(errors.ErrCodeInvalidType, "third parameter must be of type optional.Option[float64] (mean)")
		}

		mean = m
	}

	center := mean.TakeOr(0)

	if mean.IsNone() {
		sum := 0.0
		for j := i - s.period + 1; j <= i; j++ {
			sum += closes[j]
		}

		center = sum / float64(s.period)
	}

	squaredDiffSum := 0.0

	for j := i - s.period + 1; j <= i; j++ {
		diff := closes[j] - center
		squaredDiffSum += diff * diff
	}

	return math.Sqrt(squaredDiffSum / float64(s.period)), nil
}

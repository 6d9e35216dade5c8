package indicator

import (
	"math"

	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// BollingerBands implements the Indicator interface for Bollinger Bands.
type BollingerBands struct {
	period int     // Number of bars for the moving average
	stdDev float64 // Band width in standard deviations
}

// NewBollingerBands creates a new Bollinger Bands indicator with default configuration.
func NewBollingerBands() Indicator {
	return &BollingerBands{
		period: 20,  // Default period
		stdDev: 2.0, // Default band width
	}
}

// Name returns the name of the indicator.
func (bb *BollingerBands) Name() types.IndicatorType {
	return types.IndicatorTypeBollingerBands
}

// Config configures the Bollinger Bands indicator. Expected parameters: period (int), stdDev (float64).
func (bb *BollingerBands) Config(params ...any) error {
	if len(params) != 2 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 2 parameters: period (int), stdDev (float64)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	stdDev, ok := params[1].(float64)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for stdDev parameter, expected float64")
	}

	if stdDev <= 0 {
		return errors.Newf(errors.ErrCodeInvalidBandWidth, "stdDev must be a positive number, got %f", stdDev)
	}

	bb.period = period
	bb.stdDev = stdDev

	return nil
}

// RawValue returns the middle band (the window SMA) at bar i.
// Expected parameters: closes ([]float64), index (int).
func (bb *BollingerBands) RawValue(params ...any) (float64, error) {
	closes, i, err := closesAndIndex(params)
	if err != nil {
		return 0, err
	}

	_, middle, _, err := bb.Bands(closes, i)
	if err != nil {
		return 0, err
	}

	return middle, nil
}

// Bands calculates the upper, middle and lower band at bar i over the
// trailing window closes[i-period+1 .. i].
func (bb *BollingerBands) Bands(closes []float64, i int) (upper, middle, lower float64, err error) {
	if i < 0 || i >= len(closes) {
		return 0, 0, 0, errors.Newf(errors.ErrCodeInvalidParameter, "bar index %d out of range for series of length %d", i, len(closes))
	}

	if err := validateWindow(bb.Name(), closes, i, bb.period); err != nil {
		return 0, 0, 0, err
	}

	// Middle band: window SMA
	sum := 0.0
	for j := i - bb.period + 1; j <= i; j++ {
		sum += closes[j]
	}

	middle = sum / float64(bb.period)

	// Population standard deviation over the same window
	squaredDiffSum := 0.0

	for j := i - bb.period + 1; j <= i; j++ {
		diff := closes[j] - middle
		squaredDiffSum += diff * diff
	}

	stdDev := math.Sqrt(squaredDiffSum / float64(bb.period))

	upper = middle + (bb.stdDev * stdDev)
	lower = middle - (bb.stdDev * stdDev)

	return upper, middle, lower, nil
}

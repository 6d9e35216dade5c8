// Package indicator implements the rolling-window computations the
// strategy engines are built on: simple and exponential moving
// averages, relative strength index, population standard deviation,
// Bollinger bands and the MACD line pair.
//
// Every indicator operates on a closing-price slice and a 0-based bar
// index. Window bounds are validated up front; an index without enough
// history yields a typed InsufficientDataError instead of a silent
// sentinel, with the single exception of RSI which returns its
// documented neutral 50.0 warm-up value.
package indicator

import (
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// Indicator defines the methods every technical indicator implements.
type Indicator interface {
	// Name returns the name of the indicator
	Name() types.IndicatorType
	// Config configures the indicator with positional parameters
	Config(params ...any) error
	// RawValue computes the indicator value; parameters are
	// indicator-specific but always start with the closing-price slice
	// and the bar index
	RawValue(params ...any) (float64, error)
}

// closesAndIndex extracts the leading (closes []float64, i int)
// parameters shared by every RawValue implementation.
func closesAndIndex(params []any) ([]float64, int, error) {
	if len(params) < 2 {
		return nil, 0, errors.New(errors.ErrCodeMissingParameter, "RawValue requires at least 2 parameters: closes ([]float64), index (int)")
	}

	closes, ok := params[0].([]float64)
	if !ok {
		return nil, 0, errors.New(errors.ErrCodeInvalidType, "first parameter must be of type []float64 (closes)")
	}

	index, ok := params[1].(int)
	if !ok {
		return nil, 0, errors.New(errors.ErrCodeInvalidType, "second parameter must be of type int (bar index)")
	}

	if index < 0 || index >= len(closes) {
		return nil, 0, errors.Newf(errors.ErrCodeInvalidParameter, "bar index %d out of range for series of length %d", index, len(closes))
	}

	return closes, index, nil
}

// validateWindow checks that bar i has period bars of history behind it
// (inclusive of i itself).
func validateWindow(name types.IndicatorType, closes []float64, i, period int) error {
	if i < period-1 {
		return errors.NewInsufficientDataErrorf(period, i+1, string(name),
			"insufficient history for %s at bar %d: window of %d needs bars %d..%d", name, i, period, i-period+1, i)
	}

	return nil
}

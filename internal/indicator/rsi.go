package indicator

import (
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// RSIMode selects how an all-gains window (zero summed losses) is
// scored.
type RSIMode string

const (
	// RSIModeCompat reproduces the reference formula: rs collapses to 0
	// when the window has no losses, yielding RSI 0 instead of the
	// conventional 100. Kept as the default so results match the
	// reference bit-for-bit.
	RSIModeCompat RSIMode = "compat"
	// RSIModeClassic scores an all-gains window as 100.
	RSIModeClassic RSIMode = "classic"
)

// NeutralRSI is the warm-up sentinel returned for bars without enough
// history. Callers must treat it as "no decision", not as a genuine
// midpoint reading.
const NeutralRSI = 50.0

// RSI implements the relative strength index over a fixed window of
// summed gains and losses.
type RSI struct {
	period int
	mode   RSIMode
}

// NewRSI creates a new RSI indicator with default configuration.
func NewRSI() Indicator {
	return &RSI{
		period: 14, // Default period
		mode:   RSIModeCompat,
	}
}

// Name returns the name of the indicator.
func (r *RSI) Name() types.IndicatorType {
	return types.IndicatorTypeRSI
}

// Config configures the RSI indicator. Expected parameters: period
// (int), and optionally mode (RSIMode).
func (r *RSI) Config(params ...any) error {
	if len(params) < 1 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects at least 1 parameter: period (int)")
	}

	period, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for period parameter, expected int")
	}

	if period <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "period must be a positive integer, got %d", period)
	}

	r.period = period

	if len(params) >= 2 {
		mode, ok := params[1].(RSIMode)
		if !ok {
			return errors.New(errors.ErrCodeInvalidType, "invalid type for mode parameter, expected RSIMode")
		}

		switch mode {
		case RSIModeCompat, RSIModeClassic:
			r.mode = mode
		default:
			return errors.Newf(errors.ErrCodeInvalidParameter, "unknown RSI mode %q", mode)
		}
	}

	return nil
}

// RawValue computes the RSI over the window [i-period+1, i], with
// deltas reaching back to bar i-period. Bars with insufficient history
// return the NeutralRSI sentinel. Expected parameters: closes
// ([]float64), index (int).
func (r *RSI) RawValue(params ...any) (float64, error) {
	closes, i, err := closesAndIndex(params)
	if err != nil {
		return 0, err
	}

	// The first delta reads closes[i-period], so the warm-up threshold
	// is period, not period-1.
	if i < r.period {
		return NeutralRSI, nil
	}

	gain := 0.0
	loss := 0.0

	for j := i - r.period + 1; j <= i; j++ {
		change := closes[j] - closes[j-1]
		if change > 0 {
			gain += change
		} else {
			loss -= change
		}
	}

	if loss == 0 && r.mode == RSIModeClassic {
		return 100.0, nil
	}

	// Reference behavior: rs falls back to 0 when the window has no
	// losses, so the result collapses to 0 instead of 100.
	rs := 0.0
	if loss != 0 {
		rs = gain / loss
	}

	return 100.0 - (100.0 / (1.0 + rs)), nil
}

package indicator

import (
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// MACD represents the Moving Average Convergence Divergence indicator.
//
// The MACD line is the difference between an incrementally built fast
// and slow EMA, computed for bars slowPeriod..N-1 and indexed from 0 at
// bar slowPeriod. The signal line is an EMA of the MACD line seeded
// with its first value.
type MACD struct {
	fastPeriod   int
	slowPeriod   int
	signalPeriod int
}

// NewMACD creates a new MACD indicator with default configuration.
func NewMACD() Indicator {
	return &MACD{
		fastPeriod:   12, // Default fast period
		slowPeriod:   26, // Default slow period
		signalPeriod: 9,  // Default signal period
	}
}

// Name returns the name of the indicator.
func (m *MACD) Name() types.IndicatorType {
	return types.IndicatorTypeMACD
}

// Config configures the MACD indicator. Expected parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int).
func (m *MACD) Config(params ...any) error {
	if len(params) != 3 {
		return errors.New(errors.ErrCodeMissingParameter, "Config expects 3 parameters: fastPeriod (int), slowPeriod (int), signalPeriod (int)")
	}

	fastPeriod, ok := params[0].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for fastPeriod parameter, expected int")
	}

	if fastPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod must be a positive integer, got %d", fastPeriod)
	}

	slowPeriod, ok := params[1].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for slowPeriod parameter, expected int")
	}

	if slowPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "slowPeriod must be a positive integer, got %d", slowPeriod)
	}

	signalPeriod, ok := params[2].(int)
	if !ok {
		return errors.New(errors.ErrCodeInvalidType, "invalid type for signalPeriod parameter, expected int")
	}

	if signalPeriod <= 0 {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "signalPeriod must be a positive integer, got %d", signalPeriod)
	}

	if fastPeriod >= slowPeriod {
		return errors.Newf(errors.ErrCodeInvalidPeriod, "fastPeriod %d must be smaller than slowPeriod %d", fastPeriod, slowPeriod)
	}

	m.fastPeriod = fastPeriod
	m.slowPeriod = slowPeriod
	m.signalPeriod = signalPeriod

	return nil
}

// SlowPeriod returns the configured slow period, which is also the
// minimum series length for Lines.
func (m *MACD) SlowPeriod() int {
	return m.slowPeriod
}

// RawValue returns the MACD line value at absolute bar i.
// Expected parameters: closes ([]float64), index (int).
func (m *MACD) RawValue(params ...any) (float64, error) {
	closes, i, err := closesAndIndex(params)
	if err != nil {
		return 0, err
	}

	if i < m.slowPeriod {
		return 0, errors.NewInsufficientDataErrorf(m.slowPeriod+1, i+1, string(m.Name()),
			"insufficient history for %s at bar %d: MACD line starts at bar %d", m.Name(), i, m.slowPeriod)
	}

	macdLine, _, err := m.Lines(closes)
	if err != nil {
		return 0, err
	}

	return macdLine[i-m.slowPeriod], nil
}

// Lines builds the MACD line and its signal line for the full series.
// macdLine[k] and signalLine[k] belong to absolute bar k+slowPeriod.
// The fast and slow EMAs are seeded with the raw closes at bars
// fastPeriod-1 and slowPeriod-1, and the signal line is seeded with the
// first MACD value, matching the reference construction.
func (m *MACD) Lines(closes []float64) (macdLine, signalLine []float64, err error) {
	if len(closes) < m.slowPeriod {
		return nil, nil, errors.NewInsufficientDataErrorf(m.slowPeriod, len(closes), string(m.Name()),
			"insufficient data for %s: EMA seeds need %d bars, got %d", m.Name(), m.slowPeriod, len(closes))
	}

	fastEMA := &EMA{period: m.fastPeriod}
	slowEMA := &EMA{period: m.slowPeriod}

	fast := closes[m.fastPeriod-1]
	slow := closes[m.slowPeriod-1]

	macdLine = make([]float64, 0, len(closes)-m.slowPeriod)
	for i := m.slowPeriod; i < len(closes); i++ {
		fast = fastEMA.Step(closes[i], optional.Some(fast))
		slow = slowEMA.Step(closes[i], optional.Some(slow))
		macdLine = append(macdLine, fast-slow)
	}

	if len(macdLine) == 0 {
		return macdLine, nil, nil
	}

	signalEMA := &EMA{period: m.signalPeriod}

	signalLine = make([]float64, 0, len(macdLine))
	signalLine = append(signalLine, macdLine[0])

	for i := 1; i < len(macdLine); i++ {
		signalLine = append(signalLine, signalEMA.Step(macdLine[i], optional.Some(signalLine[i-1])))
	}

	return macdLine, signalLine, nil
}

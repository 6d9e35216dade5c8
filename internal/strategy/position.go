package strategy

import (
	"github.com/rxtech-lab/signalbench/internal/types"
)

// PositionState is the state of the single-position trade machine.
type PositionState string

const (
	// PositionStateFlat means no position is open
	PositionStateFlat PositionState = "flat"
	// PositionStateLong means one long position is open
	PositionStateLong PositionState = "long"
)

// RoundTrip is one completed buy-then-sell trade.
type RoundTrip struct {
	EntryBar   int
	ExitBar    int
	EntryPrice float64
	ExitPrice  float64
	// Return is (ExitPrice - EntryPrice) / EntryPrice
	Return float64
}

// Tracker drives the long-only, single-position state machine shared by
// every strategy engine and accumulates trade outcomes. Transitions:
//
//	Flat --Open--> Long   records the entry price, marks Buy
//	Long --Close--> Flat  scores the trade, marks Sell
//
// A Tracker is created per evaluation and never reused, so strategy
// runs stay pure functions of their inputs.
type Tracker struct {
	state       PositionState
	entryBar    int
	entryPrice  float64
	threshold   float64
	trades      int
	profitable  int
	totalReturn float64
	trips       []RoundTrip
	track       types.SignalTrack
}

// NewTracker creates a tracker for a series of the given length using
// the profitability threshold to score closed trades.
func NewTracker(length int, threshold float64) *Tracker {
	return &Tracker{
		state:     PositionStateFlat,
		threshold: threshold,
		track:     types.NewSignalTrack(length),
	}
}

// Holding reports whether a position is currently open.
func (t *Tracker) Holding() bool {
	return t.state == PositionStateLong
}

// Open transitions Flat -> Long at the given bar. Opening while a
// position is already held is ignored, preserving the single-position
// invariant.
func (t *Tracker) Open(bar int, price float64) {
	if t.state != PositionStateFlat {
		return
	}

	t.state = PositionStateLong
	t.entryBar = bar
	t.entryPrice = price
	t.track[bar] = types.SignalTypeBuy
}

// Close transitions Long -> Flat at the given bar, scoring the
// completed round trip. Closing without an open position is ignored.
func (t *Tracker) Close(bar int, price float64) {
	if t.state != PositionStateLong {
		return
	}

	ret := (price - t.entryPrice) / t.entryPrice

	t.totalReturn += ret
	t.trades++

	if ret > t.threshold {
		t.profitable++
	}

	t.trips = append(t.trips, RoundTrip{
		EntryBar:   t.entryBar,
		ExitBar:    bar,
		EntryPrice: t.entryPrice,
		ExitPrice:  price,
		Return:     ret,
	})

	t.state = PositionStateFlat
	t.entryPrice = 0
	t.track[bar] = types.SignalTypeSell
}

// RoundTrips returns the completed trades in execution order. A
// position still open when the series ends is not included.
func (t *Tracker) RoundTrips() []RoundTrip {
	return t.trips
}

// Result summarizes the completed trades. A dangling Long at series end
// is discarded: its Buy signal stays on the track but contributes to no
// statistic.
func (t *Tracker) Result(strategyName string) types.TradeResult {
	result := types.TradeResult{
		StrategyName: strategyName,
		TotalTrades:  t.trades,
		Signals:      t.track,
	}

	if t.trades > 0 {
		result.SuccessRatePercent = float64(t.profitable) / float64(t.trades) * 100
		result.AvgReturnPercent = t.totalReturn / float64(t.trades) * 100
	}

	return result
}

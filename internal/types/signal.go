package types

import "time"

type SignalType string

const (
	// SignalTypeNone is emitted for bars where a strategy takes no action
	SignalTypeNone SignalType = "none"
	// SignalTypeBuy is emitted when a strategy opens its long position
	SignalTypeBuy SignalType = "buy"
	// SignalTypeSell is emitted when a strategy closes its long position
	SignalTypeSell SignalType = "sell"
)

// Signal is a single trading decision attached to a bar.
type Signal struct {
	// Bar is the index of the bar the signal belongs to
	Bar int
	// Time is the time of the signal
	Time time.Time
	// Type is the type of the signal
	Type SignalType
	// Name is the name of the strategy that generated the signal
	Name string
	// Reason is the reason for the signal
	Reason string
	// Price is the close price at the signal bar
	Price float64
}

// SignalTrack is a per-bar signal sequence aligned 1:1 with the price
// series it was produced from.
type SignalTrack []SignalType

// Count returns the number of entries of the given type in the track.
func (t SignalTrack) Count(signalType SignalType) int {
	count := 0

	for _, s := range t {
		if s == signalType {
			count++
		}
	}

	return count
}

// NewSignalTrack returns a track of the given length with every entry
// set to SignalTypeNone.
func NewSignalTrack(length int) SignalTrack {
	track := make(SignalTrack, length)
	for i := range track {
		track[i] = SignalTypeNone
	}

	return track
}

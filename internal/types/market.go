package types

import "time"

// Candle is a single price observation. The strategy engines only
// consume Close; the remaining OHLCV fields are carried for datasources
// and result artifacts.
type Candle struct {
	Time   time.Time `csv:"time"`
	Open   float64   `csv:"open"`
	High   float64   `csv:"high"`
	Low    float64   `csv:"low"`
	Close  float64   `csv:"close"`
	Volume float64   `csv:"volume"`
}

// ClosePrices extracts the closing-price series from candles,
// preserving bar order.
func ClosePrices(candles []Candle) []float64 {
	closes := make([]float64, len(candles))
	for i, c := range candles {
		closes[i] = c.Close
	}

	return closes
}

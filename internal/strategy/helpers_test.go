package strategy

import (
	"time"

	"github.com/rxtech-lab/signalbench/internal/types"
)

// candlesFromCloses builds a candle series with one bar per close,
// spaced one minute apart.
func candlesFromCloses(closes []float64) []types.Candle {
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)

	candles := make([]types.Candle, len(closes))
	for i, close := range closes {
		candles[i] = types.Candle{
			Time:   start.Add(time.Duration(i) * time.Minute),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 1000,
		}
	}

	return candles
}

// vShapeCloses is a strictly decreasing run long enough to push RSI to
// its floor, followed by a strictly increasing recovery: one full
// oversold/overbought cycle.
func vShapeCloses() []float64 {
	closes := make([]float64, 0, 28)

	for i := 0; i < 16; i++ {
		closes = append(closes, float64(100-i))
	}

	for i := 1; i <= 12; i++ {
		closes = append(closes, float64(84+2*i))
	}

	return closes
}

// triangleCloses is a deterministic triangle wave around 100 with
// period 16 and amplitude 8, long enough for repeated MACD crossovers.
func triangleCloses(length int) []float64 {
	pattern := []float64{0, 2, 4, 6, 8, 6, 4, 2, 0, -2, -4, -6, -8, -6, -4, -2}

	closes := make([]float64, length)
	for i := range closes {
		closes[i] = 100 + pattern[i%len(pattern)]
	}

	return closes
}

// flatCloses is a constant-price series.
func flatCloses(length int) []float64 {
	closes := make([]float64, length)
	for i := range closes {
		closes[i] = 100
	}

	return closes
}

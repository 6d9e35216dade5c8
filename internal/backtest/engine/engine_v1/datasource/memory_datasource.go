package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// MemoryDataSource serves a fixed candle slice. It backs tests and the
// demo mode of the CLI.
type MemoryDataSource struct {
	candles []types.Candle
}

// NewMemoryDataSource creates a data source over the given candles. The
// candles must already be in chronological order.
func NewMemoryDataSource(candles []types.Candle) DataSource {
	return &MemoryDataSource{candles: candles}
}

// NewDemoDataSource returns a data source with a small built-in daily
// series: a shallow dip followed by a steady climb.
func NewDemoDataSource() DataSource {
	closes := []float64{
		100, 101, 102, 98, 96, 94, 92, 93, 95, 97,
		99, 101, 100, 102, 103, 105, 104, 106, 107, 109,
		110, 111, 113, 112, 114, 115, 117, 116,
	}

	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	candles := make([]types.Candle, len(closes))

	for i, close := range closes {
		candles[i] = types.Candle{
			Time:   start.AddDate(0, 0, i),
			Open:   close,
			High:   close,
			Low:    close,
			Close:  close,
			Volume: 10000,
		}
	}

	return NewMemoryDataSource(candles)
}

// Initialize implements DataSource. The candles are provided at
// construction time, so any path is rejected.
func (m *MemoryDataSource) Initialize(path string) error {
	if path != "" {
		return errors.New(errors.ErrCodeDataSourceUnavailable, "memory data source does not load from a path")
	}

	return nil
}

// ReadAll implements DataSource.
func (m *MemoryDataSource) ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Candle, error) {
	result := make([]types.Candle, 0, len(m.candles))

	for _, candle := range m.candles {
		if inRange(candle.Time, start, end) {
			result = append(result, candle)
		}
	}

	return result, nil
}

// Count implements DataSource.
func (m *MemoryDataSource) Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error) {
	count := 0

	for _, candle := range m.candles {
		if inRange(candle.Time, start, end) {
			count++
		}
	}

	return count, nil
}

// Close implements DataSource.
func (m *MemoryDataSource) Close() error {
	return nil
}

func inRange(t time.Time, start optional.Option[time.Time], end optional.Option[time.Time]) bool {
	if start.IsSome() && t.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && t.After(end.Unwrap()) {
		return false
	}

	return true
}

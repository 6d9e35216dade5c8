// Package datasource provides candle sources for the backtest engine.
package datasource

import (
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/signalbench/internal/types"
)

type DataSource interface {
	// Initialize loads market data from the given path. The expected
	// format depends on the implementation.
	Initialize(path string) error
	// ReadAll returns every candle in chronological order, optionally
	// restricted to a time range.
	ReadAll(start optional.Option[time.Time], end optional.Option[time.Time]) ([]types.Candle, error)
	// Count returns the number of candles, optionally restricted to a
	// time range.
	Count(start optional.Option[time.Time], end optional.Option[time.Time]) (int, error)
	// Close releases any resources held by the data source.
	Close() error
}

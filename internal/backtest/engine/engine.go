package engine

import (
	"context"

	"github.com/rxtech-lab/signalbench/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/signalbench/internal/strategy"
	"github.com/rxtech-lab/signalbench/internal/types"
)

// OnStrategyStartCallback is called before a strategy is evaluated.
// Returning an error aborts the run.
type OnStrategyStartCallback func(strategyIndex int, strategyName string, totalStrategies int) error

// OnStrategyEndCallback is called after a strategy finishes, with its result
// or the error that stopped it.
type OnStrategyEndCallback func(strategyIndex int, strategyName string, result types.TradeResult, err error)

// LifecycleCallbacks holds optional hooks invoked during Run.
// Nil fields are skipped.
type LifecycleCallbacks struct {
	OnStrategyStart *OnStrategyStartCallback
	OnStrategyEnd   *OnStrategyEndCallback
}

type Engine interface {
	// Initialize the engine with the given YAML configuration content.
	Initialize(config string) error
	// SetDataSource sets the candle source for the engine.
	SetDataSource(source datasource.DataSource) error
	// LoadStrategy adds a strategy to evaluate. Could be called multiple
	// times. When no strategy is loaded, Run evaluates the built-in set
	// derived from the configuration.
	LoadStrategy(s strategy.Strategy) error
	// SetResultsPath sets the output file for the YAML result report.
	// Empty means no report is written.
	SetResultsPath(path string) error
	// Run evaluates every loaded strategy over the data source in load
	// order and returns one result per strategy. The context can be used
	// to cancel the run between strategies.
	Run(ctx context.Context, callbacks LifecycleCallbacks) ([]types.TradeResult, error)
}

package engine

import (
	"context"

	"github.com/rxtech-lab/signalbench/internal/backtest/engine"
	"github.com/rxtech-lab/signalbench/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/signalbench/internal/indicator"
	"github.com/rxtech-lab/signalbench/internal/logger"
	"github.com/rxtech-lab/signalbench/internal/strategy"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type BacktestEngineV1 struct {
	config            BacktestEngineV1Config
	strategies        []strategy.Strategy
	resultsPath       string
	log               *logger.Logger
	indicatorRegistry indicator.Registry
	state             *BacktestState
	datasource        datasource.DataSource
}

func NewBacktestEngineV1() engine.Engine {
	return &BacktestEngineV1{
		config:            EmptyConfig(),
		strategies:        nil,
		resultsPath:       "",
		log:               nil,
		indicatorRegistry: nil,
		state:             nil,
		datasource:        nil,
	}
}

// Initialize implements engine.Engine.
func (b *BacktestEngineV1) Initialize(config string) error {
	// parse the config
	err := yaml.Unmarshal([]byte(config), &b.config)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "failed to parse engine configuration", err)
	}

	if err := b.config.Validate(); err != nil {
		return err
	}

	// initialize the logger
	var loggerError error

	b.log, loggerError = logger.NewLogger()
	if loggerError != nil {
		return loggerError
	}

	b.log.Debug("Backtest engine initialized",
		zap.String("config", config),
	)

	// initialize the indicator registry
	b.indicatorRegistry = indicator.NewDefaultRegistry()

	// initialize the ledger
	b.state, err = NewBacktestState(b.log)
	if err != nil {
		return err
	}

	if err := b.state.Initialize(); err != nil {
		return err
	}

	return nil
}

// LoadStrategy implements engine.Engine.
func (b *BacktestEngineV1) LoadStrategy(s strategy.Strategy) error {
	b.strategies = append(b.strategies, s)
	b.log.Debug("Strategy loaded",
		zap.String("name", s.Name()),
		zap.Int("total_strategies", len(b.strategies)),
	)

	return nil
}

// SetDataSource implements engine.Engine.
func (b *BacktestEngineV1) SetDataSource(source datasource.DataSource) error {
	b.datasource = source

	return nil
}

// SetResultsPath implements engine.Engine.
func (b *BacktestEngineV1) SetResultsPath(path string) error {
	b.resultsPath = path

	return nil
}

// Run implements engine.Engine. Strategies are evaluated sequentially in
// load order over the same candle series.
func (b *BacktestEngineV1) Run(ctx context.Context, callbacks engine.LifecycleCallbacks) ([]types.TradeResult, error) {
	if b.state == nil {
		return nil, errors.New(errors.ErrCodeBacktestStateNil, "engine is not initialized")
	}

	if b.datasource == nil {
		return nil, errors.New(errors.ErrCodeBacktestNoDatasource, "no data source set")
	}

	strategies := b.strategies
	if len(strategies) == 0 {
		built, err := b.defaultStrategies()
		if err != nil {
			return nil, err
		}

		strategies = built
	}

	candles, err := b.datasource.ReadAll(b.config.StartTime, b.config.EndTime)
	if err != nil {
		return nil, err
	}

	b.log.Info("Starting backtest",
		zap.Int("candles", len(candles)),
		zap.Int("strategies", len(strategies)),
		zap.Float64("threshold", b.config.Threshold),
	)

	bar := progressbar.Default(int64(len(strategies)))
	bar.Describe("Evaluating strategies")

	results := make([]types.TradeResult, 0, len(strategies))

	for i, s := range strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if callbacks.OnStrategyStart != nil {
			if err := (*callbacks.OnStrategyStart)(i, s.Name(), len(strategies)); err != nil {
				return nil, err
			}
		}

		result, err := s.Evaluate(candles, b.config.Threshold)

		if callbacks.OnStrategyEnd != nil {
			(*callbacks.OnStrategyEnd)(i, s.Name(), result, err)
		}

		if err != nil {
			b.log.Error("Strategy evaluation failed",
				zap.String("strategy", s.Name()),
				zap.Error(err),
			)

			return nil, err
		}

		trips := roundTripsFromTrack(result.Signals, candles)
		if err := b.state.RecordRoundTrips(s.Name(), candles, trips); err != nil {
			return nil, err
		}

		results = append(results, result)
		bar.Add(1)
	}

	if b.resultsPath != "" {
		if err := types.WriteTradeResults(b.resultsPath, results); err != nil {
			return nil, err
		}

		b.log.Info("Results written", zap.String("path", b.resultsPath))
	}

	return results, nil
}

// defaultStrategies builds the built-in strategy set from the engine
// configuration.
func (b *BacktestEngineV1) defaultStrategies() ([]strategy.Strategy, error) {
	rsi, err := strategy.NewRSIStrategy(b.config.RSI)
	if err != nil {
		return nil, err
	}

	macd, err := strategy.NewMACDStrategy(b.config.MACD)
	if err != nil {
		return nil, err
	}

	bollinger, err := strategy.NewBollingerStrategy(b.config.Bollinger)
	if err != nil {
		return nil, err
	}

	return []strategy.Strategy{rsi, macd, bollinger}, nil
}

// roundTripsFromTrack rebuilds completed round trips from a signal
// track. An unmatched trailing Buy is skipped, matching how results are
// scored.
func roundTripsFromTrack(track types.SignalTrack, candles []types.Candle) []strategy.RoundTrip {
	var trips []strategy.RoundTrip

	entryBar := -1

	for i, signal := range track {
		switch signal {
		case types.SignalTypeBuy:
			entryBar = i
		case types.SignalTypeSell:
			if entryBar >= 0 {
				entryPrice := candles[entryBar].Close
				exitPrice := candles[i].Close

				trips = append(trips, strategy.RoundTrip{
					EntryBar:   entryBar,
					ExitBar:    i,
					EntryPrice: entryPrice,
					ExitPrice:  exitPrice,
					Return:     (exitPrice - entryPrice) / entryPrice,
				})
				entryBar = -1
			}
		}
	}

	return trips
}

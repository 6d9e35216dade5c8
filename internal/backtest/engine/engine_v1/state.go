package engine

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/rxtech-lab/signalbench/internal/logger"
	"github.com/rxtech-lab/signalbench/internal/strategy"
	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// BacktestState is the trade ledger of a run. Every completed round trip
// is written to an in-memory DuckDB instance so the ledger can be
// inspected with SQL after the run.
type BacktestState struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

func NewBacktestState(logger *logger.Logger) (*BacktestState, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		logger.Error("Failed to open ledger database", zap.Error(err))

		return nil, errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to open ledger database", err)
	}

	return &BacktestState{
		db:     db,
		logger: logger,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Initialize creates the ledger tables.
func (b *BacktestState) Initialize() error {
	_, err := b.db.Exec(`
		CREATE TABLE IF NOT EXISTS orders (
			order_id TEXT PRIMARY KEY,
			strategy_name TEXT,
			side TEXT,
			bar INTEGER,
			price DOUBLE,
			timestamp TIMESTAMP
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to create orders table", err)
	}

	_, err = b.db.Exec(`
		CREATE TABLE IF NOT EXISTS trades (
			trade_id TEXT PRIMARY KEY,
			strategy_name TEXT,
			entry_order_id TEXT,
			exit_order_id TEXT,
			entry_bar INTEGER,
			exit_bar INTEGER,
			entry_price DOUBLE,
			exit_price DOUBLE,
			entry_time TIMESTAMP,
			exit_time TIMESTAMP,
			return_pct DOUBLE
		)
	`)
	if err != nil {
		return errors.Wrap(errors.ErrCodeBacktestInitFailed, "failed to create trades table", err)
	}

	return nil
}

// RecordRoundTrips writes the completed round trips of one strategy run
// to the ledger. The candles are the series the strategy was evaluated
// on; they supply the timestamps.
func (b *BacktestState) RecordRoundTrips(strategyName string, candles []types.Candle, trips []strategy.RoundTrip) error {
	for _, trip := range trips {
		if trip.EntryBar < 0 || trip.ExitBar >= len(candles) {
			return errors.Newf(errors.ErrCodeLedgerWriteFailed, "round trip bars [%d, %d] outside candle range", trip.EntryBar, trip.ExitBar)
		}

		tx, err := b.db.Begin()
		if err != nil {
			return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to begin transaction", err)
		}

		entryOrderID := uuid.New().String()
		exitOrderID := uuid.New().String()

		insertOrders := b.sq.
			Insert("orders").
			Columns("order_id", "strategy_name", "side", "bar", "price", "timestamp").
			Values(entryOrderID, strategyName, "buy", trip.EntryBar, trip.EntryPrice, candles[trip.EntryBar].Time).
			Values(exitOrderID, strategyName, "sell", trip.ExitBar, trip.ExitPrice, candles[trip.ExitBar].Time).
			RunWith(tx)

		if _, err := insertOrders.Exec(); err != nil {
			tx.Rollback()

			return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to insert orders", err)
		}

		// Recompute the return with decimal arithmetic for the ledger
		entryDec := decimal.NewFromFloat(trip.EntryPrice)
		exitDec := decimal.NewFromFloat(trip.ExitPrice)
		returnPct, _ := exitDec.Sub(entryDec).Div(entryDec).Mul(decimal.NewFromInt(100)).Float64()

		insertTrade := b.sq.
			Insert("trades").
			Columns(
				"trade_id", "strategy_name", "entry_order_id", "exit_order_id",
				"entry_bar", "exit_bar", "entry_price", "exit_price",
				"entry_time", "exit_time", "return_pct",
			).
			Values(
				uuid.New().String(), strategyName, entryOrderID, exitOrderID,
				trip.EntryBar, trip.ExitBar, trip.EntryPrice, trip.ExitPrice,
				candles[trip.EntryBar].Time, candles[trip.ExitBar].Time, returnPct,
			).
			RunWith(tx)

		if _, err := insertTrade.Exec(); err != nil {
			tx.Rollback()

			return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to insert trade", err)
		}

		if err := tx.Commit(); err != nil {
			return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to commit transaction", err)
		}
	}

	b.logger.Debug("Recorded round trips",
		zap.String("strategy", strategyName),
		zap.Int("count", len(trips)),
	)

	return nil
}

// LedgerStats summarizes the ledger rows of one strategy.
type LedgerStats struct {
	TotalOrders      int
	TotalTrades      int
	AvgReturnPercent float64
}

// Stats returns the ledger summary for a strategy.
func (b *BacktestState) Stats(strategyName string) (LedgerStats, error) {
	var stats LedgerStats

	query, args, err := b.sq.
		Select("COUNT(*)").
		From("orders").
		Where(squirrel.Eq{"strategy_name": strategyName}).
		ToSql()
	if err != nil {
		return stats, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build orders query", err)
	}

	if err := b.db.QueryRow(query, args...).Scan(&stats.TotalOrders); err != nil {
		return stats, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count orders", err)
	}

	query, args, err = b.sq.
		Select("COUNT(*)", "COALESCE(AVG(return_pct), 0)").
		From("trades").
		Where(squirrel.Eq{"strategy_name": strategyName}).
		ToSql()
	if err != nil {
		return stats, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build trades query", err)
	}

	if err := b.db.QueryRow(query, args...).Scan(&stats.TotalTrades, &stats.AvgReturnPercent); err != nil {
		return stats, errors.Wrap(errors.ErrCodeQueryFailed, "failed to aggregate trades", err)
	}

	return stats, nil
}

// Cleanup removes all ledger rows while keeping the tables.
func (b *BacktestState) Cleanup() error {
	if _, err := b.db.Exec(`DELETE FROM trades`); err != nil {
		return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to clear trades", err)
	}

	if _, err := b.db.Exec(`DELETE FROM orders`); err != nil {
		return errors.Wrap(errors.ErrCodeLedgerWriteFailed, "failed to clear orders", err)
	}

	return nil
}

// Close releases the ledger database.
func (b *BacktestState) Close() error {
	if b.db != nil {
		return b.db.Close()
	}

	return nil
}

package strategy

import (
	"testing"

	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type MACDStrategyTestSuite struct {
	suite.Suite
	strategy Strategy
}

func TestMACDStrategySuite(t *testing.T) {
	suite.Run(t, new(MACDStrategyTestSuite))
}

func (suite *MACDStrategyTestSuite) SetupTest() {
	strategy, err := NewMACDStrategy(DefaultMACDStrategyConfig())
	suite.Require().NoError(err)
	suite.strategy = strategy
}

func (suite *MACDStrategyTestSuite) TestName() {
	suite.Equal("macd", suite.strategy.Name())
}

func (suite *MACDStrategyTestSuite) TestMinBars() {
	suite.Equal(26, suite.strategy.MinBars())
}

func (suite *MACDStrategyTestSuite) TestCrossoverCycle() {
	// A triangle wave produces repeated bullish and bearish crossovers
	// once the EMAs settle.
	candles := candlesFromCloses(triangleCloses(80))

	result, err := suite.strategy.Evaluate(candles, 0.01)
	suite.Require().NoError(err)

	suite.Equal(2, result.TotalTrades)
	suite.Zero(result.SuccessRatePercent)
	suite.InDelta(-3.9215686, result.AvgReturnPercent, 1e-6)
	suite.Equal(types.SignalTypeBuy, result.Signals[49])
	suite.Equal(types.SignalTypeSell, result.Signals[57])
	suite.Equal(types.SignalTypeBuy, result.Signals[65])
	suite.Equal(types.SignalTypeSell, result.Signals[73])
	suite.Equal(2, result.Signals.Count(types.SignalTypeBuy))
	suite.Equal(2, result.Signals.Count(types.SignalTypeSell))
}

func (suite *MACDStrategyTestSuite) TestSignalTrackInvariant() {
	candles := candlesFromCloses(triangleCloses(80))

	result, err := suite.strategy.Evaluate(candles, 0.01)
	suite.Require().NoError(err)

	sells := result.Signals.Count(types.SignalTypeSell)
	buys := result.Signals.Count(types.SignalTypeBuy)

	suite.Equal(result.TotalTrades, sells)
	suite.GreaterOrEqual(buys, sells)
	suite.LessOrEqual(buys, sells+1)
	suite.Len(result.Signals, len(candles))
}

func (suite *MACDStrategyTestSuite) TestInsufficientData() {
	// 25 bars: the slow EMA seed at bar 25 does not exist
	candles := candlesFromCloses(flatCloses(25))

	_, err := suite.strategy.Evaluate(candles, 0.01)
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))

	var insufficientErr *errors.InsufficientDataError
	suite.Require().True(errors.As(err, &insufficientErr))
	suite.Equal(26, insufficientErr.Required)
	suite.Equal(25, insufficientErr.Actual)
}

func (suite *MACDStrategyTestSuite) TestExactMinimumLengthProducesNoTrades() {
	candles := candlesFromCloses(flatCloses(26))

	result, err := suite.strategy.Evaluate(candles, 0.01)
	suite.NoError(err)
	suite.Zero(result.TotalTrades)
	suite.Len(result.Signals, 26)
}

func (suite *MACDStrategyTestSuite) TestNoCrossoversOnDemoSeries() {
	closes := []float64{100, 101, 102, 98, 96, 94, 92, 93, 95, 97, 99, 101, 100, 102, 103, 105, 104, 106, 107, 109, 110, 111, 113, 112, 114, 115, 117, 116}

	result, err := suite.strategy.Evaluate(candlesFromCloses(closes), 0.01)
	suite.Require().NoError(err)
	suite.Zero(result.TotalTrades)
}

func (suite *MACDStrategyTestSuite) TestIdempotence() {
	candles := candlesFromCloses(triangleCloses(80))

	first, err := suite.strategy.Evaluate(candles, 0.01)
	suite.Require().NoError(err)

	second, err := suite.strategy.Evaluate(candles, 0.01)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *MACDStrategyTestSuite) TestInvalidConfig() {
	config := DefaultMACDStrategyConfig()
	config.FastPeriod = 26
	config.SlowPeriod = 12

	_, err := NewMACDStrategy(config)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeStrategyConfigError))
}

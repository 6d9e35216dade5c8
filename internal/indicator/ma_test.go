package indicator

import (
	"testing"

	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type SMATestSuite struct {
	suite.Suite
}

func TestSMASuite(t *testing.T) {
	suite.Run(t, new(SMATestSuite))
}

func (suite *SMATestSuite) TestNewSMA() {
	sma := NewSMA()
	suite.NotNil(sma)

	// Cast to *SMA to check default values
	smaImpl := sma.(*SMA)
	suite.Equal(20, smaImpl.period)
}

func (suite *SMATestSuite) TestName() {
	sma := NewSMA()
	suite.Equal(types.IndicatorTypeSMA, sma.Name())
}

func (suite *SMATestSuite) TestConfigValid() {
	sma := NewSMA()
	smaImpl := sma.(*SMA)

	err := sma.Config(10)
	suite.NoError(err)
	suite.Equal(10, smaImpl.period)
}

func (suite *SMATestSuite) TestConfigInvalidParamCount() {
	sma := NewSMA()

	err := sma.Config()
	suite.Error(err)
	suite.Contains(err.Error(), "expects 1 parameter")

	err = sma.Config(10, 20)
	suite.Error(err)
}

func (suite *SMATestSuite) TestConfigInvalidPeriodType() {
	sma := NewSMA()
	err := sma.Config("invalid")
	suite.Error(err)
	suite.Contains(err.Error(), "invalid type for period")
}

func (suite *SMATestSuite) TestConfigNonPositivePeriod() {
	sma := NewSMA()

	err := sma.Config(0)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPeriod))

	err = sma.Config(-5)
	suite.Error(err)
}

func (suite *SMATestSuite) TestRawValue() {
	sma := NewSMA()
	suite.Require().NoError(sma.Config(3))

	closes := []float64{1, 2, 3, 4, 5}

	value, err := sma.RawValue(closes, 4)
	suite.NoError(err)
	suite.InDelta(4.0, value, 1e-9)

	value, err = sma.RawValue(closes, 2)
	suite.NoError(err)
	suite.InDelta(2.0, value, 1e-9)
}

func (suite *SMATestSuite) TestRawValueInsufficientHistory() {
	sma := NewSMA()
	suite.Require().NoError(sma.Config(3))

	closes := []float64{1, 2, 3, 4, 5}

	_, err := sma.RawValue(closes, 1)
	suite.Error(err)
	suite.True(errors.IsInsufficientDataError(err))
}

func (suite *SMATestSuite) TestRawValueIndexOutOfRange() {
	sma := NewSMA()
	suite.Require().NoError(sma.Config(3))

	closes := []float64{1, 2, 3}

	_, err := sma.RawValue(closes, 3)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	_, err = sma.RawValue(closes, -1)
	suite.Error(err)
}

func (suite *SMATestSuite) TestRawValueMissingParams() {
	sma := NewSMA()

	_, err := sma.RawValue([]float64{1, 2, 3})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeMissingParameter))

	_, err = sma.RawValue("closes", 2)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidType))
}

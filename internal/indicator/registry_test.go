package indicator

import (
	"testing"

	"github.com/rxtech-lab/signalbench/internal/types"
	"github.com/rxtech-lab/signalbench/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	registry Registry
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (suite *RegistryTestSuite) SetupTest() {
	suite.registry = NewRegistry()
}

func (suite *RegistryTestSuite) TestRegisterAndGet() {
	suite.NoError(suite.registry.RegisterIndicator(NewRSI()))

	indicator, err := suite.registry.GetIndicator(types.IndicatorTypeRSI)
	suite.NoError(err)
	suite.Equal(types.IndicatorTypeRSI, indicator.Name())
}

func (suite *RegistryTestSuite) TestRegisterDuplicate() {
	suite.NoError(suite.registry.RegisterIndicator(NewRSI()))

	err := suite.registry.RegisterIndicator(NewRSI())
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorAlreadyExists))
}

func (suite *RegistryTestSuite) TestGetUnknown() {
	_, err := suite.registry.GetIndicator(types.IndicatorTypeMACD)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestListIndicators() {
	suite.NoError(suite.registry.RegisterIndicator(NewSMA()))
	suite.NoError(suite.registry.RegisterIndicator(NewEMA()))

	names := suite.registry.ListIndicators()
	suite.Len(names, 2)
	suite.Contains(names, types.IndicatorTypeSMA)
	suite.Contains(names, types.IndicatorTypeEMA)
}

func (suite *RegistryTestSuite) TestRemoveIndicator() {
	suite.NoError(suite.registry.RegisterIndicator(NewSMA()))
	suite.NoError(suite.registry.RemoveIndicator(types.IndicatorTypeSMA))

	_, err := suite.registry.GetIndicator(types.IndicatorTypeSMA)
	suite.Error(err)

	err = suite.registry.RemoveIndicator(types.IndicatorTypeSMA)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeIndicatorNotFound))
}

func (suite *RegistryTestSuite) TestNewDefaultRegistry() {
	registry := NewDefaultRegistry()

	names := registry.ListIndicators()
	suite.Len(names, 6)

	for _, name := range []types.IndicatorType{
		types.IndicatorTypeSMA,
		types.IndicatorTypeEMA,
		types.IndicatorTypeRSI,
		types.IndicatorTypeStdDev,
		types.IndicatorTypeBollingerBands,
		types.IndicatorTypeMACD,
	} {
		suite.Contains(names, name)
	}
}

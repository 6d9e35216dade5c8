package engine

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/signalbench/internal/strategy"
	"github.com/rxtech-lab/signalbench/pkg/errors"
)

// DefaultThreshold is the minimum per-trade return that counts as a
// success when the configuration does not override it.
const DefaultThreshold = 0.01

type BacktestEngineV1Config struct {
	// Threshold is the per-trade return a round trip must exceed to be
	// counted as successful.
	Threshold float64                          `yaml:"threshold" validate:"gte=0"`
	StartTime optional.Option[time.Time]       `yaml:"start_time"`
	EndTime   optional.Option[time.Time]       `yaml:"end_time"`
	RSI       strategy.RSIStrategyConfig       `yaml:"rsi"`
	MACD      strategy.MACDStrategyConfig      `yaml:"macd"`
	Bollinger strategy.BollingerStrategyConfig `yaml:"bollinger"`
}

// UnmarshalYAML implements custom unmarshaling for BacktestEngineV1Config.
// Missing sections fall back to the reference defaults instead of zero
// values.
func (c *BacktestEngineV1Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type Config struct {
		Threshold *float64                          `yaml:"threshold"`
		StartTime *time.Time                        `yaml:"start_time"`
		EndTime   *time.Time                        `yaml:"end_time"`
		RSI       *strategy.RSIStrategyConfig       `yaml:"rsi"`
		MACD      *strategy.MACDStrategyConfig      `yaml:"macd"`
		Bollinger *strategy.BollingerStrategyConfig `yaml:"bollinger"`
	}

	var config Config
	if err := unmarshal(&config); err != nil {
		return err
	}

	*c = EmptyConfig()

	if config.Threshold != nil {
		c.Threshold = *config.Threshold
	}

	if config.StartTime != nil {
		c.StartTime = optional.Some(*config.StartTime)
	}

	if config.EndTime != nil {
		c.EndTime = optional.Some(*config.EndTime)
	}

	if config.RSI != nil {
		c.RSI = *config.RSI
	}

	if config.MACD != nil {
		c.MACD = *config.MACD
	}

	if config.Bollinger != nil {
		c.Bollinger = *config.Bollinger
	}

	return nil
}

// Validate checks the configuration against its struct tags.
func (c *BacktestEngineV1Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeBacktestConfigError, "invalid engine configuration", err)
	}

	return nil
}

// EmptyConfig returns a BacktestEngineV1Config with the reference
// defaults.
func EmptyConfig() BacktestEngineV1Config {
	return BacktestEngineV1Config{
		Threshold: DefaultThreshold,
		StartTime: optional.None[time.Time](),
		EndTime:   optional.None[time.Time](),
		RSI:       strategy.DefaultRSIStrategyConfig(),
		MACD:      strategy.DefaultMACDStrategyConfig(),
		Bollinger: strategy.DefaultBollingerStrategyConfig(),
	}
}

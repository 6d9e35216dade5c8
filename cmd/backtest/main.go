package main

import (
	"context"
	"fmt"
	"log"
	"os"

	backtest "github.com/rxtech-lab/signalbench/internal/backtest/engine"
	engine "github.com/rxtech-lab/signalbench/internal/backtest/engine/engine_v1"
	"github.com/rxtech-lab/signalbench/internal/backtest/engine/engine_v1/datasource"
	"github.com/rxtech-lab/signalbench/internal/indicator"
	"github.com/rxtech-lab/signalbench/internal/logger"
	"github.com/rxtech-lab/signalbench/internal/version"
	"github.com/urfave/cli/v3"
)

// runAction evaluates every configured strategy over the given candle
// file and prints the report.
func runAction(ctx context.Context, cmd *cli.Command) error {
	dataPath := cmd.String("data")
	configPath := cmd.String("config")
	outputPath := cmd.String("output")
	verbose := cmd.Bool("verbose")

	var (
		appLogger *logger.Logger
		err       error
	)

	if verbose {
		appLogger, err = logger.NewDebugLogger()
	} else {
		appLogger, err = logger.NewLogger()
	}

	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	configContent := ""

	if configPath != "" {
		content, err := os.ReadFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		configContent = string(content)
	}

	eng := engine.NewBacktestEngineV1()
	if err := eng.Initialize(configContent); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	var source datasource.DataSource

	if dataPath == "" {
		fmt.Println(HelpStyle.Render("No data file given, running against the built-in demo series."))

		source = datasource.NewDemoDataSource()
	} else {
		source, err = datasource.NewDuckDBDataSource(appLogger)
		if err != nil {
			return fmt.Errorf("failed to create data source: %w", err)
		}

		if err := source.Initialize(dataPath); err != nil {
			return fmt.Errorf("failed to load data: %w", err)
		}
	}

	defer source.Close()

	if err := eng.SetDataSource(source); err != nil {
		return err
	}

	if outputPath != "" {
		if err := eng.SetResultsPath(outputPath); err != nil {
			return err
		}
	}

	results, err := eng.Run(ctx, backtest.LifecycleCallbacks{})
	if err != nil {
		return fmt.Errorf("backtest failed: %w", err)
	}

	fmt.Println(RenderReport(results))

	if outputPath != "" {
		fmt.Println(HelpStyle.Render("Results written to " + outputPath))
	}

	return nil
}

// indicatorsAction lists the built-in indicators.
func indicatorsAction(ctx context.Context, cmd *cli.Command) error {
	registry := indicator.NewDefaultRegistry()

	fmt.Println(TitleStyle.Render("Available indicators"))

	for _, name := range sortedIndicators(registry.ListIndicators()) {
		fmt.Printf("  %s\n", name)
	}

	return nil
}

func main() {
	cmd := &cli.Command{
		Name:    "backtest",
		Usage:   "Evaluate technical-analysis strategies over historical candles",
		Version: version.GetVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "data",
				Aliases:  []string{"d"},
				Usage:    "Path to a CSV candle file (time, open, high, low, close, volume). Omit to use the built-in demo series.",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to a YAML engine configuration file",
				Required: false,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Path to write the YAML result report to",
				Required: false,
			},
			&cli.BoolFlag{
				Name:     "verbose",
				Aliases:  []string{"v"},
				Usage:    "Enable debug logging",
				Required: false,
			},
		},
		Action: runAction,
		Commands: []*cli.Command{
			{
				Name:   "indicators",
				Usage:  "List the built-in indicators",
				Action: indicatorsAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(ErrorStyle.Render(err.Error()))
	}
}

// savingscalc computes how much a small business can save by replacing an
// in-house marketing setup with a managed service, from a YAML answer file or
// over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/marketwise/savings-calculator/internal/calculation"
	"github.com/marketwise/savings-calculator/internal/config"
	"github.com/marketwise/savings-calculator/internal/output"
	"github.com/marketwise/savings-calculator/internal/server"
)

var (
	inputFile    string
	outputFormat string
	industryFile string
	serveAddr    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "savingscalc",
		Short: "Marketing budget savings calculator",
		Long: `savingscalc estimates the current cost of a small business's marketing
setup, prices the managed-service alternative and reports the savings,
projected revenue growth and ROI.`,
		SilenceUsage: true,
	}

	calculateCmd := &cobra.Command{
		Use:   "calculate",
		Short: "Run a calculation from a YAML answer file",
		RunE:  runCalculate,
	}
	calculateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML answer file (required)")
	calculateCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "output format (console, json)")
	calculateCmd.Flags().StringVar(&industryFile, "industries", "", "YAML industry table overriding the built-in one")
	_ = calculateCmd.MarkFlagRequired("input")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example YAML answer file",
		RunE: func(cmd *cobra.Command, args []string) error {
			yml, err := config.ExampleInputYAML()
			if err != nil {
				return err
			}
			fmt.Print(yml)
			return nil
		},
	}

	rootCmd.AddCommand(calculateCmd, serveCmd, exampleCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCalculate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}

	raw, err := config.LoadFormInput(inputFile)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	result, err := engine.Calculate(context.Background(), *raw)
	if err != nil {
		return err
	}

	report, err := output.GenerateReport(result, outputFormat)
	if err != nil {
		return err
	}
	fmt.Print(string(report))
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadAppConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	engine.SetLogger(calculation.NewZapLogger(logger))

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return fmt.Errorf("redis ping failed: %w", err)
		}
		engine.SetCache(calculation.NewRedisCache(client, cfg.Redis.TTL, calculation.NewZapLogger(logger)))
		logger.Info("redis result cache enabled", zap.String("address", cfg.Redis.Address))
	} else {
		engine.SetCache(calculation.NewMemoryCache())
	}

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(engine, nil, logger)
	return srv.ListenAndServe(addr)
}

// buildEngine assembles the engine from the compiled-in tables, the optional
// industry file and the configured tools discount. The --industries flag wins
// over the config file setting.
func buildEngine(cfg *config.AppConfig) (*calculation.Engine, error) {
	table := config.DefaultIndustryTable()

	file := cfg.Calculator.IndustryFile
	if industryFile != "" {
		file = industryFile
	}
	if file != "" {
		loaded, err := config.LoadIndustryTable(file)
		if err != nil {
			return nil, err
		}
		table = loaded
	}

	engine := calculation.NewEngine(table, config.DefaultToolCatalog(), config.DefaultMarketerTiers())
	engine.Discount = decimal.NewFromFloat(cfg.Calculator.ToolsDiscount)
	return engine, nil
}

func buildLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

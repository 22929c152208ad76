package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig is the application configuration for the server and CLI. The
// calculation core never reads it; it receives the resolved pieces instead.
type AppConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CalculatorConfig struct {
	// ToolsDiscount is the flat tools discount applied in the offer.
	ToolsDiscount float64 `mapstructure:"tools_discount"`
	// IndustryFile optionally replaces the compiled-in industry table.
	IndustryFile string `mapstructure:"industry_file"`
}

// LoadAppConfig reads configuration from config.yaml (working directory or
// ./configs), with SAVINGSCALC_* environment variables overriding file
// values. A .env file is honored when present.
func LoadAppConfig() (*AppConfig, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")

	v.SetEnvPrefix("SAVINGSCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", time.Hour)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("calculator.tools_discount", 0.35)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Calculator.ToolsDiscount < 0 || cfg.Calculator.ToolsDiscount >= 1 {
		return nil, fmt.Errorf("calculator.tools_discount must be in [0,1), got %v", cfg.Calculator.ToolsDiscount)
	}
	return &cfg, nil
}

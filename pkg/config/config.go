package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/benchmark"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/compliance"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const envPrefix = "AUDIT"

type Config struct {
	Server     ServerConfig        `mapstructure:"server"`
	Log        LogConfig           `mapstructure:"log"`
	Benchmarks BenchmarkConfig     `mapstructure:"benchmarks"`
	Compliance compliance.Settings `mapstructure:"compliance"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
}

type BenchmarkConfig struct {
	// File is an optional YAML benchmark table set replacing the built-in tables
	File string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	settings := compliance.DefaultSettings()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("benchmarks.file", "")
	v.SetDefault("compliance.frc_revenue_threshold", settings.FRCRevenueThreshold)
	v.SetDefault("compliance.vat_revenue_threshold", settings.VATRevenueThreshold)
	v.SetDefault("compliance.min_capital_adequacy", settings.MinCapitalAdequacy)
	v.SetDefault("compliance.min_liquidity_ratio", settings.MinLiquidityRatio)
	v.SetDefault("compliance.review_score", settings.ReviewScore)
	v.SetDefault("compliance.max_action_items", settings.MaxActionItems)
}

// Load reads configuration from an optional file at path, then applies
// AUDIT_* environment overrides (AUDIT_SERVER_PORT, AUDIT_LOG_LEVEL, ...).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// BenchmarkProvider returns the configured benchmark tables, falling back to
// the built-in ones when no file is set.
func (c *Config) BenchmarkProvider() (benchmark.Provider, error) {
	if c.Benchmarks.File == "" {
		return benchmark.NewStaticProvider(), nil
	}
	p, err := benchmark.LoadFile(c.Benchmarks.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load benchmarks from %s: %w", c.Benchmarks.File, err)
	}
	return p, nil
}

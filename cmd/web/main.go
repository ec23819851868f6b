package main

import (
	"fmt"
	"os"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/config"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/server"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/analysis"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/compliance"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the audit scoring web server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to a YAML or JSON config file (AUDIT_* environment variables override it)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := zerolog.New(os.Stdout).Level(cfg.LogLevel()).With().Timestamp().Logger()

	provider, err := cfg.BenchmarkProvider()
	if err != nil {
		return err
	}
	svc := analysis.NewService(analysis.Dependencies{
		Benchmarks: provider,
		Compliance: compliance.NewEngine(cfg.Compliance),
	})

	logger.Info().
		Strs("industries", provider.Industries()).
		Str("log_level", cfg.Log.Level).
		Msg("configuration loaded")

	api := server.NewWebAPI(logger, server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Service: svc,
		},
	})

	return api.Start()
}

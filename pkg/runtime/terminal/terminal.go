package terminal

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/config"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/runtime/terminal/commands"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/runtime/terminal/export"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/analysis"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/benchmark"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/compliance"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	cfgPath string
	cfg     *config.Config
	logOut  io.Writer
	output  commands.Output
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
	// LogOutput receives diagnostic logs (default: os.Stderr)
	LogOutput io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		logOut: opts.LogOutput,
		output: commands.Output{
			Text: export.NewReporter(opts.Output),
			JSON: NewJSONReporter(opts.Output),
		},
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.ExecuteContext(context.Background())
}

// SetArgs overrides the process arguments, used by tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "audit",
		Short:             "Nigerian audit scoring and compliance tool",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.loadConfig,
	}

	cmd.PersistentFlags().StringVarP(&cli.cfgPath, "config", "c", "", "Path to a YAML or JSON config file")

	cmd.AddCommand(commands.NewAnalyzeCmd(cli.newService, cli.output))
	cmd.AddCommand(commands.NewBenchmarksCmd(cli.newService, cli.output))
	cmd.AddCommand(commands.NewTaxCmd(cli.output))

	return cmd
}

func (cli *CLI) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		return err
	}
	cli.cfg = cfg

	logger := zerolog.New(cli.logOut).Level(cfg.LogLevel()).With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
	return nil
}

// newService wires the analysis service from the loaded config. A non-empty
// benchmarksPath takes precedence over the configured benchmark file.
func (cli *CLI) newService(benchmarksPath string) (analysis.Service, error) {
	cfg := cli.cfg
	if cfg == nil {
		loaded, err := config.Load(cli.cfgPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var (
		provider benchmark.Provider
		err      error
	)
	if benchmarksPath != "" {
		provider, err = benchmark.LoadFile(benchmarksPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load benchmarks from %s: %w", benchmarksPath, err)
		}
	} else {
		provider, err = cfg.BenchmarkProvider()
		if err != nil {
			return nil, err
		}
	}

	return analysis.NewService(analysis.Dependencies{
		Benchmarks: provider,
		Compliance: compliance.NewEngine(cfg.Compliance),
	}), nil
}

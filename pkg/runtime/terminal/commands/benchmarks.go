package commands

import (
	"fmt"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/adapters"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/runtime/terminal/export"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/benchmark"
	"github.com/spf13/cobra"
)

type BenchmarksCmd struct {
	industry       string
	benchmarksPath string
	format         string
	newService     ServiceFactory
	output         Output
}

func NewBenchmarksCmd(newService ServiceFactory, output Output) *cobra.Command {
	bc := &BenchmarksCmd{newService: newService, output: output}
	cmd := &cobra.Command{
		Use:   "benchmarks",
		Short: "Show the ratio benchmarks for an industry",
		RunE:  bc.run,
	}

	cmd.Flags().StringVar(&bc.industry, "industry", benchmark.GeneralIndustry, "Industry to show, unknown industries fall back to general")
	cmd.Flags().StringVar(&bc.benchmarksPath, "benchmarks", "", "Path to a YAML benchmark table file")
	cmd.Flags().StringVar(&bc.format, "format", FormatText, "Output format (text or json)")

	return cmd
}

func (bc *BenchmarksCmd) run(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(bc.format); err != nil {
		return err
	}

	svc, err := bc.newService(bc.benchmarksPath)
	if err != nil {
		return err
	}

	table, err := svc.Benchmarks(commandContext(cmd), bc.industry)
	if err != nil {
		return fmt.Errorf("failed to load benchmarks for %q: %w", bc.industry, err)
	}

	return bc.output.write(bc.format,
		func() *domain.Report { return export.BuildBenchmarkReport(bc.industry, table) },
		func() any { return adapters.MapBenchmarkTableDomainToApi(bc.industry, table) },
	)
}

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/adapters"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/runtime/terminal/export"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const analyzeTimeout = 60 * time.Second

type AnalyzeCmd struct {
	inputPath      string
	benchmarksPath string
	format         string
	newService     ServiceFactory
	output         Output
}

func NewAnalyzeCmd(newService ServiceFactory, output Output) *cobra.Command {
	ac := &AnalyzeCmd{newService: newService, output: output}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run a full audit over a request file",
		Long: "Run the financial, compliance and risk analyses described by a JSON or YAML\n" +
			"audit request. Sections whose inputs are missing from the file are skipped.",
		RunE: ac.run,
	}

	cmd.Flags().StringVar(&ac.inputPath, "input", "", "Path to the audit request (.json, .yaml or .yml)")
	cmd.Flags().StringVar(&ac.benchmarksPath, "benchmarks", "", "Path to a YAML benchmark table file")
	cmd.Flags().StringVar(&ac.format, "format", FormatText, "Output format (text or json)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(ac.format); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), analyzeTimeout)
	defer cancel()

	req, err := ReadAuditRequest(ac.inputPath)
	if err != nil {
		return err
	}
	in, err := adapters.MapAuditRequestApiToDomain(req)
	if err != nil {
		return fmt.Errorf("invalid trial balance: %w", err)
	}

	svc, err := ac.newService(ac.benchmarksPath)
	if err != nil {
		return err
	}

	zerolog.Ctx(ctx).Debug().
		Str("input", ac.inputPath).
		Int("accounts", len(in.Entries)).
		Msg("running audit")

	report, err := svc.Audit(ctx, in)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	return ac.output.write(ac.format,
		func() *domain.Report { return export.BuildAuditReport(report) },
		func() any { return adapters.MapAuditReportDomainToApi(uuid.NewString(), report) },
	)
}

// ReadAuditRequest decodes and validates an audit request file. The format is
// chosen by extension; anything other than .yaml/.yml is read as JSON.
func ReadAuditRequest(path string) (api.AuditRequest, error) {
	var req api.AuditRequest

	data, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("failed to read input file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &req); err != nil {
			return req, fmt.Errorf("failed to parse YAML input: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&req); err != nil {
			return req, fmt.Errorf("failed to parse JSON input: %w", err)
		}
	}

	if err := validator.New().Struct(req); err != nil {
		return req, fmt.Errorf("invalid audit request: %w", err)
	}
	return req, nil
}

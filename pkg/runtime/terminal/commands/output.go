package commands

import (
	"context"
	"fmt"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/analysis"
	"github.com/spf13/cobra"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// ServiceFactory builds the analysis service, replacing the configured
// benchmark tables when benchmarksPath is set.
type ServiceFactory func(benchmarksPath string) (analysis.Service, error)

type TextReporter interface {
	Handle(report *domain.Report) error
}

type JSONReporter interface {
	Handle(v any) error
}

// Output renders a result either as a text report or as its API JSON shape.
type Output struct {
	Text TextReporter
	JSON JSONReporter
}

func (o Output) write(format string, report func() *domain.Report, body func() any) error {
	switch format {
	case FormatText:
		return o.Text.Handle(report())
	case FormatJSON:
		return o.JSON.Handle(body())
	default:
		return validateFormat(format)
	}
}

func validateFormat(format string) error {
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("unsupported format %q, expected %s or %s", format, FormatText, FormatJSON)
	}
	return nil
}

// commandContext returns the command context, which carries the CLI logger.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

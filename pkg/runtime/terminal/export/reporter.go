package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/charmbracelet/lipgloss"
)

type TableConfig struct {
	NameWidth        int
	ValueWidth       int
	UnitWidth        int
	DescriptionWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:        28,
		ValueWidth:       24,
		UnitWidth:        14,
		DescriptionWidth: 60,
	}
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	good    lipgloss.Style
	warn    lipgloss.Style
	bad     lipgloss.Style
}

// newStyles binds the palette to the output writer so colour is dropped when
// the writer is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#3B82F6")),
		good:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#10B981")),
		warn:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
}

func (s styles) status(status string) string {
	switch status {
	case string(domain.RiskLevelLow), string(domain.StatusCompliant):
		return s.good.Render(status)
	case string(domain.RiskLevelMedium), string(domain.StatusPartiallyCompliant), string(domain.StatusRequiresReview):
		return s.warn.Render(status)
	case string(domain.RiskLevelHigh), string(domain.RiskLevelCritical), string(domain.StatusNonCompliant):
		return s.bad.Render(status)
	default:
		return status
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
	styles styles
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
		styles: newStyles(writer),
	}
}

func (c *Reporter) Handle(report *domain.Report) error {
	funcMap := template.FuncMap{
		"title":   func(s string) string { return c.styles.title.Render(s) },
		"section": func(s string) string { return c.styles.section.Render("=== " + s + " ===") },
		"status":  c.styles.status,
		"formatRow": func(name string, value interface{}, unit string, desc string) string {
			unitStr := unit
			if unit == "" {
				unitStr = strings.Repeat(" ", c.config.UnitWidth)
			}
			return fmt.Sprintf("| %-*s | %-*v | %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value,
				c.config.UnitWidth, unitStr,
				c.config.DescriptionWidth, desc)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2),
				strings.Repeat("-", c.config.UnitWidth+2),
				strings.Repeat("-", c.config.DescriptionWidth+2))
		},
	}

	tmpl := `
{{title .Title}}{{if .Company}}
Company: {{.Company}}{{end}}
{{range .Sections}}
{{section .Title}}{{if .Status}}
Status: {{status .Status}}{{end}}
{{range $key, $value := .Summary}}{{$key}}: {{$value}}
{{end}}{{if .Details}}
{{separator}}
{{formatRow "Name" "Value" "Unit" "Description"}}
{{separator}}
{{range .Details}}{{formatRow .Name .Value .Unit .Description}}
{{end}}{{separator}}
{{end}}{{end}}`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

package terminal

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonRequest = `{
  "company": {"name": "Acme Ltd", "industry": "general", "annual_revenue": 30000000, "tin_number": "1234-5678-9012"},
  "financial_data": {"tax_returns_filed": true, "vat_registered": true},
  "trial_balance": {
    "Cash and Bank": 5000000,
    "Accounts Payable": 4500000,
    "Sales Revenue": 30000000,
    "Cost of Sales": 18000000
  },
  "regulations": ["firs"]
}`

const yamlRequest = `company:
  name: Acme Ltd
  industry: manufacturing
trial_balance:
  Cash and Bank: 5000000
  Accounts Payable: 4500000
  Sales Revenue: 30000000
  Cost of Sales: 18000000
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	cli := NewCLI(Options{Output: &out, LogOutput: &logs})
	cli.SetArgs(args)
	err := cli.Execute()
	return out.String(), err
}

func TestCLI_AnalyzeJSON(t *testing.T) {
	input := writeFile(t, "request.json", jsonRequest)

	out, err := run(t, "analyze", "--input", input, "--format", "json")
	require.NoError(t, err)

	var report api.AuditReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.NotEmpty(t, report.AnalysisID)
	assert.Equal(t, "Acme Ltd", report.Company)
	require.NotNil(t, report.Financial)
	assert.Equal(t, "general", report.Financial.Health.Industry)
	require.NotNil(t, report.Compliance)
	assert.Equal(t, []string{"FIRS"}, report.Compliance.RegulationsChecked)
	require.NotNil(t, report.Risk)
	assert.Len(t, report.Risk.Components, 5)
}

func TestCLI_AnalyzeYAMLText(t *testing.T) {
	input := writeFile(t, "request.yaml", yamlRequest)

	out, err := run(t, "analyze", "--input", input)
	require.NoError(t, err)

	assert.Contains(t, out, "Audit Report")
	assert.Contains(t, out, "Company: Acme Ltd")
	assert.Contains(t, out, "=== Financial Health ===")
	assert.Contains(t, out, "=== Risk Assessment ===")
	assert.Contains(t, out, "current_ratio")
	assert.NotContains(t, out, "Regulatory Compliance")
}

func TestCLI_AnalyzeRejectsInvalidRequests(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		args    []string
		errMsg  string
	}{
		{
			name:    "short trial balance",
			file:    "short.json",
			content: `{"trial_balance": {"Cash": 1, "Sales Revenue": 2}}`,
			errMsg:  "invalid audit request",
		},
		{
			name:    "malformed json",
			file:    "bad.json",
			content: `{"trial_balance": `,
			errMsg:  "failed to parse JSON input",
		},
		{
			name:    "non numeric amount",
			file:    "amount.json",
			content: `{"trial_balance": {"Cash": "lots", "Sales Revenue": 2, "Rent": 3}}`,
			errMsg:  "invalid trial balance",
		},
		{
			name:    "unknown format",
			file:    "request.json",
			content: jsonRequest,
			args:    []string{"--format", "xml"},
			errMsg:  "unsupported format",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := writeFile(t, tc.file, tc.content)
			args := append([]string{"analyze", "--input", input}, tc.args...)

			_, err := run(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestCLI_AnalyzeMissingInput(t *testing.T) {
	_, err := run(t, "analyze", "--input", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input file")
}

func TestCLI_Benchmarks(t *testing.T) {
	out, err := run(t, "benchmarks", "--industry", "banking", "--format", "json")
	require.NoError(t, err)

	var table api.BenchmarkTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, "banking", table.Industry)
	assert.NotEmpty(t, table.Benchmarks)
	for i := 1; i < len(table.Benchmarks); i++ {
		assert.Less(t, table.Benchmarks[i-1].Ratio, table.Benchmarks[i].Ratio)
	}
}

func TestCLI_BenchmarksFromFile(t *testing.T) {
	path := writeFile(t, "benchmarks.yaml", `industries:
  general:
    current_ratio:
      optimal_range: [1.2, 2.5]
`)

	out, err := run(t, "benchmarks", "--benchmarks", path)
	require.NoError(t, err)

	assert.Contains(t, out, "=== Industry Benchmarks ===")
	assert.Contains(t, out, "1.20 - 2.50")
	assert.Contains(t, out, "Ratios: 1")
}

func TestCLI_TaxJSON(t *testing.T) {
	out, err := run(t, "tax", "--amount", "1000", "--wht", "rent", "--format", "json")
	require.NoError(t, err)

	var calc api.TaxCalculation
	require.NoError(t, json.Unmarshal([]byte(out), &calc))

	assert.True(t, decimal.NewFromInt(75).Equal(calc.VAT.VATAmount), "vat %s", calc.VAT.VATAmount)
	assert.True(t, decimal.NewFromInt(1075).Equal(calc.VAT.GrossAmount), "gross %s", calc.VAT.GrossAmount)
	require.NotNil(t, calc.WHT)
	assert.Equal(t, "rent", calc.WHT.PaymentType)
	assert.True(t, decimal.NewFromInt(100).Equal(calc.WHT.WHTAmount), "wht %s", calc.WHT.WHTAmount)
	assert.True(t, decimal.NewFromInt(900).Equal(calc.WHT.NetAmount), "net %s", calc.WHT.NetAmount)
}

func TestCLI_TaxInclusiveText(t *testing.T) {
	out, err := run(t, "tax", "--amount", "1075", "--inclusive")
	require.NoError(t, err)

	assert.Contains(t, out, "=== Value Added Tax ===")
	assert.Contains(t, out, "1000.00")
	assert.Contains(t, out, "75.00")
	assert.NotContains(t, out, "Withholding Tax")
}

func TestCLI_TaxRejectsBadAmounts(t *testing.T) {
	for _, amount := range []string{"abc", "-10"} {
		_, err := run(t, "tax", "--amount", amount)
		require.Error(t, err, amount)
		assert.Contains(t, err.Error(), "invalid amount")
	}
}

func TestCLI_InvalidConfig(t *testing.T) {
	path := writeFile(t, "config.yaml", "server:\n  port: 0\n")

	_, err := run(t, "--config", path, "tax", "--amount", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

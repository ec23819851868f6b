package commands

import (
	"fmt"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/adapters"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/runtime/terminal/export"
	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/services/tax"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type TaxCmd struct {
	amount    string
	inclusive bool
	wht       string
	format    string
	output    Output
}

func NewTaxCmd(output Output) *cobra.Command {
	tc := &TaxCmd{output: output}
	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Calculate VAT and withholding tax for an amount",
		Long: "Calculate VAT at the standard rate and, with --wht, the withholding tax due\n" +
			"for a payment type. Known payment types: " + strings.Join(tax.PaymentTypes(), ", ") + ".",
		RunE: tc.run,
	}

	cmd.Flags().StringVar(&tc.amount, "amount", "", "Amount in naira")
	cmd.Flags().BoolVar(&tc.inclusive, "inclusive", false, "Treat the amount as VAT inclusive")
	cmd.Flags().StringVar(&tc.wht, "wht", "", "Payment type for withholding tax")
	cmd.Flags().StringVar(&tc.format, "format", FormatText, "Output format (text or json)")

	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func (tc *TaxCmd) run(_ *cobra.Command, _ []string) error {
	if err := validateFormat(tc.format); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(tc.amount))
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", tc.amount, err)
	}
	if amount.IsNegative() {
		return fmt.Errorf("invalid amount %q: must not be negative", tc.amount)
	}

	vat := tax.VAT(amount, tc.inclusive)
	var wht *domain.WHTBreakdown
	if tc.wht != "" {
		w := tax.WHT(amount, tc.wht)
		wht = &w
	}

	return tc.output.write(tc.format,
		func() *domain.Report { return export.BuildTaxReport(vat, wht) },
		func() any { return adapters.MapTaxCalculationDomainToApi(vat, wht) },
	)
}

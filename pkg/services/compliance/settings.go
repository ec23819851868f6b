package compliance

// Settings contains the regulatory thresholds applied by the rule handlers
type Settings struct {
	// FRCRevenueThreshold is the annual revenue above which private companies file with FRC (default: 500,000,000)
	FRCRevenueThreshold float64 `mapstructure:"frc_revenue_threshold" validate:"gt=0"`
	// VATRevenueThreshold is the annual revenue above which VAT registration is required (default: 25,000,000)
	VATRevenueThreshold float64 `mapstructure:"vat_revenue_threshold" validate:"gt=0"`
	// MinCapitalAdequacy is the CBN minimum capital adequacy ratio (default: 0.15)
	MinCapitalAdequacy float64 `mapstructure:"min_capital_adequacy" validate:"gte=0,lte=1"`
	// MinLiquidityRatio is the CBN minimum liquidity ratio (default: 0.30)
	MinLiquidityRatio float64 `mapstructure:"min_liquidity_ratio" validate:"gte=0,lte=1"`
	// ReviewScore is the score given to regulations without a dedicated handler (default: 75)
	ReviewScore float64 `mapstructure:"review_score" validate:"gte=0,lte=100"`
	// MaxActionItems caps the overview's action items (default: 10)
	MaxActionItems int `mapstructure:"max_action_items" validate:"gte=1"`
}

// DefaultSettings returns the thresholds in force for Nigerian regulators
func DefaultSettings() Settings {
	return Settings{
		FRCRevenueThreshold: 500_000_000,
		VATRevenueThreshold: 25_000_000,
		MinCapitalAdequacy:  0.15,
		MinLiquidityRatio:   0.30,
		ReviewScore:         75,
		MaxActionItems:      10,
	}
}

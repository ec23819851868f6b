package ledger

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrialBalance_AcceptsNumericForms(t *testing.T) {
	entries, err := ParseTrialBalance(map[string]any{
		"Cash":          5_000_000.0,
		"Inventory":     json.Number("1200000.50"),
		"Sales Revenue": "₦30,000,000",
		"Wages":         42,
	})
	require.NoError(t, err)
	require.Len(t, entries, 4)

	// sorted by account name
	assert.Equal(t, "Cash", entries[0].AccountName)
	assert.Equal(t, "Inventory", entries[1].AccountName)
	assert.Equal(t, "Sales Revenue", entries[2].AccountName)
	assert.Equal(t, "Wages", entries[3].AccountName)

	assert.True(t, decimal.RequireFromString("1200000.50").Equal(entries[1].Amount))
	assert.True(t, decimal.NewFromInt(30_000_000).Equal(entries[2].Amount))
}

func TestParseTrialBalance_RejectsNonNumeric(t *testing.T) {
	_, err := ParseTrialBalance(map[string]any{
		"Cash":  100.0,
		"Wages": "lots",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Wages", verr.Account)
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestParseTrialBalance_RejectsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		amount any
	}{
		{"above bound", 1.5e12},
		{"below bound", -2e12},
		{"string above bound", "1000000000001"},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
		{"nil", nil},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTrialBalance(map[string]any{"Cash": 1.0, "Loan": tt.amount})
			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "Loan", verr.Account)
		})
	}
}

func TestParseTrialBalance_BoundIsInclusive(t *testing.T) {
	entries, err := ParseTrialBalance(map[string]any{"Cash": 1e12, "Overdraft": -1e12})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestParseTrialBalance_SmallInputs(t *testing.T) {
	entries, err := ParseTrialBalance(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseTrialBalance_RejectsExtremeExponentsQuickly(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		reason string
	}{
		{"huge positive exponent", json.Number("1e100000000"), "magnitude exceeds"},
		{"huge negative exponent", json.Number("1e-100000000"), "decimal places"},
		{"string exponent", "5e10000000", "magnitude exceeds"},
		{"zero with huge exponent", json.Number("0e100000000"), "magnitude exceeds"},
		{"zero with tiny exponent", json.Number("0e-100000000"), "decimal places"},
		{"just above bound", json.Number("1.0000000000001e12"), "magnitude exceeds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			_, err := ParseTrialBalance(map[string]any{"Cash": 1.0, "Loan": tt.amount, "Sales": 2.0})
			assert.Less(t, time.Since(start), time.Second)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "Loan", verr.Account)
			assert.Contains(t, verr.Reason, tt.reason)
		})
	}
}

func TestValidateEntries_RejectsExtremeDecimals(t *testing.T) {
	entries := []domain.LedgerEntry{
		{AccountName: "Cash", Amount: decimal.NewFromInt(10)},
		{AccountName: "Suspense", Amount: decimal.New(7, 1_000_000_000)},
	}

	err := ValidateEntries(entries)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Suspense", verr.Account)
}

func TestValidateEntries_AcceptsKoboPrecision(t *testing.T) {
	entries := []domain.LedgerEntry{
		{AccountName: "Cash", Amount: decimal.RequireFromString("999999999999.99")},
		{AccountName: "Petty Cash", Amount: decimal.RequireFromString("0.000000000000000001")},
		{AccountName: "Suspense", Amount: decimal.Zero},
	}

	assert.NoError(t, ValidateEntries(entries))
}

package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"

	"github.com/TechGirlNerd900/nigerian-audit-ai/pkg/models/domain"
	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid ledger amount")

// ValidationError reports the account whose amount rejected the analysis.
type ValidationError struct {
	Account string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid amount for account %q: %s", e.Account, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidAmount
}

// ParseTrialBalance converts a decoded trial balance (account -> amount) into
// validated ledger entries ordered by account name. Amounts may be numbers or
// numeric strings with an optional naira sign and thousands separators.
func ParseTrialBalance(tb map[string]any) ([]domain.LedgerEntry, error) {
	names := make([]string, 0, len(tb))
	for name := range tb {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]domain.LedgerEntry, 0, len(names))
	for _, name := range names {
		amount, err := parseAmount(tb[name])
		if err != nil {
			return nil, &ValidationError{Account: name, Reason: err.Error()}
		}
		entries = append(entries, domain.LedgerEntry{AccountName: name, Amount: amount})
	}

	if err := ValidateEntries(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

const (
	// maxLedgerDigits is the decimal exponent of MaxLedgerAmount.
	maxLedgerDigits = 12
	// maxAmountScale is the most decimal places a ledger amount may carry.
	maxAmountScale = 18
	// maxCoefficientBits caps significant digits at roughly 38.
	maxCoefficientBits = 128
)

// ValidateEntries fails on the first entry whose amount exceeds ±10^12.
func ValidateEntries(entries []domain.LedgerEntry) error {
	for _, e := range entries {
		if reason := checkMagnitude(e.Amount); reason != "" {
			return &ValidationError{Account: e.AccountName, Reason: reason}
		}
	}
	return nil
}

// checkMagnitude bounds an amount using its exponent and digit count before
// any comparison, since comparing decimals rescales them to a common exponent.
func checkMagnitude(d decimal.Decimal) string {
	exp := int64(d.Exponent())
	if exp < -maxAmountScale {
		return fmt.Sprintf("more than %d decimal places", maxAmountScale)
	}
	coef := d.Coefficient()
	if coef.BitLen() > maxCoefficientBits {
		return "too many significant digits"
	}
	outOfRange := fmt.Sprintf("magnitude exceeds %s", domain.MaxLedgerAmount.String())
	if coef.Sign() == 0 {
		if exp > maxLedgerDigits {
			return outOfRange
		}
		return ""
	}
	// |d| >= 10^(exp+digits-1)
	digits := int64(len(new(big.Int).Abs(coef).String()))
	if exp+digits-1 > maxLedgerDigits {
		return outOfRange
	}
	if d.Abs().GreaterThan(domain.MaxLedgerAmount) {
		return outOfRange
	}
	return ""
}

func parseAmount(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case float64:
		return fromFloat(n)
	case float32:
		return fromFloat(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case json.Number:
		return fromString(n.String())
	case string:
		return fromString(n)
	case nil:
		return decimal.Zero, errors.New("amount is missing")
	default:
		return decimal.Zero, fmt.Errorf("non-numeric amount of type %T", v)
	}
}

func fromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, errors.New("amount is not finite")
	}
	return decimal.NewFromFloat(f), nil
}

func fromString(s string) (decimal.Decimal, error) {
	cleaned := strings.NewReplacer("₦", "", ",", "", " ", "", "\t", "").Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return decimal.Zero, errors.New("amount is empty")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("non-numeric amount %q", s)
	}
	return d, nil
}

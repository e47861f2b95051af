package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidClientName = fmt.Errorf("invalid client name")
	ErrInvalidTaxID      = fmt.Errorf("invalid tax identifier")
	ErrAmountTooLarge    = fmt.Errorf("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxClientNameLength  = 255
	MaxTransactionAmount = "1000000000" // 1 billion
	TaxIDLength          = 11
)

// ValidateAmount validates a deposit/withdrawal amount. The core
// re-validates even when the caller already did.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxTransactionAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxTransactionAmount)
	}

	return nil
}

// ValidateClientName validates a client name.
func ValidateClientName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidClientName)
	}
	if len(name) > MaxClientNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidClientName, MaxClientNameLength)
	}

	return nil
}

// ValidateTaxID validates a CPF-style tax identifier: eleven digits,
// punctuation tolerated.
func ValidateTaxID(taxID string) error {
	digits := NormalizeTaxID(taxID)

	if len(digits) != TaxIDLength {
		return fmt.Errorf("%w: expected %d digits", ErrInvalidTaxID, TaxIDLength)
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: expected digits only", ErrInvalidTaxID)
		}
	}

	return nil
}

// NormalizeTaxID strips the usual CPF punctuation.
func NormalizeTaxID(taxID string) string {
	replacer := strings.NewReplacer(".", "", "-", "", "/", "", " ", "")
	return replacer.Replace(strings.TrimSpace(taxID))
}

// ParseAccountKind parses an account kind name case-insensitively.
func ParseAccountKind(s string) (AccountKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(AccountChecking):
		return AccountChecking, nil
	case string(AccountSavings):
		return AccountSavings, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountKind, s)
	}
}

// ParseTransactionKind parses a transaction kind name case-insensitively.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(TransactionDeposit):
		return TransactionDeposit, nil
	case string(TransactionWithdrawal):
		return TransactionWithdrawal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransactionKind, s)
	}
}

package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BirthDateLayout is the accepted birth date format (dd-mm-yyyy)
const BirthDateLayout = "02-01-2006"

// ValidateTaxID checks that a tax id is a non-empty string of digits
func ValidateTaxID(taxID string) error {
	if taxID == "" {
		return fmt.Errorf("invalid tax id: cannot be empty")
	}

	for _, r := range taxID {
		if r < '0' || r > '9' {
			return fmt.Errorf("invalid tax id: must contain only digits")
		}
	}

	return nil
}

// ValidateFullName checks that a name is present
func ValidateFullName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("invalid name: cannot be empty")
	}
	return nil
}

// ValidateBirthDate checks that a birth date is a past dd-mm-yyyy date
func ValidateBirthDate(birthDate string, now time.Time) error {
	parsed, err := time.Parse(BirthDateLayout, birthDate)
	if err != nil {
		return fmt.Errorf("invalid birth date: expected dd-mm-yyyy")
	}

	if parsed.After(now) {
		return fmt.Errorf("invalid birth date: %s is in the future", birthDate)
	}

	return nil
}

const (
	// MaxAmountDigits bounds the integer part of an amount
	MaxAmountDigits = 12
	// AmountDecimalPlaces is the precision of every posted amount
	AmountDecimalPlaces = 2
)

// ValidateAmount checks that amount is positive, has at most two decimal
// places and no more than MaxAmountDigits integer digits. It never rescales amount.
func ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be greater than zero")
	}

	if amount.Exponent() < -AmountDecimalPlaces {
		return fmt.Errorf("amount must have at most %d decimal places", AmountDecimalPlaces)
	}

	if int64(amount.NumDigits())+int64(amount.Exponent()) > MaxAmountDigits {
		return fmt.Errorf("amount must have at most %d integer digits", MaxAmountDigits)
	}

	return nil
}

// ParseAmount reads a plain decimal amount, accepting a comma as decimal
// separator. Exponent notation is rejected. The sign is not checked here.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, fmt.Errorf("invalid amount %q: exponent notation is not accepted", s)
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: not a decimal number", s)
	}

	if !amount.IsZero() {
		if err := ValidateAmount(amount.Abs()); err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	return amount, nil
}

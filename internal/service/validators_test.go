package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTaxID(t *testing.T) {
	tests := []struct {
		name    string
		taxID   string
		wantErr bool
	}{
		{name: "digits only", taxID: "12345678900", wantErr: false},
		{name: "empty", taxID: "", wantErr: true},
		{name: "punctuated", taxID: "123.456.789-00", wantErr: true},
		{name: "letters", taxID: "abc123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaxID(tt.taxID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFullName(t *testing.T) {
	assert.NoError(t, ValidateFullName("Maria Silva"))
	assert.Error(t, ValidateFullName("   "))
}

func TestValidateBirthDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		wantErr   bool
	}{
		{name: "valid date", birthDate: "15-08-1985", wantErr: false},
		{name: "wrong separator", birthDate: "15/08/1985", wantErr: true},
		{name: "month out of range", birthDate: "15-13-1985", wantErr: true},
		{name: "future date", birthDate: "02-06-2024", wantErr: true},
		{name: "empty", birthDate: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBirthDate(tt.birthDate, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{name: "positive amount", amount: "100", wantErr: false},
		{name: "fractional amount", amount: "0.01", wantErr: false},
		{name: "largest amount", amount: "999999999999.99", wantErr: false},
		{name: "zero amount", amount: "0", wantErr: true},
		{name: "negative amount", amount: "-5.00", wantErr: true},
		{name: "three decimal places", amount: "0.001", wantErr: true},
		{name: "too many integer digits", amount: "1000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(dec(tt.amount))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "100", want: "100.00"},
		{input: " 12.5 ", want: "12.50"},
		{input: "12,5", want: "12.50"},
		{input: "-5.00", want: "-5.00"},
		{input: "1,000.50", wantErr: true},
		{input: "0", want: "0.00"},
		{input: "ten", wantErr: true},
		{input: "", wantErr: true},
		{input: "1e300000000", wantErr: true},
		{input: "1E3", wantErr: true},
		{input: "0.001", wantErr: true},
		{input: "12,345", wantErr: true},
		{input: "-0.001", wantErr: true},
		{input: "10000000000000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestValidateAmount_LargeExponentReturnsQuickly(t *testing.T) {
	done := make(chan error, 1)
	go func() { done <- ValidateAmount(decimal.New(1, 300000000)) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(time.Second):
		t.Fatal("ValidateAmount did not return for a value with a large exponent")
	}
}

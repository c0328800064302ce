package service

import (
	"io"
	"log/slog"

	"github.com/benx421/minibank/internal/config"
	"github.com/shopspring/decimal"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testBankConfig() *config.BankConfig {
	return &config.BankConfig{
		BranchCode:           "0001",
		OverdraftLimit:       dec("500.00"),
		DailyWithdrawalLimit: 3,
	}
}

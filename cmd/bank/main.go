package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benx421/minibank/internal/cli"
	"github.com/benx421/minibank/internal/config"
	"github.com/benx421/minibank/internal/repository"
	"github.com/benx421/minibank/internal/service"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	if envErr != nil {
		logger.Debug("no .env file loaded", "error", envErr)
	}

	logger.Info("starting bank",
		"branch", cfg.Bank.BranchCode,
		"overdraft_limit", cfg.Bank.OverdraftLimit.StringFixed(2),
		"daily_withdrawal_limit", cfg.Bank.DailyWithdrawalLimit,
		"log_level", cfg.Logger.Level,
	)

	customers := repository.NewCustomerRepository()
	accounts := repository.NewAccountRepository()

	app := cli.New(
		os.Stdin,
		os.Stdout,
		service.NewCustomerService(customers, logger),
		service.NewAccountService(customers, accounts, &cfg.Bank, logger),
		service.NewTransactionService(customers, accounts, logger),
		logger,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("interrupted, closing session")
		os.Exit(0)
	}()

	if err := app.Run(context.Background()); err != nil {
		logger.Error("session failed", "error", err)
		os.Exit(1)
	}

	logger.Info("bank stopped")
}

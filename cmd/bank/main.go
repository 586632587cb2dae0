// cmd/bank/main.go

// Terminal bank: deposits, withdrawals, statements, user and account
// registration with CPF validation. This file loads the configuration, wires
// the modules (cpf, bank, cli) and runs one interactive session on
// stdin/stdout. SIGINT/SIGTERM end the session cleanly.

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"bankcli/internal/bank"
	"bankcli/internal/cli"
	"bankcli/internal/cpf"
	"bankcli/internal/platform/config"
	"bankcli/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New().Error("loading configuration", logger.Error(err))
		os.Exit(1)
	}

	// Validate already checked these.
	level, _ := cfg.Level()
	format, _ := cfg.Format()
	exportFormat, _ := cfg.Export()

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(slog.String("app", "bank")),
	)

	var cpfOpts []cpf.Option
	if cfg.StrictCPFFormat {
		cpfOpts = append(cpfOpts, cpf.WithStrictSeparators())
	}
	validator := cpf.New(cpfOpts...)

	b := bank.NewBank(
		bank.WithAgency(cfg.Agency),
		bank.WithWithdrawalLimit(cfg.WithdrawalLimit),
		bank.WithDailyWithdrawals(cfg.DailyWithdrawals),
		bank.WithCPFValidator(validator),
		bank.WithLogger(log),
	)

	s := cli.NewSession(b, os.Stdin, os.Stdout,
		cli.WithLogger(log),
		cli.WithMaxAttempts(cfg.PromptAttempts),
		cli.WithExportFormat(exportFormat),
	)

	log.Info("starting",
		slog.String("agency", cfg.Agency),
		slog.Bool("strict_cpf_format", validator.Strict()),
		slog.String("export_format", string(exportFormat)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("session ended with error", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

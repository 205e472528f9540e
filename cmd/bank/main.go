package main

import (
	"bufio"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/term"

	"console-bank/internal/config"
	"console-bank/internal/console"
	"console-bank/internal/logging"
	"console-bank/internal/models"
	"console-bank/internal/repositories"
	"console-bank/internal/services"
)

func main() {
	cfg := config.Load()

	logger, closeLog, err := logging.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = closeLog() }()
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	metrics := services.NewPrometheusMetrics(registry)
	auditLogger := services.NewAuditLogger(logger)

	userRepo := repositories.NewUserRepository()
	passwordService := services.NewPasswordService(cfg.Security.BCryptCost)
	directory := services.NewUserDirectory(userRepo, passwordService, auditLogger, metrics, models.SystemClock{}, logger)
	accountService := services.NewAccountService(models.NewAccountNumberSequence(), auditLogger, metrics, logger)

	in := bufio.NewReader(os.Stdin)
	var maskOpts []console.MaskedReaderOption
	if fd := int(os.Stdin.Fd()); term.IsTerminal(fd) {
		maskOpts = append(maskOpts, console.WithTerminal(fd))
	}
	secrets := console.NewMaskedReader(in, os.Stdout, maskOpts...)

	controller := console.NewController(in, os.Stdout, secrets, directory, accountService, auditLogger, logger)
	logger.Info("console banking started", "environment", cfg.App.Environment)

	runErr := controller.Run()

	if cfg.Metrics.File != "" {
		if err := prometheus.WriteToTextfile(cfg.Metrics.File, registry); err != nil {
			logger.Error("failed to write metrics", "file", cfg.Metrics.File, "error", err)
		}
	}

	if runErr != nil {
		logger.Error("console stopped", "error", runErr)
		fmt.Fprintln(os.Stderr, "input error:", runErr)
		_ = closeLog()
		os.Exit(1)
	}
}

package services

import (
	"log/slog"
	"time"

	"console-bank/internal/models"

	"github.com/google/uuid"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogUserRegistered(userID uuid.UUID, username string) {
	al.logger.Info("user registered",
		slog.String("event_type", "user_registered"),
		slog.String("user_id", userID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogRegistrationRejected(username, reason string) {
	al.logger.Warn("registration rejected",
		slog.String("event_type", "registration_rejected"),
		slog.String("username", username),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogLoginSucceeded(userID uuid.UUID, username string) {
	al.logger.Info("login succeeded",
		slog.String("event_type", "login_succeeded"),
		slog.String("user_id", userID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogLoginFailed(username, reason string) {
	al.logger.Warn("login failed",
		slog.String("event_type", "login_failed"),
		slog.String("username", username),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogLogout(userID uuid.UUID, username string) {
	al.logger.Info("logout",
		slog.String("event_type", "logout"),
		slog.String("user_id", userID.String()),
		slog.String("username", username),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogAccountOpened(userID uuid.UUID, accountNumber string, accountType models.AccountType, initialDeposit string) {
	al.logger.Info("account opened",
		slog.String("event_type", "account_opened"),
		slog.String("user_id", userID.String()),
		slog.String("account_number", accountNumber),
		slog.String("account_type", string(accountType)),
		slog.String("initial_deposit", initialDeposit),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogBalanceUpdate(userID uuid.UUID, accountNumber string, transactionType models.TransactionType, amount, oldBalance, newBalance string) {
	al.logger.Info("balance update",
		slog.String("event_type", "balance_update"),
		slog.String("user_id", userID.String()),
		slog.String("account_number", accountNumber),
		slog.String("transaction_type", string(transactionType)),
		slog.String("amount", amount),
		slog.String("old_balance", oldBalance),
		slog.String("new_balance", newBalance),
		slog.Time("timestamp", time.Now()),
	)
}

func (al *AuditLogger) LogOperationRejected(userID uuid.UUID, accountNumber, operation, reason string) {
	al.logger.Warn("operation rejected",
		slog.String("event_type", "operation_rejected"),
		slog.String("user_id", userID.String()),
		slog.String("account_number", accountNumber),
		slog.String("operation", operation),
		slog.String("reason", reason),
		slog.Time("timestamp", time.Now()),
	)
}

package services

import (
	"errors"
	"fmt"
	"log/slog"

	"console-bank/internal/models"
	"console-bank/internal/repositories"
)

var (
	ErrAlreadyExists      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// userDirectory implements UserDirectoryInterface on top of a user repository
type userDirectory struct {
	userRepo        repositories.UserRepositoryInterface
	passwordService PasswordServiceInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	clock           models.Clock
	logger          *slog.Logger
}

// NewUserDirectory creates the process-wide username to user mapping
func NewUserDirectory(
	userRepo repositories.UserRepositoryInterface,
	passwordService PasswordServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clock models.Clock,
	logger *slog.Logger,
) UserDirectoryInterface {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &userDirectory{
		userRepo:        userRepo,
		passwordService: passwordService,
		auditLogger:     auditLogger,
		metrics:         metrics,
		clock:           clock,
		logger:          logger,
	}
}

// Register creates and stores a new user. A taken username returns
// ErrAlreadyExists and leaves the existing user untouched.
func (d *userDirectory) Register(username, credential string) (*models.User, error) {
	if d.userRepo.ExistsByUsername(username) {
		d.auditLogger.LogRegistrationRejected(username, "already_exists")
		return nil, ErrAlreadyExists
	}

	start := d.clock.Now()
	hash, err := d.passwordService.HashCredential(credential)
	if err != nil {
		return nil, fmt.Errorf("failed to hash credential: %w", err)
	}
	d.metrics.RecordProcessingTime("credential_hash", d.clock.Now().Sub(start))

	user, err := models.NewUser(username, hash, d.clock)
	if err != nil {
		d.auditLogger.LogRegistrationRejected(username, err.Error())
		return nil, err
	}

	if err := d.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	d.auditLogger.LogUserRegistered(user.ID, user.Username)
	d.metrics.IncrementCounter("user_registered", nil)
	d.metrics.RecordGauge("registered_users", float64(d.userRepo.Count()), nil)
	d.logger.Debug("user registered", "username", user.Username, "users", d.userRepo.Count())

	return user, nil
}

// Login returns the stored user when the credential matches. Unknown
// usernames and wrong credentials are indistinguishable to the caller.
func (d *userDirectory) Login(username, credential string) (*models.User, error) {
	user, err := d.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			d.recordLoginFailure(username, "unknown_user")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.Authenticate(credential) {
		d.recordLoginFailure(username, "credential_mismatch")
		return nil, ErrInvalidCredentials
	}

	d.auditLogger.LogLoginSucceeded(user.ID, user.Username)
	d.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})

	return user, nil
}

// Count returns the number of registered users
func (d *userDirectory) Count() int {
	return d.userRepo.Count()
}

func (d *userDirectory) recordLoginFailure(username, reason string) {
	d.auditLogger.LogLoginFailed(username, reason)
	d.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
}

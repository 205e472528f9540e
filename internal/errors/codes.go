package errors

import (
	stderrors "errors"

	"console-bank/internal/models"
	"console-bank/internal/services"
)

// ErrorCode represents a standardized error code rendered by the console
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthUsernameTaken      ErrorCode = "AUTH_001"
	AuthInvalidCredentials ErrorCode = "AUTH_002"
	AuthUsernameRequired   ErrorCode = "AUTH_003"
	AuthCredentialTooLong  ErrorCode = "AUTH_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountInsufficientBalance ErrorCode = "ACCOUNT_001"
	AccountNotEligible         ErrorCode = "ACCOUNT_002"
	AccountNoneAvailable       ErrorCode = "ACCOUNT_003"
	AccountInvalidSelection    ErrorCode = "ACCOUNT_004"
	AccountInvalidType         ErrorCode = "ACCOUNT_005"
	AccountNoSavings           ErrorCode = "ACCOUNT_006"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionInvalidAmount ErrorCode = "TRANSACTION_001"
)

// Input error codes (INPUT_*)
const (
	InputParseFailure   ErrorCode = "INPUT_001"
	InputInvalidOption  ErrorCode = "INPUT_002"
	InputNegativeAmount ErrorCode = "INPUT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemUnexpectedError ErrorCode = "SYSTEM_001"
)

// Console-side failures that have no domain sentinel of their own
var (
	ErrParseFailure     = stderrors.New("input could not be parsed")
	ErrInvalidOption    = stderrors.New("invalid menu option")
	ErrInvalidSelection = stderrors.New("invalid account selection")
	ErrNoAccounts       = stderrors.New("no accounts available")
	ErrNoSavings        = stderrors.New("no savings accounts available")
	ErrNegativeAmount   = stderrors.New("amount cannot be negative")
	ErrInvalidType      = stderrors.New("invalid account type")
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthUsernameTaken:      "Username already exists. Please choose another.",
	AuthInvalidCredentials: "Invalid username or password.",
	AuthUsernameRequired:   "Username cannot be empty.",
	AuthCredentialTooLong:  "Password is too long.",

	// Account errors
	AccountInsufficientBalance: "Insufficient balance.",
	AccountNotEligible:         "Interest calculation is only available for savings accounts once a month.",
	AccountNoneAvailable:       "No accounts available.",
	AccountInvalidSelection:    "Invalid account selection.",
	AccountInvalidType:         "Invalid account type. Enter 1 for Savings or 2 for Checking.",
	AccountNoSavings:           "No savings accounts available.",

	// Transaction errors
	TransactionInvalidAmount: "Amount must be greater than zero with at most two decimal places.",

	// Input errors
	InputParseFailure:   "Invalid input. Please enter a number.",
	InputInvalidOption:  "Invalid option. Please try again.",
	InputNegativeAmount: "Amount cannot be negative and may have at most two decimal places.",

	// System errors
	SystemUnexpectedError: "An unexpected error occurred.",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// CodeFor classifies err, following wrapped chains
func CodeFor(err error) ErrorCode {
	switch {
	case stderrors.Is(err, services.ErrAlreadyExists):
		return AuthUsernameTaken
	case stderrors.Is(err, services.ErrInvalidCredentials):
		return AuthInvalidCredentials
	case stderrors.Is(err, models.ErrUsernameRequired):
		return AuthUsernameRequired
	case stderrors.Is(err, services.ErrCredentialTooLong):
		return AuthCredentialTooLong
	case stderrors.Is(err, models.ErrInsufficientBalance):
		return AccountInsufficientBalance
	case stderrors.Is(err, models.ErrNotEligible):
		return AccountNotEligible
	case stderrors.Is(err, ErrNoAccounts):
		return AccountNoneAvailable
	case stderrors.Is(err, ErrNoSavings):
		return AccountNoSavings
	case stderrors.Is(err, ErrInvalidSelection):
		return AccountInvalidSelection
	case stderrors.Is(err, ErrInvalidType), stderrors.Is(err, models.ErrInvalidAccountType):
		return AccountInvalidType
	case stderrors.Is(err, ErrNegativeAmount):
		return InputNegativeAmount
	case stderrors.Is(err, models.ErrInvalidAmount):
		return TransactionInvalidAmount
	case stderrors.Is(err, ErrParseFailure):
		return InputParseFailure
	case stderrors.Is(err, ErrInvalidOption):
		return InputInvalidOption
	default:
		return SystemUnexpectedError
	}
}

// Message returns the console message for err
func Message(err error) string {
	return GetErrorMessage(CodeFor(err))
}

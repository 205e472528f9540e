package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	apperrors "console-bank/internal/errors"
	"console-bank/internal/models"
)

// Validator wraps the go-playground validator with the console's input rules
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("non_negative_amount", validateNonNegativeAmount)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("username", validateUsername)

	// decimal.Decimal is a struct, so the custom tags would never see it as a value
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	return &Validator{validate: v}
}

// CredentialsInput is what the register and login prompts collect
type CredentialsInput struct {
	Username string `validate:"username"`
	Password string
}

// OpenAccountInput is the open-account prompt. AccountType holds the raw menu choice.
type OpenAccountInput struct {
	HolderName     string
	AccountType    string          `validate:"account_type"`
	InitialDeposit decimal.Decimal `validate:"non_negative_amount"`
}

// AmountInput is a deposit or withdrawal amount
type AmountInput struct {
	Amount decimal.Decimal `validate:"positive_amount"`
}

// Struct validates s and translates the first failing rule into one of the
// console's sentinel errors
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fieldErr := validationErrors[0]
	switch fieldErr.Tag() {
	case "positive_amount":
		return fmt.Errorf("%s: %w", fieldErr.Field(), models.ErrInvalidAmount)
	case "non_negative_amount":
		return fmt.Errorf("%s: %w", fieldErr.Field(), apperrors.ErrNegativeAmount)
	case "account_type":
		return fmt.Errorf("%s: %w", fieldErr.Field(), apperrors.ErrInvalidType)
	case "username":
		return fmt.Errorf("%s: %w", fieldErr.Field(), models.ErrUsernameRequired)
	default:
		return fmt.Errorf("%s failed on %s: %w", fieldErr.Field(), fieldErr.Tag(), apperrors.ErrParseFailure)
	}
}

// ParseAmount parses a money value typed at the prompt
func ParseAmount(input string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse amount %q: %w", input, apperrors.ErrParseFailure)
	}
	return amount, nil
}

// AccountTypeFromChoice maps the open-account menu choice to an account type
func AccountTypeFromChoice(choice string) (models.AccountType, error) {
	switch strings.TrimSpace(choice) {
	case "1":
		return models.AccountTypeSavings, nil
	case "2":
		return models.AccountTypeChecking, nil
	default:
		return "", apperrors.ErrInvalidType
	}
}

// Custom validation functions

// validatePositiveAmount validates that an amount is greater than 0 with at most 2 decimal places
func validatePositiveAmount(fl validator.FieldLevel) bool {
	amount, ok := amountFromField(fl)
	if !ok {
		return false
	}
	return amount.IsPositive() && models.HasCurrencyPrecision(amount)
}

// validateNonNegativeAmount accepts zero, which is a valid opening balance
func validateNonNegativeAmount(fl validator.FieldLevel) bool {
	amount, ok := amountFromField(fl)
	if !ok {
		return false
	}
	return !amount.IsNegative() && models.HasCurrencyPrecision(amount)
}

// validateAccountType accepts the two open-account menu choices
func validateAccountType(fl validator.FieldLevel) bool {
	_, err := AccountTypeFromChoice(fl.Field().String())
	return err == nil
}

// validateUsername only rejects blank usernames
func validateUsername(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func amountFromField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	apperrors "console-bank/internal/errors"
	"console-bank/internal/models"
	"console-bank/internal/services"
	"console-bank/internal/validation"

	"github.com/shopspring/decimal"
)

// StatementTimeLayout formats transaction timestamps on statements
const StatementTimeLayout = "2006-01-02 15:04:05"

// Controller drives the top-level and session menus. It only parses input,
// prints prompts and renders errors; business rules live in the services.
type Controller struct {
	in          *bufio.Reader
	out         io.Writer
	secrets     SecretReader
	directory   services.UserDirectoryInterface
	accounts    services.AccountServiceInterface
	auditLogger services.AuditLoggerInterface
	validator   *validation.Validator
	logger      *slog.Logger
	session     Session
}

// NewController creates a console controller. in is shared with secrets so
// that buffered input is never split between two readers.
func NewController(
	in *bufio.Reader,
	out io.Writer,
	secrets SecretReader,
	directory services.UserDirectoryInterface,
	accounts services.AccountServiceInterface,
	auditLogger services.AuditLoggerInterface,
	logger *slog.Logger,
) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		in:          in,
		out:         out,
		secrets:     secrets,
		directory:   directory,
		accounts:    accounts,
		auditLogger: auditLogger,
		validator:   validation.GetValidator(),
		logger:      logger,
	}
}

// Session exposes the controller's session, mostly for tests
func (c *Controller) Session() *Session {
	return &c.session
}

// Run shows the top-level menu until Exit or end of input. Domain errors are
// rendered and never returned; only a failing input stream ends Run with an error.
func (c *Controller) Run() error {
	for {
		c.println()
		c.println("Welcome to Console Banking App")
		c.println("1. Register")
		c.println("2. Login")
		c.println("3. Exit")
		option, err := c.prompt("Select an option: ")
		if err != nil {
			return c.finish(err)
		}

		switch option {
		case "1":
			err = c.register()
		case "2":
			err = c.login()
		case "3":
			return nil
		default:
			c.renderError(apperrors.ErrInvalidOption)
		}

		if err != nil {
			return c.finish(err)
		}
	}
}

func (c *Controller) finish(err error) error {
	if errors.Is(err, io.EOF) {
		c.logger.Debug("input closed, exiting")
		return nil
	}
	return err
}

func (c *Controller) register() error {
	input, err := c.readCredentials()
	if err != nil {
		return err
	}

	if err := c.validator.Struct(input); err != nil {
		c.renderError(err)
		return nil
	}

	if _, err := c.directory.Register(input.Username, input.Password); err != nil {
		c.renderError(err)
		return nil
	}

	c.println("Registration successful!")
	return nil
}

func (c *Controller) login() error {
	input, err := c.readCredentials()
	if err != nil {
		return err
	}

	user, err := c.directory.Login(input.Username, input.Password)
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.session.Login(user)
	c.println("Login successful!")
	return c.sessionMenu()
}

func (c *Controller) readCredentials() (validation.CredentialsInput, error) {
	username, err := c.prompt("Enter username: ")
	if err != nil {
		return validation.CredentialsInput{}, err
	}

	c.print("Enter password: ")
	password, err := c.secrets.ReadSecret()
	if err != nil {
		return validation.CredentialsInput{}, err
	}

	return validation.CredentialsInput{Username: username, Password: password}, nil
}

// sessionMenu runs until Logout. End of input logs the user out before
// the error is handed back to Run.
func (c *Controller) sessionMenu() error {
	for c.session.Active() {
		c.println()
		c.println("1. Open Account")
		c.println("2. Deposit")
		c.println("3. Withdraw")
		c.println("4. View Statement")
		c.println("5. Check Balance")
		c.println("6. Calculate Interest")
		c.println("7. Logout")
		option, err := c.prompt("Select an option: ")
		if err != nil {
			c.logout()
			return err
		}

		switch option {
		case "1":
			err = c.recoverAction("open_account", c.openAccount)
		case "2":
			err = c.recoverAction("deposit", c.deposit)
		case "3":
			err = c.recoverAction("withdraw", c.withdraw)
		case "4":
			err = c.recoverAction("view_statement", c.viewStatement)
		case "5":
			err = c.recoverAction("check_balance", c.checkBalance)
		case "6":
			err = c.recoverAction("calculate_interest", c.calculateInterest)
		case "7":
			c.logout()
		default:
			c.renderError(apperrors.ErrInvalidOption)
		}

		if err != nil {
			c.logout()
			return err
		}
	}
	return nil
}

func (c *Controller) logout() {
	user := c.session.Logout()
	if user == nil {
		return
	}
	c.auditLogger.LogLogout(user.ID, user.Username)
}

// openAccount re-prompts for the account type and the initial deposit until
// each is valid
func (c *Controller) openAccount() error {
	holderName, err := c.prompt("Enter account holder's name: ")
	if err != nil {
		return err
	}

	var choice string
	var accountType models.AccountType
	for {
		choice, err = c.prompt("Enter account type (1 for Savings, 2 for Checking): ")
		if err != nil {
			return err
		}
		if accountType, err = validation.AccountTypeFromChoice(choice); err == nil {
			break
		}
		c.renderError(err)
	}

	var input validation.OpenAccountInput
	for {
		line, err := c.prompt("Enter initial deposit amount: ")
		if err != nil {
			return err
		}

		deposit, err := validation.ParseAmount(line)
		if err != nil {
			c.renderError(err)
			continue
		}

		input = validation.OpenAccountInput{HolderName: holderName, AccountType: choice, InitialDeposit: deposit}
		if err := c.validator.Struct(input); err != nil {
			c.renderError(err)
			continue
		}
		break
	}

	account, err := c.accounts.OpenAccount(c.session.User(), input.HolderName, accountType, input.InitialDeposit)
	if err != nil {
		c.renderError(err)
		return nil
	}

	c.printf("Account created successfully! Account Number: %s\n", account.Number())
	return nil
}

func (c *Controller) deposit() error {
	account, amount, err := c.selectAccountAndAmount("Enter deposit amount: ")
	if err != nil || account == nil {
		return err
	}

	if err := c.accounts.Deposit(c.session.User(), account, amount); err != nil {
		c.renderError(err)
		return nil
	}

	c.printf("Deposited %s. New balance: %s\n", formatMoney(amount), formatMoney(account.Balance()))
	return nil
}

func (c *Controller) withdraw() error {
	account, amount, err := c.selectAccountAndAmount("Enter withdrawal amount: ")
	if err != nil || account == nil {
		return err
	}

	if err := c.accounts.Withdraw(c.session.User(), account, amount); err != nil {
		c.renderError(err)
		return nil
	}

	c.printf("Withdrew %s. New balance: %s\n", formatMoney(amount), formatMoney(account.Balance()))
	return nil
}

// selectAccountAndAmount returns a nil account when the selection or the
// amount was rejected and a message has already been shown
func (c *Controller) selectAccountAndAmount(label string) (*models.Account, decimal.Decimal, error) {
	account, err := c.selectAccount()
	if err != nil || account == nil {
		return nil, decimal.Zero, err
	}

	line, err := c.prompt(label)
	if err != nil {
		return nil, decimal.Zero, err
	}

	amount, err := validation.ParseAmount(line)
	if err == nil {
		err = c.validator.Struct(validation.AmountInput{Amount: amount})
	}
	if err != nil {
		c.renderError(err)
		return nil, decimal.Zero, nil
	}

	return account, amount, nil
}

func (c *Controller) viewStatement() error {
	account, err := c.selectAccount()
	if err != nil || account == nil {
		return err
	}

	summary := account.Summary()
	c.printf("Statement for Account %s\n", account.Number())
	c.printf("Opening Balance: %s\n", formatMoney(summary.OpeningBalance))
	for t := range account.Statement() {
		c.printf("%s: %s - %s\n", t.CreatedAt().Format(StatementTimeLayout), t.Type(), formatMoney(t.Amount()))
	}
	c.printf("Closing Balance: %s\n", formatMoney(summary.ClosingBalance))
	return nil
}

func (c *Controller) checkBalance() error {
	account, err := c.selectAccount()
	if err != nil || account == nil {
		return err
	}

	c.printf("Current Balance: %s\n", formatMoney(account.Balance()))
	return nil
}

// calculateInterest prints one line per savings account
func (c *Controller) calculateInterest() error {
	user := c.session.User()
	if !user.HasAccounts() {
		c.renderError(apperrors.ErrNoAccounts)
		return nil
	}

	results := c.accounts.AccrueInterest(user)
	if len(results) == 0 {
		c.renderError(apperrors.ErrNoSavings)
		return nil
	}

	for _, result := range results {
		if result.Err != nil {
			c.renderError(result.Err)
			continue
		}
		c.printf("Interest of %s added. New balance: %s\n", formatMoney(result.Amount), formatMoney(result.Account.Balance()))
	}
	return nil
}

// selectAccount lists the user's accounts and reads a 1-based choice. A nil
// account with a nil error means the choice was rejected and reported.
func (c *Controller) selectAccount() (*models.Account, error) {
	user := c.session.User()
	if !user.HasAccounts() {
		c.renderError(apperrors.ErrNoAccounts)
		return nil, nil
	}

	c.println("Select an account by number:")
	for i, account := range user.Accounts() {
		c.printf("%d. %s\n", i+1, account.Number())
	}

	line, err := c.readLine()
	if err != nil {
		return nil, err
	}

	index, err := strconv.Atoi(line)
	if err != nil {
		c.renderError(fmt.Errorf("parse selection %q: %w", line, apperrors.ErrParseFailure))
		return nil, nil
	}

	account, ok := user.SelectAccount(index)
	if !ok {
		c.renderError(apperrors.ErrInvalidSelection)
		return nil, nil
	}
	return account, nil
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(models.CurrencyPrecision)
}

func (c *Controller) renderError(err error) {
	code := apperrors.CodeFor(err)
	if code == apperrors.SystemUnexpectedError {
		c.logger.Error("unexpected error", "error", err)
	} else {
		c.logger.Debug("operation declined", "code", string(code), "error", err)
	}
	c.println(apperrors.Message(err))
}

func (c *Controller) prompt(label string) (string, error) {
	c.print(label)
	return c.readLine()
}

// readLine returns the next line without its line ending. A final line with
// no trailing newline is still returned; io.EOF follows on the next call.
func (c *Controller) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (c *Controller) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Controller) println(s ...string) {
	fmt.Fprintln(c.out, strings.Join(s, ""))
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

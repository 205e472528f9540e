package console

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"console-bank/internal/models"
	"console-bank/internal/repositories"
	"console-bank/internal/services"
	"console-bank/internal/services/service_mocks"
)

// ControllerTestSuite drives the menus against mocked services
type ControllerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	directory   *service_mocks.MockUserDirectoryInterface
	accounts    *service_mocks.MockAccountServiceInterface
	auditLogger *service_mocks.MockAuditLoggerInterface
	user        *models.User
	sequence    *models.AccountNumberSequence
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerTestSuite))
}

func (s *ControllerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.directory = service_mocks.NewMockUserDirectoryInterface(s.ctrl)
	s.accounts = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.sequence = models.NewAccountNumberSequence()

	user, err := models.NewUser("bob", "hash", nil)
	s.Require().NoError(err)
	s.user = user
}

func (s *ControllerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ControllerTestSuite) run(input string) (*Controller, string) {
	var out bytes.Buffer
	in := bufio.NewReader(strings.NewReader(input))
	c := NewController(in, &out, NewMaskedReader(in, &out), s.directory, s.accounts, s.auditLogger, nil)
	s.Require().NoError(c.Run())
	return c, out.String()
}

// expectLogin logs bob in and expects him to be logged out once
func (s *ControllerTestSuite) expectLogin() {
	s.directory.EXPECT().Login("bob", "pw").Return(s.user, nil)
	s.auditLogger.EXPECT().LogLogout(s.user.ID, "bob").Times(1)
}

func (s *ControllerTestSuite) openAccount(accountType models.AccountType, balance string) *models.Account {
	account, err := s.user.OpenAccount(s.sequence, "Bob", accountType, decimal.RequireFromString(balance))
	s.Require().NoError(err)
	return account
}

func (s *ControllerTestSuite) TestRun_InvalidOptionThenExit() {
	_, out := s.run("9\n\n3\n")

	s.Equal(2, strings.Count(out, "Invalid option. Please try again."))
	s.Contains(out, "Welcome to Console Banking App")
}

func (s *ControllerTestSuite) TestRun_EndOfInputExits() {
	_, out := s.run("")
	s.Contains(out, "Select an option: ")
}

func (s *ControllerTestSuite) TestRegister_Success() {
	s.directory.EXPECT().Register("carol", "s3cret").Return(s.user, nil)

	_, out := s.run("1\ncarol\ns3cret\n3\n")

	s.Contains(out, "Enter password: ******\n")
	s.Contains(out, "Registration successful!")
}

func (s *ControllerTestSuite) TestRegister_AlreadyExists() {
	s.directory.EXPECT().Register("bob", "pw").Return(nil, services.ErrAlreadyExists)

	_, out := s.run("1\nbob\npw\n3\n")

	s.Contains(out, "Username already exists. Please choose another.")
	s.NotContains(out, "Registration successful!")
}

func (s *ControllerTestSuite) TestRegister_MultiWordUsername() {
	s.directory.EXPECT().Register("john doe", "pw").Return(s.user, nil)

	_, out := s.run("1\njohn doe\npw\n3\n")

	s.Contains(out, "Registration successful!")
	s.NotContains(out, "Username cannot be empty.")
}

func (s *ControllerTestSuite) TestRegister_BlankUsernameRejected() {
	_, out := s.run("1\n   \npw\n3\n")
	s.Contains(out, "Username cannot be empty.")
}

func (s *ControllerTestSuite) TestLogin_InvalidCredentials() {
	s.directory.EXPECT().Login("bob", "nope").Return(nil, services.ErrInvalidCredentials)

	c, out := s.run("2\nbob\nnope\n3\n")

	s.Contains(out, "Invalid username or password.")
	s.False(c.Session().Active())
}

func (s *ControllerTestSuite) TestLogin_EndOfInputLogsOut() {
	s.expectLogin()

	c, out := s.run("2\nbob\npw\n")

	s.Contains(out, "Login successful!")
	s.Contains(out, "7. Logout")
	s.False(c.Session().Active())
}

func (s *ControllerTestSuite) TestLogout_ReturnsToTopMenu() {
	s.expectLogin()

	c, out := s.run("2\nbob\npw\n7\n3\n")

	s.False(c.Session().Active())
	s.Equal(2, strings.Count(out, "Welcome to Console Banking App"))
}

func (s *ControllerTestSuite) TestSessionMenu_NoAccounts() {
	s.expectLogin()

	_, out := s.run("2\nbob\npw\n2\n3\n4\n5\n6\n8\n7\n3\n")

	s.Equal(5, strings.Count(out, "No accounts available."))
	s.Equal(1, strings.Count(out, "Invalid option. Please try again."))
}

func (s *ControllerTestSuite) TestOpenAccount_Reprompts() {
	s.expectLogin()
	s.accounts.EXPECT().
		OpenAccount(s.user, "Bob", models.AccountTypeChecking, gomock.Any()).
		DoAndReturn(func(user *models.User, holderName string, accountType models.AccountType, deposit decimal.Decimal) (*models.Account, error) {
			s.True(decimal.RequireFromString("25.5").Equal(deposit))
			return user.OpenAccount(s.sequence, holderName, accountType, deposit)
		})

	_, out := s.run("2\nbob\npw\n1\nBob\n3\nx\n2\nabc\n-5\n1.001\n25.5\n7\n3\n")

	s.Equal(2, strings.Count(out, "Invalid account type. Enter 1 for Savings or 2 for Checking."))
	s.Equal(1, strings.Count(out, "Invalid input. Please enter a number."))
	s.Equal(2, strings.Count(out, "Amount cannot be negative and may have at most two decimal places."))
	s.Equal(4, strings.Count(out, "Enter initial deposit amount: "))
	s.Contains(out, "Account created successfully! Account Number: AC1001")
}

func (s *ControllerTestSuite) TestOpenAccount_EndOfInputWhileReprompting() {
	s.expectLogin()

	_, out := s.run("2\nbob\npw\n1\nBob\n9\n")
	s.Contains(out, "Invalid account type.")
}

func (s *ControllerTestSuite) TestDeposit_Success() {
	s.expectLogin()
	account := s.openAccount(models.AccountTypeSavings, "100")
	s.accounts.EXPECT().Deposit(s.user, account, gomock.Any()).DoAndReturn(
		func(_ *models.User, a *models.Account, amount decimal.Decimal) error {
			return a.Deposit(amount)
		})

	_, out := s.run("2\nbob\npw\n2\n1\n50\n7\n3\n")

	s.Contains(out, "Select an account by number:\n1. AC1001\n")
	s.Contains(out, "Deposited 50.00. New balance: 150.00")
}

func (s *ControllerTestSuite) TestDeposit_InvalidAmountNotSubmitted() {
	s.expectLogin()
	s.openAccount(models.AccountTypeSavings, "100")

	_, out := s.run("2\nbob\npw\n2\n1\n0\n2\n1\nten\n7\n3\n")

	s.Contains(out, "Amount must be greater than zero with at most two decimal places.")
	s.Contains(out, "Invalid input. Please enter a number.")
}

func (s *ControllerTestSuite) TestWithdraw_InsufficientBalance() {
	s.expectLogin()
	account := s.openAccount(models.AccountTypeChecking, "10")
	s.accounts.EXPECT().Withdraw(s.user, account, gomock.Any()).Return(models.ErrInsufficientBalance)

	_, out := s.run("2\nbob\npw\n3\n1\n20\n7\n3\n")

	s.Contains(out, "Insufficient balance.")
	s.NotContains(out, "Withdrew")
}

func (s *ControllerTestSuite) TestSelectAccount_Rejected() {
	s.expectLogin()
	s.openAccount(models.AccountTypeChecking, "10")

	_, out := s.run("2\nbob\npw\n5\nfirst\n5\n2\n5\n0\n7\n3\n")

	s.Equal(1, strings.Count(out, "Invalid input. Please enter a number."))
	s.Equal(2, strings.Count(out, "Invalid account selection."))
	s.NotContains(out, "Current Balance")
}

func (s *ControllerTestSuite) TestCheckBalance() {
	s.expectLogin()
	s.openAccount(models.AccountTypeChecking, "10")
	s.openAccount(models.AccountTypeSavings, "12.5")

	_, out := s.run("2\nbob\npw\n5\n2\n7\n3\n")

	s.Contains(out, "1. AC1001\n2. AC1002\n")
	s.Contains(out, "Current Balance: 12.50")
}

func (s *ControllerTestSuite) TestCalculateInterest_RendersEachSavingsAccount() {
	s.expectLogin()
	first := s.openAccount(models.AccountTypeSavings, "100")
	second := s.openAccount(models.AccountTypeSavings, "200")
	s.accounts.EXPECT().AccrueInterest(s.user).Return([]models.InterestResult{
		{Account: first, Err: models.ErrNotEligible},
		{Account: second, Amount: decimal.RequireFromString("6")},
	})

	_, out := s.run("2\nbob\npw\n6\n7\n3\n")

	s.Contains(out, "Interest calculation is only available for savings accounts once a month.")
	s.Contains(out, "Interest of 6.00 added. New balance: 200.00")
}

func (s *ControllerTestSuite) TestCalculateInterest_NoSavings() {
	s.expectLogin()
	s.openAccount(models.AccountTypeChecking, "100")
	s.accounts.EXPECT().AccrueInterest(s.user).Return(nil)

	_, out := s.run("2\nbob\npw\n6\n7\n3\n")

	s.Contains(out, "No savings accounts available.")
}

func (s *ControllerTestSuite) TestSessionMenu_RecoversFromPanic() {
	s.expectLogin()
	s.openAccount(models.AccountTypeSavings, "100")
	s.accounts.EXPECT().AccrueInterest(s.user).DoAndReturn(func(*models.User) []models.InterestResult {
		panic("ledger exploded")
	})

	c, out := s.run("2\nbob\npw\n6\n5\n1\n7\n3\n")

	s.Contains(out, "An unexpected error occurred.")
	s.Contains(out, "Current Balance: 100.00")
	s.False(c.Session().Active())
}

// scriptedInput hands out one chunk per Read and runs a hook before a chunk
// is delivered, so tests can move the clock between console interactions
type scriptedInput struct {
	chunks []scriptedChunk
}

type scriptedChunk struct {
	before func()
	text   string
}

func (s *scriptedInput) Read(p []byte) (int, error) {
	if len(s.chunks) == 0 {
		return 0, io.EOF
	}

	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	if chunk.before != nil {
		chunk.before()
	}
	return copy(p, chunk.text), nil
}

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type bankHarness struct {
	clock    *stepClock
	users    repositories.UserRepositoryInterface
	registry *prometheus.Registry
	audit    *bytes.Buffer
	out      *bytes.Buffer
}

func newBankHarness() *bankHarness {
	return &bankHarness{
		clock:    &stepClock{now: time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)},
		users:    repositories.NewUserRepository(),
		registry: prometheus.NewRegistry(),
		audit:    &bytes.Buffer{},
		out:      &bytes.Buffer{},
	}
}

func (h *bankHarness) run(t *testing.T, input io.Reader) {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(h.audit, nil))
	auditLogger := services.NewAuditLogger(logger)
	metrics := services.NewPrometheusMetrics(h.registry)
	directory := services.NewUserDirectory(h.users, services.NewPasswordService(bcrypt.MinCost), auditLogger, metrics, h.clock, logger)
	accounts := services.NewAccountService(models.NewAccountNumberSequence(), auditLogger, metrics, logger)

	in := bufio.NewReader(input)
	c := NewController(in, h.out, NewMaskedReader(in, h.out), directory, accounts, auditLogger, logger)
	require.NoError(t, c.Run())
	assert.False(t, c.Session().Active())
}

func (h *bankHarness) auditEvents(t *testing.T) []string {
	t.Helper()

	var events []string
	for _, line := range strings.Split(strings.TrimSpace(h.audit.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		if eventType, ok := entry["event_type"].(string); ok {
			events = append(events, eventType)
		}
	}
	return events
}

func TestController_EndToEnd(t *testing.T) {
	h := newBankHarness()

	h.run(t, strings.NewReader(strings.Join([]string{
		"1", "alice", "pw1", // register
		"2", "alice", "pw1", // login
		"1", "Alice", "1", "100.00", // open savings
		"2", "1", "50.00", // deposit
		"5", "1", // balance
		"3", "1", "200.00", // withdraw too much
		"5", "1", // balance
		"3", "1", "100.00", // withdraw
		"4", "1", // statement
		"7", // logout
		"3", // exit
	}, "\n")+"\n"))

	out := h.out.String()
	assert.Contains(t, out, "Registration successful!")
	assert.Contains(t, out, "Login successful!")
	assert.Contains(t, out, "Account created successfully! Account Number: AC1001")
	assert.Contains(t, out, "Deposited 50.00. New balance: 150.00")
	assert.Equal(t, 2, strings.Count(out, "Current Balance: 150.00"))
	assert.Contains(t, out, "Insufficient balance.")
	assert.Contains(t, out, "Withdrew 100.00. New balance: 50.00")
	assert.Contains(t, out, "Statement for Account AC1001\n"+
		"Opening Balance: 100.00\n"+
		"2026-01-15 09:30:00: Deposit - 50.00\n"+
		"2026-01-15 09:30:00: Withdrawal - 100.00\n"+
		"Closing Balance: 50.00\n")

	user, err := h.users.GetByUsername("alice")
	require.NoError(t, err)
	account, ok := user.SelectAccount(1)
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("50").Equal(account.Balance()))
	assert.Equal(t, 2, account.TransactionCount())

	assert.Equal(t, []string{
		"user_registered",
		"login_succeeded",
		"account_opened",
		"balance_update",
		"operation_rejected",
		"balance_update",
		"logout",
	}, h.auditEvents(t))

	assert.Equal(t, 1.0, counterValue(t, h.registry, "bank_users_registered_total"))
	assert.Equal(t, 2.0, counterValue(t, h.registry, "bank_transactions_total"))
	series, err := testutil.GatherAndCount(h.registry, "bank_transactions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, series)
}

func TestController_DuplicateRegistrationKeepsOriginal(t *testing.T) {
	h := newBankHarness()

	h.run(t, strings.NewReader("1\nalice\npw1\n1\nalice\nother\n2\nalice\nother\n2\nalice\npw1\n7\n3\n"))

	out := h.out.String()
	assert.Equal(t, 1, strings.Count(out, "Registration successful!"))
	assert.Contains(t, out, "Username already exists. Please choose another.")
	assert.Contains(t, out, "Invalid username or password.")
	assert.Equal(t, 1, strings.Count(out, "Login successful!"))
	assert.Equal(t, 1, h.users.Count())
}

func TestController_MultiWordUsername(t *testing.T) {
	h := newBankHarness()

	h.run(t, strings.NewReader("1\njohn doe\npw\n2\njohn doe\npw\n7\n3\n"))

	out := h.out.String()
	assert.Contains(t, out, "Registration successful!")
	assert.Contains(t, out, "Login successful!")
	assert.Equal(t, 1, h.users.Count())

	user, err := h.users.GetByUsername("john doe")
	require.NoError(t, err)
	assert.Equal(t, "john doe", user.Username)
}

func TestController_AccountNumbersSharedAcrossUsers(t *testing.T) {
	h := newBankHarness()

	h.run(t, strings.NewReader(strings.Join([]string{
		"1", "alice", "a",
		"1", "bob", "b",
		"2", "alice", "a", "1", "Alice", "1", "10", "7",
		"2", "bob", "b", "1", "Bob", "2", "20", "1", "Bob", "1", "0", "7",
		"2", "alice", "a", "1", "Alice", "2", "5", "7",
		"3",
	}, "\n")+"\n"))

	out := h.out.String()
	for _, number := range []string{"AC1001", "AC1002", "AC1003", "AC1004"} {
		assert.Contains(t, out, "Account created successfully! Account Number: "+number)
	}
}

func TestController_InterestOncePerWindow(t *testing.T) {
	h := newBankHarness()

	h.run(t, &scriptedInput{chunks: []scriptedChunk{
		{text: "1\ncarol\npw\n2\ncarol\npw\n1\nCarol\n1\n100.00\n1\nCarol\n2\n40\n6\n"},
		{before: func() { h.clock.Advance(30 * 24 * time.Hour) }, text: "6\n6\n4\n1\n7\n3\n"},
	}})

	out := h.out.String()
	assert.Equal(t, 2, strings.Count(out, "Interest calculation is only available for savings accounts once a month."))
	assert.Equal(t, 1, strings.Count(out, "Interest of 3.00 added. New balance: 103.00"))
	assert.Contains(t, out, "Statement for Account AC1001\nOpening Balance: 100.00\n2026-02-14 09:30:00: Interest - 3.00\nClosing Balance: 103.00\n")
}

func counterValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() == name {
			var total float64
			for _, metric := range family.GetMetric() {
				total += metric.GetCounter().GetValue()
			}
			return total
		}
	}
	return 0
}

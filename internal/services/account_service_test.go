package services

import (
	"fmt"
	"strings"
	"testing"

	"bvdu-bank/internal/config"
	"bvdu-bank/internal/database"
	"bvdu-bank/internal/dto"
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountServiceTestSuite runs the ledger operations against a seeded data directory
type AccountServiceTestSuite struct {
	suite.Suite
	bank *testBank
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.bank = newTestBank(s.T())
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestCreateAccount_Success() {
	pin := gofakeit.Number(models.MinPIN, models.MaxPIN)
	deposit := decimal.NewFromFloat(gofakeit.Price(1, 5000)).Round(2)

	account, err := s.bank.Accounts.CreateAccount(dto.CreateAccountRequest{
		Name:           "Priya",
		AccountType:    "current",
		PIN:            pin,
		InitialDeposit: deposit,
	})

	s.Require().NoError(err)
	s.Equal(1005, account.Number)
	s.Equal(models.AccountTypeCurrent, account.Type)
	s.Equal("priya@bvdu", account.UPI)
	s.True(account.Balance.Equal(deposit))
	s.True(account.Active)
	s.False(account.Frozen)
	s.True(account.LastLogin.Equal(database.TestNow))

	txs, err := s.bank.db.Transactions.GetByAccount(1005)
	s.Require().NoError(err)
	s.Require().Len(txs, 1)
	s.Equal(models.TransactionTypeCreate, txs[0].Type)
	s.True(txs[0].Amount.Equal(deposit))
	s.True(txs[0].BalanceAfter.Equal(deposit))
	s.Equal("Account created (UPI:priya@bvdu)", txs[0].Note)

	s.Contains(s.bank.auditEntries(s.T()), "CREATE_ACCOUNT|1005|Priya|priya@bvdu")
	notes, err := s.bank.db.AuditLog.ListNotifications(1005, 0)
	s.Require().NoError(err)
	s.Require().Len(notes, 1)
	s.Equal("Welcome! Account created.", notes[0].Message)

	reopened := database.ReopenTestDB(s.T(), s.bank.db)
	stored, err := reopened.Accounts.GetByNumber(1005)
	s.Require().NoError(err)
	s.Equal(pin, stored.PIN)
}

func (s *AccountServiceTestSuite) TestCreateAccount_ExplicitUpiIsNormalized() {
	local := gofakeit.LetterN(8)

	account, err := s.bank.Accounts.CreateAccount(dto.CreateAccountRequest{
		Name: "Ravi Kumar",
		PIN:  4321,
		UPI:  local + "@BVDU",
	})

	s.Require().NoError(err)
	s.Equal(strings.ToLower(local)+"@bvdu", account.UPI)
	s.Equal(models.AccountTypeSavings, account.Type)
	s.True(account.Balance.IsZero())
}

func (s *AccountServiceTestSuite) TestCreateAccount_PaddedUpiMatchesTransferLookup() {
	account, err := s.bank.Accounts.CreateAccount(dto.CreateAccountRequest{Name: "Neha", PIN: 4321, UPI: " nehak "})
	s.Require().NoError(err)
	s.Equal("nehak@bvdu", account.UPI)

	session := s.bank.login(s.T(), 1001, 1234)
	_, err = s.bank.Accounts.TransferByUPI(session, " NehaK@bvdu ", d("10"))
	s.Require().NoError(err)
	s.True(s.bank.account(s.T(), account.Number).Balance.Equal(d("10")))
}

func (s *AccountServiceTestSuite) TestCreateAccount_UpiFallsBackToAccountNumber() {
	account, err := s.bank.Accounts.CreateAccount(dto.CreateAccountRequest{Name: "Mary Jane", PIN: 4321})

	s.Require().NoError(err)
	s.Equal("1005@bvdu", account.UPI)
}

func (s *AccountServiceTestSuite) TestCreateAccount_Rejections() {
	tests := []struct {
		name    string
		req     dto.CreateAccountRequest
		wantErr error
	}{
		{"short pin", dto.CreateAccountRequest{Name: "Neha", PIN: 999}, ErrInvalidPin},
		{"five digit pin", dto.CreateAccountRequest{Name: "Neha", PIN: 10000}, ErrInvalidPin},
		{"empty name", dto.CreateAccountRequest{Name: "  ", PIN: 1111}, ErrInvalidName},
		{"pipe in name", dto.CreateAccountRequest{Name: "Ne|ha", PIN: 1111}, ErrInvalidName},
		{"unknown type", dto.CreateAccountRequest{Name: "Neha", AccountType: "Gold", PIN: 1111}, ErrInvalidAccountType},
		{"negative deposit", dto.CreateAccountRequest{Name: "Neha", PIN: 1111, InitialDeposit: d("-1")}, ErrInvalidAmount},
		{"foreign domain", dto.CreateAccountRequest{Name: "Neha", PIN: 1111, UPI: "neha@gmail"}, ErrInvalidUpi},
		{"punctuation", dto.CreateAccountRequest{Name: "Neha", PIN: 1111, UPI: "ne.ha"}, ErrInvalidUpi},
		{"taken upi", dto.CreateAccountRequest{Name: "Neha", PIN: 1111, UPI: "ADARSH@bvdu"}, ErrDuplicateUpi},
		{"taken derived upi", dto.CreateAccountRequest{Name: "Achyut", PIN: 1111}, ErrDuplicateUpi},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.bank.Accounts.CreateAccount(tt.req)
			s.ErrorIs(err, tt.wantErr)
		})
	}
	s.Equal(4, s.bank.db.Accounts.Count())
}

func (s *AccountServiceTestSuite) TestCreateAccount_ReportsEveryRejectedField() {
	_, err := s.bank.Accounts.CreateAccount(dto.CreateAccountRequest{Name: "", PIN: 12, InitialDeposit: d("-5")})

	s.ErrorIs(err, ErrInvalidName)
	s.Equal([]string{
		"name failed required",
		"pin failed account_pin",
		"initial_deposit failed gte=0",
	}, apperrors.DetailsOf(err))
	s.Equal(4, s.bank.db.Accounts.Count())
}

func (s *AccountServiceTestSuite) TestCreateAccount_LimitReached() {
	cfg := config.Default(s.T().TempDir())
	cfg.Ledger.MaxAccounts = 4
	bank := newTestBankWithConfig(s.T(), cfg)

	_, err := bank.Accounts.CreateAccount(dto.CreateAccountRequest{Name: "Priya", PIN: 1111})

	s.ErrorIs(err, ErrAccountLimitReached)
}

func (s *AccountServiceTestSuite) TestAuthenticate_Success() {
	session, err := s.bank.Accounts.Authenticate(1001, 1234)

	s.Require().NoError(err)
	s.Equal(1001, session.AccountNumber)
	s.NotEmpty(session.ID.String())

	account, err := s.bank.Accounts.GetAccount(session)
	s.Require().NoError(err)
	s.Equal("adarsh", account.Name)
}

func (s *AccountServiceTestSuite) TestAuthenticate_LockoutAfterThreeWrongPins() {
	for i := 0; i < 2; i++ {
		_, err := s.bank.Accounts.Authenticate(1001, 1111)
		s.ErrorIs(err, ErrWrongPin)
	}
	_, err := s.bank.Accounts.Authenticate(1001, 1111)
	s.ErrorIs(err, ErrAccountFrozen)

	_, err = s.bank.Accounts.Authenticate(1001, 1234)
	s.ErrorIs(err, ErrAccountFrozen)

	account := s.bank.account(s.T(), 1001)
	s.True(account.Frozen)
	s.Equal(3, account.FailedAttempts)
	s.Contains(s.bank.auditEntries(s.T()), "ACCOUNT_FROZEN|1001")

	reopened := database.ReopenTestDB(s.T(), s.bank.db)
	stored, err := reopened.Accounts.GetByNumber(1001)
	s.Require().NoError(err)
	s.True(stored.Frozen)
}

func (s *AccountServiceTestSuite) TestAuthenticate_SuccessResetsFailures() {
	s.bank.clock.atHour(14)
	_, err := s.bank.Accounts.Authenticate(1002, 1111)
	s.ErrorIs(err, ErrWrongPin)
	s.Equal(1, s.bank.account(s.T(), 1002).FailedAttempts)

	s.bank.login(s.T(), 1002, 2345)

	account := s.bank.account(s.T(), 1002)
	s.Equal(0, account.FailedAttempts)
	s.Equal(14, account.LastLogin.Hour())
}

func (s *AccountServiceTestSuite) TestAuthenticate_UnknownAndInactive() {
	_, err := s.bank.Accounts.Authenticate(9999, 1234)
	s.ErrorIs(err, ErrAccountNotFound)

	_, err = s.bank.Accounts.SetActive(1003, false)
	s.Require().NoError(err)
	_, err = s.bank.Accounts.Authenticate(1003, 3456)
	s.ErrorIs(err, ErrAccountInactive)
	s.Equal(0, s.bank.account(s.T(), 1003).FailedAttempts)
}

func (s *AccountServiceTestSuite) TestSession_LogoutAndNil() {
	session := s.bank.login(s.T(), 1001, 1234)
	s.bank.Accounts.Logout(session)

	_, err := s.bank.Accounts.Deposit(session, d("10"))
	s.ErrorIs(err, ErrNoSession)
	_, err = s.bank.Accounts.GetAccount(nil)
	s.ErrorIs(err, ErrNoSession)
	s.True(s.bank.account(s.T(), 1001).Balance.Equal(d("10000")))
}

func (s *AccountServiceTestSuite) TestSession_FrozenAfterLogin() {
	session := s.bank.login(s.T(), 1001, 1234)
	for i := 0; i < 3; i++ {
		_, _ = s.bank.Accounts.Authenticate(1001, 1)
	}

	_, err := s.bank.Accounts.Deposit(session, d("10"))
	s.ErrorIs(err, ErrAccountFrozen)
}

func (s *AccountServiceTestSuite) TestDeposit() {
	session := s.bank.login(s.T(), 1001, 1234)

	account, err := s.bank.Accounts.Deposit(session, d("500"))

	s.Require().NoError(err)
	s.True(account.Balance.Equal(d("10500")))
	txs, err := s.bank.Accounts.MiniStatement(session)
	s.Require().NoError(err)
	s.Require().Len(txs, 1)
	s.Equal(models.TransactionTypeDeposit, txs[0].Type)
	s.True(txs[0].Amount.Equal(d("500")))
	s.True(txs[0].BalanceAfter.Equal(d("10500")))
	s.Equal("Deposit", txs[0].Note)

	notes, err := s.bank.Accounts.Notifications(session, 5)
	s.Require().NoError(err)
	s.Require().NotEmpty(notes)
	s.Equal("Deposit successful.", notes[0].Message)
}

func (s *AccountServiceTestSuite) TestDeposit_InvalidAmounts() {
	session := s.bank.login(s.T(), 1001, 1234)

	for _, amount := range []string{"0", "-5", "0.001"} {
		_, err := s.bank.Accounts.Deposit(session, d(amount))
		s.ErrorIs(err, ErrInvalidAmount, amount)
	}
}

func (s *AccountServiceTestSuite) TestWithdraw() {
	session := s.bank.login(s.T(), 1003, 3456)

	account, err := s.bank.Accounts.Withdraw(session, d("1250.50"))

	s.Require().NoError(err)
	s.True(account.Balance.Equal(d("3749.50")))
	txs, err := s.bank.Accounts.MiniStatement(session)
	s.Require().NoError(err)
	s.True(txs[0].Amount.Equal(d("-1250.50")))
	s.Equal("Withdraw", txs[0].Note)
}

func (s *AccountServiceTestSuite) TestWithdraw_InsufficientFunds() {
	session := s.bank.login(s.T(), 1003, 3456)

	_, err := s.bank.Accounts.Withdraw(session, d("5000.01"))

	s.ErrorIs(err, ErrInsufficientFunds)
	s.True(s.bank.account(s.T(), 1003).Balance.Equal(d("5000")))
	txs, err := s.bank.Accounts.MiniStatement(session)
	s.Require().NoError(err)
	s.Empty(txs)
}

func (s *AccountServiceTestSuite) TestWithdraw_EntireBalance() {
	session := s.bank.login(s.T(), 1003, 3456)

	account, err := s.bank.Accounts.Withdraw(session, d("5000"))

	s.Require().NoError(err)
	s.True(account.Balance.IsZero())
}

func (s *AccountServiceTestSuite) TestTransfer() {
	session := s.bank.login(s.T(), 1001, 1234)

	account, err := s.bank.Accounts.Transfer(session, 1002, d("2500"))

	s.Require().NoError(err)
	s.True(account.Balance.Equal(d("7500")))
	s.True(s.bank.account(s.T(), 1002).Balance.Equal(d("10500")))

	out, err := s.bank.db.Transactions.GetByAccount(1001)
	s.Require().NoError(err)
	s.Require().Len(out, 1)
	s.Equal(models.TransactionTypeTransferOut, out[0].Type)
	s.True(out[0].Amount.Equal(d("-2500")))
	s.Equal("Transfer to 1002", out[0].Note)

	in, err := s.bank.db.Transactions.GetByAccount(1002)
	s.Require().NoError(err)
	s.Require().Len(in, 1)
	s.Equal(models.TransactionTypeTransferIn, in[0].Type)
	s.True(in[0].BalanceAfter.Equal(d("10500")))
	s.Equal("Transfer from 1001", in[0].Note)

	notes, err := s.bank.db.AuditLog.ListNotifications(1002, 1)
	s.Require().NoError(err)
	s.Equal("You have received a transfer.", notes[0].Message)
}

func (s *AccountServiceTestSuite) TestTransfer_Rejections() {
	session := s.bank.login(s.T(), 1001, 1234)
	for i := 0; i < 3; i++ {
		_, _ = s.bank.Accounts.Authenticate(1002, 1)
	}
	_, err := s.bank.Accounts.SetActive(1003, false)
	s.Require().NoError(err)

	tests := []struct {
		name        string
		destination int
		amount      string
		wantErr     error
	}{
		{"same account", 1001, "10", ErrSameAccountTransfer},
		{"unknown destination", 9999, "10", ErrAccountNotFound},
		{"frozen destination", 1002, "10", ErrDestinationUnavailable},
		{"inactive destination", 1003, "10", ErrDestinationUnavailable},
		{"zero amount", 1004, "0", ErrInvalidAmount},
		{"overdraw", 1004, "10000.01", ErrInsufficientFunds},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.bank.Accounts.Transfer(session, tt.destination, d(tt.amount))
			s.ErrorIs(err, tt.wantErr)
		})
	}

	s.True(s.bank.account(s.T(), 1001).Balance.Equal(d("10000")))
	s.True(s.bank.account(s.T(), 1004).Balance.Equal(d("12000")))
}

func (s *AccountServiceTestSuite) TestTransferByUPI() {
	session := s.bank.login(s.T(), 1004, 4567)

	account, err := s.bank.Accounts.TransferByUPI(session, "  ACHYUT@BVDU ", d("1000"))

	s.Require().NoError(err)
	s.True(account.Balance.Equal(d("11000")))
	s.True(s.bank.account(s.T(), 1002).Balance.Equal(d("9000")))

	in, err := s.bank.db.Transactions.GetByAccount(1002)
	s.Require().NoError(err)
	s.Equal(models.TransactionTypeUPIIn, in[0].Type)
	s.Equal("UPI from aabir@bvdu", in[0].Note)
	out, err := s.bank.db.Transactions.GetByAccount(1004)
	s.Require().NoError(err)
	s.Equal(models.TransactionTypeUPIOut, out[0].Type)
	s.Equal("UPI to achyut@bvdu", out[0].Note)

	notes, err := s.bank.db.AuditLog.ListNotifications(1002, 1)
	s.Require().NoError(err)
	s.Equal("You received money via UPI.", notes[0].Message)
}

func (s *AccountServiceTestSuite) TestTransferByUPI_Rejections() {
	session := s.bank.login(s.T(), 1004, 4567)
	_, err := s.bank.Accounts.SetActive(1003, false)
	s.Require().NoError(err)
	for i := 0; i < 3; i++ {
		_, _ = s.bank.Accounts.Authenticate(1001, 1)
	}

	_, err = s.bank.Accounts.TransferByUPI(session, "nobody@bvdu", d("1"))
	s.ErrorIs(err, ErrUpiNotFound)
	_, err = s.bank.Accounts.TransferByUPI(session, "ayush@bvdu", d("1"))
	s.ErrorIs(err, ErrUpiNotFound)
	_, err = s.bank.Accounts.TransferByUPI(session, "adarsh@bvdu", d("1"))
	s.ErrorIs(err, ErrDestinationUnavailable)
	_, err = s.bank.Accounts.TransferByUPI(session, "aabir@bvdu", d("1"))
	s.ErrorIs(err, ErrSameAccountTransfer)
}

func (s *AccountServiceTestSuite) TestTransfers_ConserveTotalBalance() {
	before := s.bank.totalBalance()
	first := s.bank.login(s.T(), 1001, 1234)
	second := s.bank.login(s.T(), 1002, 2345)

	for i := 0; i < 5; i++ {
		amount := decimal.NewFromFloat(gofakeit.Price(1, 900)).Round(2)
		_, err := s.bank.Accounts.Transfer(first, 1003, amount)
		s.Require().NoError(err)
		_, err = s.bank.Accounts.TransferByUPI(second, "adarsh@bvdu", amount)
		s.Require().NoError(err)
	}

	s.True(s.bank.totalBalance().Equal(before))
}

func (s *AccountServiceTestSuite) TestLedger_ReconcilesWithBalances() {
	opening := map[int]decimal.Decimal{}
	for _, a := range s.bank.db.Accounts.List() {
		opening[a.Number] = a.Balance
	}
	created, err := s.bank.Accounts.CreateAccount(dto.CreateAccountRequest{Name: "Zara", PIN: 9876, InitialDeposit: d("100")})
	s.Require().NoError(err)
	opening[created.Number] = decimal.Zero

	first := s.bank.login(s.T(), 1001, 1234)
	second := s.bank.login(s.T(), 1002, 2345)
	trader := s.bank.login(s.T(), 1004, 4567)

	_, err = s.bank.Accounts.Deposit(first, d("250.55"))
	s.Require().NoError(err)
	_, err = s.bank.Accounts.Withdraw(first, d("100.10"))
	s.Require().NoError(err)
	_, err = s.bank.Accounts.Transfer(first, 1003, d("300"))
	s.Require().NoError(err)
	_, err = s.bank.Accounts.TransferByUPI(second, "zara@bvdu", d("75.25"))
	s.Require().NoError(err)
	_, err = s.bank.Trading.Buy(trader, "INFY", d("2"))
	s.Require().NoError(err)
	_, err = s.bank.Trading.Buy(trader, "AAPL", d("1.5"))
	s.Require().NoError(err)
	_, err = s.bank.Trading.Sell(trader, "INFY", d("1"))
	s.Require().NoError(err)
	_, err = s.bank.Accounts.ApplyInterest(d("2.5"))
	s.Require().NoError(err)

	for number, start := range opening {
		txs, err := s.bank.db.Transactions.GetByAccount(number)
		s.Require().NoError(err)

		running := start
		for _, tx := range txs {
			running = running.Add(tx.Amount)
			s.True(tx.BalanceAfter.Equal(running), "account %d %s: balance after %s, running %s",
				number, tx.Type, tx.BalanceAfter, running)
		}
		balance := s.bank.account(s.T(), number).Balance
		s.True(balance.Equal(running), "account %d: balance %s, ledger %s", number, balance, running)
	}
}

func (s *AccountServiceTestSuite) TestMiniStatement_NewestFirstAndLimited() {
	session := s.bank.login(s.T(), 1001, 1234)
	for i := 1; i <= 12; i++ {
		_, err := s.bank.Accounts.Deposit(session, decimal.NewFromInt(int64(i)))
		s.Require().NoError(err)
	}

	txs, err := s.bank.Accounts.MiniStatement(session)

	s.Require().NoError(err)
	s.Len(txs, 10)
	s.True(txs[0].Amount.Equal(d("12")))
	s.True(txs[9].Amount.Equal(d("3")))
}

func (s *AccountServiceTestSuite) TestApplyInterest() {
	for i := 0; i < 3; i++ {
		_, _ = s.bank.Accounts.Authenticate(1002, 1)
	}
	_, err := s.bank.Accounts.SetActive(1004, false)
	s.Require().NoError(err)

	result, err := s.bank.Accounts.ApplyInterest(d("2"))

	s.Require().NoError(err)
	s.Equal(2, result.AccountsCredited)
	s.True(result.TotalInterest.Equal(d("360")))
	s.True(s.bank.account(s.T(), 1001).Balance.Equal(d("10200")))
	s.True(s.bank.account(s.T(), 1002).Balance.Equal(d("8160")))
	s.True(s.bank.account(s.T(), 1003).Balance.Equal(d("5000")))
	s.True(s.bank.account(s.T(), 1004).Balance.Equal(d("12000")))

	txs, err := s.bank.db.Transactions.GetByAccount(1001)
	s.Require().NoError(err)
	s.Require().Len(txs, 1)
	s.Equal(models.TransactionTypeInterest, txs[0].Type)
	s.Equal("Interest applied 2.00%", txs[0].Note)
}

func (s *AccountServiceTestSuite) TestApplyInterest_InvalidRate() {
	_, err := s.bank.Accounts.ApplyInterest(decimal.Zero)
	s.ErrorIs(err, ErrInvalidRate)
	_, err = s.bank.Accounts.ApplyInterest(d("-1"))
	s.ErrorIs(err, ErrInvalidRate)
}

func (s *AccountServiceTestSuite) TestUnfreeze() {
	for i := 0; i < 3; i++ {
		_, _ = s.bank.Accounts.Authenticate(1001, 1)
	}

	account, err := s.bank.Accounts.Unfreeze(1001)

	s.Require().NoError(err)
	s.False(account.Frozen)
	s.Equal(0, account.FailedAttempts)
	s.bank.login(s.T(), 1001, 1234)

	_, err = s.bank.Accounts.Unfreeze(4242)
	s.ErrorIs(err, ErrAccountNotFound)
}

func (s *AccountServiceTestSuite) TestMetrics_RecordLedgerOperations() {
	session := s.bank.login(s.T(), 1001, 1234)
	_, err := s.bank.Accounts.Deposit(session, d("1"))
	s.Require().NoError(err)
	_, err = s.bank.Accounts.Withdraw(session, d("999999"))
	s.Require().Error(err)

	s.Equal(1.0, counterValue(s.bank.metrics.ledgerOperations, "deposit", "success"))
	s.Equal(1.0, counterValue(s.bank.metrics.ledgerOperations, "withdraw", "rejected"))
	s.Equal(1.0, counterValue(s.bank.metrics.authenticationEvents, "login"))
}

// AccountServicePersistenceTestSuite covers failures of the transaction log
type AccountServicePersistenceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockTx  *repository_mocks.MockTransactionRepositoryInterface
	db      *database.DB
	service AccountServiceInterface
}

func (s *AccountServicePersistenceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockTx = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.db = database.SetupTestDB(s.T())

	clock := &fixedClock{now: database.TestNow}
	audit := NewAuditService(s.db.AuditLog, clock, NoopMetrics{}, discardLogger())
	s.service = NewAccountService(s.db.Accounts, s.mockTx, audit, NoopMetrics{}, newTestLock(), clock, s.db.Config, discardLogger())
}

func (s *AccountServicePersistenceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountServicePersistenceSuite(t *testing.T) {
	suite.Run(t, new(AccountServicePersistenceTestSuite))
}

func (s *AccountServicePersistenceTestSuite) TestDeposit_LogFailureKeepsMutation() {
	session, err := s.service.Authenticate(1001, 1234)
	s.Require().NoError(err)

	s.mockTx.EXPECT().
		Append(gomock.Any()).
		Return(fmt.Errorf("failed to append: %w", apperrors.ErrPersistence))

	account, err := s.service.Deposit(session, d("100"))

	s.Require().Error(err)
	s.True(apperrors.IsPersistence(err))
	s.Equal(apperrors.SystemPersistenceFailure, apperrors.CodeOf(err))
	s.Require().NotNil(account)
	s.True(account.Balance.Equal(d("10100")))

	reopened := database.ReopenTestDB(s.T(), s.db)
	stored, err := reopened.Accounts.GetByNumber(1001)
	s.Require().NoError(err)
	s.True(stored.Balance.Equal(d("10100")))
}

func (s *AccountServicePersistenceTestSuite) TestTransfer_LogFailureKeepsBothLegs() {
	session, err := s.service.Authenticate(1001, 1234)
	s.Require().NoError(err)

	gomock.InOrder(
		s.mockTx.EXPECT().Append(gomock.Any()).DoAndReturn(func(tx *models.Transaction) error {
			s.Equal(models.TransactionTypeTransferOut, tx.Type)
			return nil
		}),
		s.mockTx.EXPECT().Append(gomock.Any()).DoAndReturn(func(tx *models.Transaction) error {
			s.Equal(models.TransactionTypeTransferIn, tx.Type)
			return fmt.Errorf("disk full: %w", apperrors.ErrPersistence)
		}),
	)

	account, err := s.service.Transfer(session, 1002, d("50"))

	s.True(apperrors.IsPersistence(err))
	s.Require().NotNil(account)
	s.True(account.Balance.Equal(d("9950")))
	stored, getErr := s.db.Accounts.GetByNumber(1002)
	s.Require().NoError(getErr)
	s.True(stored.Balance.Equal(d("8050")))
}

func (s *AccountServicePersistenceTestSuite) TestMiniStatement_ReadFailure() {
	session, err := s.service.Authenticate(1001, 1234)
	s.Require().NoError(err)

	s.mockTx.EXPECT().
		GetRecentByAccount(1001, 10).
		Return(nil, fmt.Errorf("read: %w", apperrors.ErrPersistence))

	_, err = s.service.MiniStatement(session)
	s.True(apperrors.IsPersistence(err))
}

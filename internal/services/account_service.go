package services

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"bvdu-bank/internal/config"
	"bvdu-bank/internal/dto"
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"
	"bvdu-bank/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// accountService implements AccountServiceInterface interface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	audit           AuditServiceInterface
	metrics         MetricsRecorderInterface
	lock            sync.Locker
	clock           Clock
	sessions        *sessionRegistry[Session]

	maxFailedAttempts  int
	miniStatementLimit int
	logger             *slog.Logger
}

// NewAccountService creates an account service over the account table and transaction log
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	lock sync.Locker,
	clock Clock,
	cfg *config.Config,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:        accountRepo,
		transactionRepo:    transactionRepo,
		audit:              audit,
		metrics:            metrics,
		lock:               lock,
		clock:              clock,
		sessions:           newSessionRegistry[Session](),
		maxFailedAttempts:  cfg.Security.MaxFailedAttempts,
		miniStatementLimit: cfg.Ledger.MiniStatementLimit,
		logger:             logger,
	}
}

// CreateAccount opens an active, unfrozen account with an optional opening deposit
func (s *accountService) CreateAccount(req dto.CreateAccountRequest) (*models.Account, error) {
	start := time.Now()
	req.Name = strings.TrimSpace(req.Name)
	if errs := validation.GetValidator().Validate(req); len(errs) > 0 {
		return nil, apperrors.Detailed(createAccountError(errs[0]), validation.Messages(errs)...)
	}

	accountType, _ := models.NormalizeAccountType(req.AccountType)

	s.lock.Lock()
	defer s.lock.Unlock()

	number := s.accountRepo.NextNumber()
	upi, err := models.ResolveUPI(req.UPI, req.Name, number)
	if err != nil {
		return nil, err
	}
	if s.accountRepo.UPIExists(upi) {
		return nil, ErrDuplicateUpi
	}

	now := s.clock.Now()
	account := &models.Account{
		Number:    number,
		Name:      req.Name,
		Type:      accountType,
		PIN:       req.PIN,
		Balance:   req.InitialDeposit.Round(models.MoneyPlaces),
		Loan:      decimal.Zero,
		Active:    true,
		UPI:       upi,
		LastLogin: now,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}

	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	p.check("transactions", s.transactionRepo.Append(&models.Transaction{
		AccountNumber: number,
		Timestamp:     now,
		Type:          models.TransactionTypeCreate,
		Amount:        account.Balance,
		BalanceAfter:  account.Balance,
		Note:          fmt.Sprintf("Account created (UPI:%s)", upi),
	}))
	s.audit.Audit(fmt.Sprintf("%s|%d|%s|%s", models.AuditActionCreateAccount, number, account.Name, upi))
	s.audit.Notify(number, "Welcome! Account created.")

	s.logger.Info("account created",
		"account_number", number,
		"account_type", accountType,
		"upi", upi)
	s.recordOperation("create_account", start, nil)

	return account, p.err()
}

func createAccountError(fe validation.FieldError) error {
	switch fe.Field {
	case "pin":
		return ErrInvalidPin
	case "name":
		return ErrInvalidName
	case "account_type":
		return ErrInvalidAccountType
	case "initial_deposit":
		return ErrInvalidAmount
	default:
		return ErrInvalidUpi
	}
}

// Authenticate checks the PIN and opens a session. Three consecutive wrong PINs freeze the account.
func (s *accountService) Authenticate(accountNumber, pin int) (*Session, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "unknown_account"})
		return nil, err
	}
	if err := account.CanOperate(); err != nil {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "blocked"})
		return nil, err
	}

	p := newPersister(s.logger, s.metrics)
	if account.PIN != pin {
		froze := account.RecordFailedAttempt(s.maxFailedAttempts)
		if err := s.accountRepo.Update(account); err != nil {
			return nil, err
		}
		p.save("accounts", s.accountRepo)

		if froze {
			s.audit.Audit(fmt.Sprintf("%s|%d", models.AuditActionAccountFrozen, accountNumber))
			s.logger.Warn("account frozen after failed PIN attempts",
				"account_number", accountNumber,
				"failed_attempts", account.FailedAttempts)
			s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "account_frozen"})
			return nil, p.join(ErrAccountFrozen)
		}
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "wrong_pin"})
		return nil, p.join(ErrWrongPin)
	}

	now := s.clock.Now()
	account.RecordLogin(now)
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}
	p.save("accounts", s.accountRepo)

	session := &Session{ID: uuid.New(), AccountNumber: accountNumber, StartedAt: now}
	s.sessions.add(session.ID, session)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login"})
	s.logger.Debug("customer authenticated", "account_number", accountNumber, "session_id", session.ID)

	return session, p.err()
}

// Logout ends the session; later calls with it fail with ErrNoSession
func (s *accountService) Logout(session *Session) {
	if session == nil {
		return
	}
	if s.sessions.remove(session.ID) {
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "logout"})
	}
}

// SessionAccount resolves a live session to its account and rechecks that it may operate.
// It does not take the engine lock.
func (s *accountService) SessionAccount(session *Session) (*models.Account, error) {
	if session == nil || !s.sessions.has(session.ID, session) {
		return nil, ErrNoSession
	}
	account, err := s.accountRepo.GetByNumber(session.AccountNumber)
	if err != nil {
		return nil, err
	}
	if err := account.CanOperate(); err != nil {
		return nil, err
	}
	return account, nil
}

// GetAccount returns the session's account
func (s *accountService) GetAccount(session *Session) (*models.Account, error) {
	return s.SessionAccount(session)
}

// Deposit credits cash to the session's account
func (s *accountService) Deposit(session *Session, amount decimal.Decimal) (*models.Account, error) {
	start := time.Now()
	amount = amount.Round(models.MoneyPlaces)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	account, err := s.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	if err := account.Credit(amount); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	p.check("transactions", s.appendTransaction(account, models.TransactionTypeDeposit, amount, "Deposit"))
	s.audit.Notify(account.Number, "Deposit successful.")
	s.recordOperation("deposit", start, nil)

	return account, p.err()
}

// Withdraw debits cash from the session's account; the balance never goes negative
func (s *accountService) Withdraw(session *Session, amount decimal.Decimal) (*models.Account, error) {
	start := time.Now()
	amount = amount.Round(models.MoneyPlaces)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	account, err := s.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	if err := account.Debit(amount); err != nil {
		s.recordOperation("withdraw", start, err)
		return nil, err
	}
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	p.check("transactions", s.appendTransaction(account, models.TransactionTypeWithdraw, amount.Neg(), "Withdraw"))
	s.audit.Notify(account.Number, "Withdrawal processed.")
	s.recordOperation("withdraw", start, nil)

	return account, p.err()
}

// Transfer moves cash to another account by number
func (s *accountService) Transfer(session *Session, destination int, amount decimal.Decimal) (*models.Account, error) {
	start := time.Now()
	amount = amount.Round(models.MoneyPlaces)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	source, err := s.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	if destination == source.Number {
		return nil, ErrSameAccountTransfer
	}
	target, err := s.accountRepo.GetByNumber(destination)
	if err != nil {
		return nil, err
	}
	if !target.CanReceive() {
		return nil, ErrDestinationUnavailable
	}

	out := transferLeg{
		txType: models.TransactionTypeTransferOut,
		note:   "Transfer to " + strconv.Itoa(target.Number),
	}
	in := transferLeg{
		txType: models.TransactionTypeTransferIn,
		note:   "Transfer from " + strconv.Itoa(source.Number),
	}
	err = s.moveFunds(source, target, amount, out, in, "You have received a transfer.")
	return s.transferResult("transfer", start, source, err)
}

// TransferByUPI moves cash to the active account holding the handle
func (s *accountService) TransferByUPI(session *Session, upi string, amount decimal.Decimal) (*models.Account, error) {
	start := time.Now()
	amount = amount.Round(models.MoneyPlaces)
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	handle := strings.ToLower(strings.TrimSpace(upi))

	s.lock.Lock()
	defer s.lock.Unlock()

	source, err := s.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	target, err := s.accountRepo.GetByUPI(handle)
	if err != nil || !target.Active {
		return nil, ErrUpiNotFound
	}
	if target.Frozen {
		return nil, ErrDestinationUnavailable
	}
	if target.Number == source.Number {
		return nil, ErrSameAccountTransfer
	}

	out := transferLeg{txType: models.TransactionTypeUPIOut, note: "UPI to " + target.UPI}
	in := transferLeg{txType: models.TransactionTypeUPIIn, note: "UPI from " + source.UPI}
	err = s.moveFunds(source, target, amount, out, in, "You received money via UPI.")
	return s.transferResult("upi_transfer", start, source, err)
}

func (s *accountService) transferResult(operation string, start time.Time, source *models.Account, err error) (*models.Account, error) {
	if err != nil && !apperrors.IsPersistence(err) {
		s.recordOperation(operation, start, err)
		return nil, err
	}
	s.recordOperation(operation, start, nil)
	return source, err
}

type transferLeg struct {
	txType string
	note   string
}

// moveFunds debits source and credits target, persisting both in one save.
// Caller holds the lock.
func (s *accountService) moveFunds(source, target *models.Account, amount decimal.Decimal, out, in transferLeg, message string) error {
	if err := source.Debit(amount); err != nil {
		return err
	}
	if err := target.Credit(amount); err != nil {
		return err
	}
	if err := s.accountRepo.Update(source); err != nil {
		return err
	}
	if err := s.accountRepo.Update(target); err != nil {
		return err
	}

	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	p.check("transactions", s.appendTransaction(source, out.txType, amount.Neg(), out.note))
	p.check("transactions", s.appendTransaction(target, in.txType, amount, in.note))
	s.audit.Notify(target.Number, message)

	s.logger.Info("funds transferred",
		"from_account", source.Number,
		"to_account", target.Number,
		"type", out.txType,
		"amount", amount.StringFixed(models.MoneyPlaces))
	return p.err()
}

// MiniStatement returns the most recent transactions of the session's account, newest first
func (s *accountService) MiniStatement(session *Session) ([]models.Transaction, error) {
	account, err := s.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	return s.transactionRepo.GetRecentByAccount(account.Number, s.miniStatementLimit)
}

// Notifications returns the session's inbox, newest first
func (s *accountService) Notifications(session *Session, limit int) ([]models.Notification, error) {
	account, err := s.SessionAccount(session)
	if err != nil {
		return nil, err
	}
	return s.audit.Notifications(account.Number, limit)
}

// ApplyInterest credits balance*rate/100 to every active savings account, frozen ones included
func (s *accountService) ApplyInterest(ratePercent decimal.Decimal) (*dto.InterestResult, error) {
	start := time.Now()
	if !ratePercent.IsPositive() {
		return nil, ErrInvalidRate
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	result := &dto.InterestResult{TotalInterest: decimal.Zero}
	var credited []*models.Account
	var amounts []decimal.Decimal
	for _, a := range s.accountRepo.List() {
		if !a.Active || !a.IsSavings() {
			continue
		}
		interest := a.Balance.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(models.MoneyPlaces)
		if !interest.IsPositive() {
			continue
		}
		account := a
		if err := account.Credit(interest); err != nil {
			return nil, err
		}
		if err := s.accountRepo.Update(&account); err != nil {
			return nil, err
		}
		credited = append(credited, &account)
		amounts = append(amounts, interest)
		result.AccountsCredited++
		result.TotalInterest = result.TotalInterest.Add(interest)
	}

	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	note := fmt.Sprintf("Interest applied %s%%", ratePercent.StringFixed(models.MoneyPlaces))
	for i, account := range credited {
		p.check("transactions", s.appendTransaction(account, models.TransactionTypeInterest, amounts[i], note))
	}

	s.logger.Info("interest applied",
		"rate_percent", ratePercent.String(),
		"accounts_credited", result.AccountsCredited,
		"total_interest", result.TotalInterest.StringFixed(models.MoneyPlaces))
	s.recordOperation("apply_interest", start, nil)

	return result, p.err()
}

// ListAccounts returns every account in table order
func (s *accountService) ListAccounts() []models.Account {
	return s.accountRepo.List()
}

// Unfreeze clears the frozen flag and the failure counter of any account
func (s *accountService) Unfreeze(accountNumber int) (*models.Account, error) {
	return s.mutateAccount(accountNumber, func(a *models.Account) { a.Unfreeze() })
}

// SetActive deactivates or reactivates an account
func (s *accountService) SetActive(accountNumber int, active bool) (*models.Account, error) {
	return s.mutateAccount(accountNumber, func(a *models.Account) { a.Active = active })
}

func (s *accountService) mutateAccount(accountNumber int, mutate func(a *models.Account)) (*models.Account, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		return nil, err
	}
	mutate(account)
	if err := s.accountRepo.Update(account); err != nil {
		return nil, err
	}

	p := newPersister(s.logger, s.metrics)
	p.save("accounts", s.accountRepo)
	return account, p.err()
}

func (s *accountService) appendTransaction(account *models.Account, txType string, amount decimal.Decimal, note string) error {
	return s.transactionRepo.Append(&models.Transaction{
		AccountNumber: account.Number,
		Timestamp:     s.clock.Now(),
		Type:          txType,
		Amount:        amount,
		BalanceAfter:  account.Balance,
		Note:          note,
	})
}

func (s *accountService) recordOperation(operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "rejected"
	}
	s.metrics.IncrementCounter("ledger_operation", map[string]string{"operation": operation, "status": status})
	s.metrics.RecordProcessingTime("ledger_operation", time.Since(start))
}

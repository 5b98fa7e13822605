package repositories

import (
	"log/slog"
	"strings"
	"sync"

	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/records"
)

var (
	ErrAccountNotFound     = apperrors.New(apperrors.AccountNotFound)
	ErrAccountNumberExists = apperrors.Newf(apperrors.ValidationGeneral, "account number already exists")
	ErrAccountLimitReached = apperrors.New(apperrors.AccountLimitReached)
	ErrUPINotFound         = apperrors.New(apperrors.UpiNotFound)
)

// accountRepository keeps the account table in memory and rewrites accounts.txt on Save
type accountRepository struct {
	path        string
	maxAccounts int
	firstNumber int
	logger      *slog.Logger

	mu       sync.RWMutex
	accounts *table[int, models.Account]
}

// NewAccountRepository creates a new account repository backed by path
func NewAccountRepository(path string, maxAccounts, firstNumber int, logger *slog.Logger) AccountRepositoryInterface {
	return &accountRepository{
		path:        path,
		maxAccounts: maxAccounts,
		firstNumber: firstNumber,
		logger:      logger,
		accounts:    newTable[int, models.Account](),
	}
}

// Load replaces the in-memory table with the contents of the file
func (r *accountRepository) Load() error {
	rows, err := LoadTable(r.path, records.DecodeAccount, r.logger)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts.reset()
	for _, a := range rows {
		if r.accounts.len() >= r.maxAccounts {
			r.logger.Warn("account table full, ignoring remaining rows", "max_accounts", r.maxAccounts)
			break
		}
		r.accounts.put(a.Number, a)
	}
	return nil
}

// Save writes every account to the file
func (r *accountRepository) Save() error {
	r.mu.RLock()
	rows := r.accounts.values()
	r.mu.RUnlock()

	return SaveTable(r.path, rows, records.EncodeAccount)
}

// Create adds a new account to the table
func (r *accountRepository) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts.get(account.Number); exists {
		return ErrAccountNumberExists
	}
	if r.accounts.len() >= r.maxAccounts {
		return ErrAccountLimitReached
	}

	stored := *account
	r.accounts.put(account.Number, &stored)
	return nil
}

// GetByNumber returns a copy of the account
func (r *accountRepository) GetByNumber(number int) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts.get(number)
	if !ok {
		return nil, ErrAccountNotFound
	}
	account := *a
	return &account, nil
}

// GetByUPI finds an account by its handle, ignoring case
func (r *accountRepository) GetByUPI(upi string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.accounts.values() {
		if strings.EqualFold(a.UPI, upi) {
			account := *a
			return &account, nil
		}
	}
	return nil, ErrUPINotFound
}

// UPIExists reports whether any account, active or not, uses the handle
func (r *accountRepository) UPIExists(upi string) bool {
	_, err := r.GetByUPI(upi)
	return err == nil
}

// Update replaces the stored account with the given one
func (r *accountRepository) Update(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts.get(account.Number); !ok {
		return ErrAccountNotFound
	}
	stored := *account
	r.accounts.put(account.Number, &stored)
	return nil
}

// List returns copies of all accounts in table order
func (r *accountRepository) List() []models.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Account, 0, r.accounts.len())
	for _, a := range r.accounts.values() {
		out = append(out, *a)
	}
	return out
}

func (r *accountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.accounts.len()
}

// NextNumber is one past the highest account number, or the configured first number
func (r *accountRepository) NextNumber() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	next := r.firstNumber
	for _, a := range r.accounts.values() {
		if a.Number >= next {
			next = a.Number + 1
		}
	}
	return next
}

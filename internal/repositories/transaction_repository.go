package repositories

import (
	"log/slog"
	"sync"

	"bvdu-bank/internal/models"
	"bvdu-bank/internal/records"
)

// transactionRepository appends to transactions.txt and reads it back on demand
type transactionRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewTransactionRepository creates a new transaction log repository
func NewTransactionRepository(path string, logger *slog.Logger) TransactionRepositoryInterface {
	return &transactionRepository{
		path:   path,
		logger: logger,
	}
}

// Append writes one transaction to the end of the log
func (r *transactionRepository) Append(transaction *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return AppendRecord(r.path, records.EncodeTransaction(transaction))
}

// GetByAccount returns every transaction of the account in file order
func (r *transactionRepository) GetByAccount(number int) ([]models.Transaction, error) {
	r.mu.Lock()
	rows, err := LoadTable(r.path, records.DecodeTransaction, r.logger)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var out []models.Transaction
	for _, t := range rows {
		if t.AccountNumber == number {
			out = append(out, *t)
		}
	}
	return out, nil
}

// GetRecentByAccount returns at most limit transactions of the account, newest first.
// A limit <= 0 returns all of them.
func (r *transactionRepository) GetRecentByAccount(number, limit int) ([]models.Transaction, error) {
	all, err := r.GetByAccount(number)
	if err != nil {
		return nil, err
	}

	n := len(all)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]models.Transaction, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

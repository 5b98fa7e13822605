package repositories

import (
	"log/slog"
	"sync"

	"bvdu-bank/internal/models"
	"bvdu-bank/internal/records"
)

// AuditLogRepository appends to the admin audit log and the notification log
type AuditLogRepository struct {
	auditPath        string
	notificationPath string
	logger           *slog.Logger
	mu               sync.Mutex
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(auditPath, notificationPath string, logger *slog.Logger) AuditLogRepositoryInterface {
	return &AuditLogRepository{
		auditPath:        auditPath,
		notificationPath: notificationPath,
		logger:           logger,
	}
}

func (r *AuditLogRepository) AppendAudit(entry *models.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return AppendRecord(r.auditPath, records.EncodeAudit(entry))
}

// ListAudit returns the last limit entries oldest first; limit <= 0 returns all
func (r *AuditLogRepository) ListAudit(limit int) ([]models.AuditEntry, error) {
	r.mu.Lock()
	rows, err := LoadTable(r.auditPath, records.DecodeAudit, r.logger)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(rows) > limit {
		rows = rows[len(rows)-limit:]
	}
	out := make([]models.AuditEntry, 0, len(rows))
	for _, e := range rows {
		out = append(out, *e)
	}
	return out, nil
}

func (r *AuditLogRepository) AppendNotification(notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return AppendRecord(r.notificationPath, records.EncodeNotification(notification))
}

// ListNotifications returns at most limit messages for the account, newest first
func (r *AuditLogRepository) ListNotifications(accountNumber, limit int) ([]models.Notification, error) {
	r.mu.Lock()
	rows, err := LoadTable(r.notificationPath, records.DecodeNotification, r.logger)
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var out []models.Notification
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].AccountNumber != accountNumber {
			continue
		}
		out = append(out, *rows[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

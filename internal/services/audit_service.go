package services

import (
	"log/slog"

	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"
)

// AuditService writes the append-only audit trail and customer notifications
type AuditService struct {
	repo    repositories.AuditLogRepositoryInterface
	clock   Clock
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repositories.AuditLogRepositoryInterface, clock Clock, metrics MetricsRecorderInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:    repo,
		clock:   clock,
		metrics: metrics,
		logger:  logger,
	}
}

// Audit appends one timestamped entry
func (s *AuditService) Audit(entry string) {
	e := &models.AuditEntry{Timestamp: s.clock.Now(), Entry: entry}
	if err := s.repo.AppendAudit(e); err != nil {
		s.logger.Warn("failed to write audit entry", "entry", entry, "error", err)
		s.metrics.IncrementCounter("persistence_failure", map[string]string{"table": "audit"})
	}
}

// Notify appends one message to the account's inbox
func (s *AuditService) Notify(accountNumber int, message string) {
	n := &models.Notification{Timestamp: s.clock.Now(), AccountNumber: accountNumber, Message: message}
	if err := s.repo.AppendNotification(n); err != nil {
		s.logger.Warn("failed to write notification",
			"account_number", accountNumber,
			"error", err)
		s.metrics.IncrementCounter("persistence_failure", map[string]string{"table": "notifications"})
	}
}

// AuditLog returns the last limit entries, oldest first
func (s *AuditService) AuditLog(limit int) ([]models.AuditEntry, error) {
	return s.repo.ListAudit(limit)
}

// Notifications returns the account's most recent messages, newest first
func (s *AuditService) Notifications(accountNumber, limit int) ([]models.Notification, error) {
	return s.repo.ListNotifications(accountNumber, limit)
}

package records

import (
	"strconv"

	"bvdu-bank/internal/models"
)

// EncodeAudit writes timestamp|entry; the entry may itself contain separators
func EncodeAudit(e *models.AuditEntry) string {
	return join(formatTime(e.Timestamp), e.Entry)
}

func DecodeAudit(line string) (*models.AuditEntry, error) {
	f, err := fields(line, 2)
	if err != nil {
		return nil, err
	}

	e := &models.AuditEntry{Entry: f[1]}
	if e.Timestamp, err = parseTime("timestamp", f[0]); err != nil {
		return nil, err
	}
	return e, nil
}

// EncodeNotification writes timestamp|accNo|message
func EncodeNotification(n *models.Notification) string {
	return join(formatTime(n.Timestamp), strconv.Itoa(n.AccountNumber), n.Message)
}

func DecodeNotification(line string) (*models.Notification, error) {
	f, err := fields(line, 3)
	if err != nil {
		return nil, err
	}

	n := &models.Notification{Message: f[2]}
	if n.Timestamp, err = parseTime("timestamp", f[0]); err != nil {
		return nil, err
	}
	if n.AccountNumber, err = parseInt("account number", f[1]); err != nil {
		return nil, err
	}
	return n, nil
}

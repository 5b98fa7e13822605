package repositories

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestAuditLogRepository(t *testing.T) {
	suite.Run(t, new(AuditLogRepositorySuite))
}

type AuditLogRepositorySuite struct {
	suite.Suite
	repo AuditLogRepositoryInterface
	at   time.Time
}

func (s *AuditLogRepositorySuite) SetupTest() {
	dir := s.T().TempDir()
	s.repo = NewAuditLogRepository(filepath.Join(dir, "admin_audit.txt"), filepath.Join(dir, "notifications.txt"), discardLogger())
	s.at = time.Date(2024, 2, 29, 9, 15, 0, 0, time.Local)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_AppendAndList() {
	for i := 1; i <= 5; i++ {
		s.Require().NoError(s.repo.AppendAudit(&models.AuditEntry{Timestamp: s.at, Entry: fmt.Sprintf("ENTRY|%d", i)}))
	}

	all, err := s.repo.ListAudit(0)
	s.Require().NoError(err)
	s.Len(all, 5)

	last, err := s.repo.ListAudit(2)
	s.Require().NoError(err)
	s.Require().Len(last, 2)
	s.Equal("ENTRY|4", last[0].Entry)
	s.Equal("ENTRY|5", last[1].Entry)
	s.True(last[1].Timestamp.Equal(s.at))
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_ListEmpty() {
	entries, err := s.repo.ListAudit(10)
	s.NoError(err)
	s.Empty(entries)
}

func (s *AuditLogRepositorySuite) TestAuditLogRepository_Notifications() {
	s.Require().NoError(s.repo.AppendNotification(&models.Notification{Timestamp: s.at, AccountNumber: 1001, Message: "first"}))
	s.Require().NoError(s.repo.AppendNotification(&models.Notification{Timestamp: s.at, AccountNumber: 1002, Message: "other"}))
	s.Require().NoError(s.repo.AppendNotification(&models.Notification{Timestamp: s.at, AccountNumber: 1001, Message: "second"}))

	list, err := s.repo.ListNotifications(1001, 0)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	s.Equal("second", list[0].Message)
	s.Equal("first", list[1].Message)

	list, err = s.repo.ListNotifications(1001, 1)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func TestTransactionRepository_RecentNewestFirst(t *testing.T) {
	repo := NewTransactionRepository(filepath.Join(t.TempDir(), "transactions.txt"), discardLogger())
	at := time.Date(2024, 2, 29, 9, 15, 0, 0, time.Local)

	for i := 1; i <= 12; i++ {
		account := 1001
		if i%4 == 0 {
			account = 1002
		}
		err := repo.Append(&models.Transaction{
			AccountNumber: account,
			Timestamp:     at.Add(time.Duration(i) * time.Minute),
			Type:          models.TransactionTypeDeposit,
			Amount:        decimal.NewFromInt(int64(i)),
			BalanceAfter:  decimal.NewFromInt(int64(i)),
			Note:          "Deposit",
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := repo.GetByAccount(1001)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(all) != 9 {
		t.Fatalf("got %d transactions for 1001, want 9", len(all))
	}

	recent, err := repo.GetRecentByAccount(1001, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	want := []int64{11, 10, 9}
	for i, tx := range recent {
		if !tx.Amount.Equal(decimal.NewFromInt(want[i])) {
			t.Errorf("recent[%d] amount = %s, want %d", i, tx.Amount, want[i])
		}
	}

	everything, err := repo.GetRecentByAccount(1002, 0)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(everything) != 3 {
		t.Errorf("got %d transactions for 1002, want 3", len(everything))
	}
}

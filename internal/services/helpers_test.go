package services

import (
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"bvdu-bank/internal/config"
	"bvdu-bank/internal/database"
	"bvdu-bank/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func (c *fixedClock) atHour(hour int) {
	c.now = time.Date(c.now.Year(), c.now.Month(), c.now.Day(), hour, 0, 0, 0, time.Local)
}

type fixedRandom struct {
	value float64
}

func (r *fixedRandom) Float64() float64 {
	return r.value
}

type testBank struct {
	*Bank
	db      *database.DB
	clock   *fixedClock
	random  *fixedRandom
	metrics *PrometheusMetrics
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBank(t *testing.T) *testBank {
	t.Helper()
	return newTestBankWithConfig(t, config.Default(t.TempDir()))
}

func newTestBankWithConfig(t *testing.T, cfg *config.Config) *testBank {
	t.Helper()

	db := database.SetupTestDBWithConfig(t, cfg)
	clock := &fixedClock{now: database.TestNow}
	random := &fixedRandom{value: 0.5}
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	bank := NewBank(db, BankOptions{Clock: clock, Random: random, Metrics: metrics}, discardLogger())
	return &testBank{Bank: bank, db: db, clock: clock, random: random, metrics: metrics}
}

func (b *testBank) login(t *testing.T, number, pin int) *Session {
	t.Helper()
	session, err := b.Accounts.Authenticate(number, pin)
	require.NoError(t, err)
	return session
}

func (b *testBank) account(t *testing.T, number int) *models.Account {
	t.Helper()
	account, err := b.db.Accounts.GetByNumber(number)
	require.NoError(t, err)
	return account
}

func (b *testBank) auditEntries(t *testing.T) []string {
	t.Helper()
	entries, err := b.db.AuditLog.ListAudit(0)
	require.NoError(t, err)
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Entry)
	}
	return out
}

func (b *testBank) totalBalance() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b.db.Accounts.List() {
		total = total.Add(a.Balance)
	}
	return total
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestLock() sync.Locker {
	return &sync.Mutex{}
}

func counterValue(vec *prometheus.CounterVec, labels ...string) float64 {
	return testutil.ToFloat64(vec.WithLabelValues(labels...))
}

package services

import (
	"crypto/subtle"
	"fmt"
	"log/slog"

	"bvdu-bank/internal/config"
	"bvdu-bank/internal/dto"
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/validation"

	"github.com/google/uuid"
)

// adminService gates the administrator operations behind the admin PIN
type adminService struct {
	accounts AccountServiceInterface
	market   MarketServiceInterface
	audit    AuditServiceInterface
	metrics  MetricsRecorderInterface
	clock    Clock
	sessions *sessionRegistry[AdminSession]
	adminPIN string
	logger   *slog.Logger
}

// NewAdminService creates the administrator console service
func NewAdminService(
	accounts AccountServiceInterface,
	market MarketServiceInterface,
	audit AuditServiceInterface,
	metrics MetricsRecorderInterface,
	clock Clock,
	cfg *config.Config,
	logger *slog.Logger,
) AdminServiceInterface {
	return &adminService{
		accounts: accounts,
		market:   market,
		audit:    audit,
		metrics:  metrics,
		clock:    clock,
		sessions: newSessionRegistry[AdminSession](),
		adminPIN: cfg.Security.AdminPIN,
		logger:   logger,
	}
}

// VerifyPIN opens an admin session when pin matches the configured admin PIN
func (s *adminService) VerifyPIN(pin string) (*AdminSession, error) {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.adminPIN)) != 1 {
		s.audit.Audit(models.AuditActionAdminLoginFailed)
		s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "admin_denied"})
		s.logger.Warn("admin login denied")
		return nil, ErrAdminDenied
	}

	session := &AdminSession{ID: uuid.New(), StartedAt: s.clock.Now()}
	s.sessions.add(session.ID, session)
	s.audit.Audit(models.AuditActionAdminLogin)
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "admin_login"})
	return session, nil
}

// Logout closes the admin session
func (s *adminService) Logout(session *AdminSession) error {
	if err := s.authorize(session); err != nil {
		return err
	}
	s.sessions.remove(session.ID)
	s.audit.Audit(models.AuditActionAdminLogout)
	return nil
}

func (s *adminService) authorize(session *AdminSession) error {
	if session == nil || !s.sessions.has(session.ID, session) {
		return ErrAdminDenied
	}
	return nil
}

func (s *adminService) recordAction(action string) {
	s.metrics.IncrementCounter("admin_action", map[string]string{"action": action})
}

// ListAccounts returns every account including inactive and frozen ones
func (s *adminService) ListAccounts(session *AdminSession) ([]models.Account, error) {
	if err := s.authorize(session); err != nil {
		return nil, err
	}
	return s.accounts.ListAccounts(), nil
}

// SetPrice overrides one asset's quote
func (s *adminService) SetPrice(session *AdminSession, req dto.SetPriceRequest) (*models.PriceRecord, error) {
	if err := s.authorize(session); err != nil {
		return nil, err
	}
	if errs := validation.GetValidator().Validate(req); len(errs) > 0 {
		cause := ErrAssetNotFound
		if errs[0].Field == "price" {
			cause = ErrInvalidPrice
		}
		return nil, apperrors.Detailed(cause, validation.Messages(errs)...)
	}

	price, err := s.market.SetPrice(req.AssetID, req.Price)
	if price != nil {
		s.recordAction("set_price")
	}
	return price, err
}

// RandomizePrices shocks every quote
func (s *adminService) RandomizePrices(session *AdminSession) error {
	if err := s.authorize(session); err != nil {
		return err
	}
	s.recordAction("randomize_prices")
	return s.market.RandomizePrices()
}

// ApplyInterest credits interest to every active savings account
func (s *adminService) ApplyInterest(session *AdminSession, req dto.ApplyInterestRequest) (*dto.InterestResult, error) {
	if err := s.authorize(session); err != nil {
		return nil, err
	}
	if !req.RatePercent.IsPositive() {
		return nil, ErrInvalidRate
	}

	result, err := s.accounts.ApplyInterest(req.RatePercent)
	if result == nil {
		return nil, err
	}
	s.audit.Audit(models.AuditActionApplyInterest)
	s.recordAction("apply_interest")
	return result, err
}

// SetFXRates replaces the exchange rates
func (s *adminService) SetFXRates(session *AdminSession, req dto.SetFXRequest) (models.FXRates, error) {
	if err := s.authorize(session); err != nil {
		return models.FXRates{}, err
	}
	if errs := validation.GetValidator().Validate(req); len(errs) > 0 {
		return models.FXRates{}, apperrors.Detailed(ErrInvalidRate, validation.Messages(errs)...)
	}
	s.recordAction("set_fx")
	return s.market.SetFXRates(req.InrPerUsd, req.InrPerEur)
}

// Unfreeze clears the frozen flag of an account in any state
func (s *adminService) Unfreeze(session *AdminSession, accountNumber int) (*models.Account, error) {
	return s.accountAction(session, accountNumber, models.AuditActionUnfreeze, func() (*models.Account, error) {
		return s.accounts.Unfreeze(accountNumber)
	})
}

// Deactivate closes an account to all PIN operations and incoming transfers
func (s *adminService) Deactivate(session *AdminSession, accountNumber int) (*models.Account, error) {
	return s.accountAction(session, accountNumber, models.AuditActionDeactivate, func() (*models.Account, error) {
		return s.accounts.SetActive(accountNumber, false)
	})
}

// Reactivate reopens a deactivated account
func (s *adminService) Reactivate(session *AdminSession, accountNumber int) (*models.Account, error) {
	return s.accountAction(session, accountNumber, models.AuditActionReactivate, func() (*models.Account, error) {
		return s.accounts.SetActive(accountNumber, true)
	})
}

func (s *adminService) accountAction(session *AdminSession, accountNumber int, action string, apply func() (*models.Account, error)) (*models.Account, error) {
	if err := s.authorize(session); err != nil {
		return nil, err
	}
	account, err := apply()
	if account == nil {
		return nil, err
	}
	s.audit.Audit(fmt.Sprintf("%s|%d", action, accountNumber))
	s.recordAction(action)
	s.logger.Info("admin account action", "action", action, "account_number", accountNumber)
	return account, err
}

// TickMarket forces one market step regardless of the tick limiter
func (s *adminService) TickMarket(session *AdminSession) (int, error) {
	if err := s.authorize(session); err != nil {
		return 0, err
	}
	return s.market.Tick()
}

// AuditLog returns the last limit audit entries, oldest first
func (s *adminService) AuditLog(session *AdminSession, limit int) ([]models.AuditEntry, error) {
	if err := s.authorize(session); err != nil {
		return nil, err
	}
	return s.audit.AuditLog(limit)
}

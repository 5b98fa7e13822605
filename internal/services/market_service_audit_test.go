package services

import (
	"testing"

	"bvdu-bank/internal/database"
	"bvdu-bank/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// MarketServiceAuditTestSuite checks the audit trail written by market operations
type MarketServiceAuditTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockAudit *service_mocks.MockAuditServiceInterface
	service   MarketServiceInterface
}

func (s *MarketServiceAuditTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAudit = service_mocks.NewMockAuditServiceInterface(s.ctrl)

	db := database.SetupTestDB(s.T())
	s.service = NewMarketService(db.Prices, db.FX, s.mockAudit, NoopMetrics{}, newTestLock(),
		&fixedClock{now: database.TestNow}, &fixedRandom{value: 0.5}, db.Config, discardLogger())
}

func (s *MarketServiceAuditTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMarketServiceAuditSuite(t *testing.T) {
	suite.Run(t, new(MarketServiceAuditTestSuite))
}

func (s *MarketServiceAuditTestSuite) TestSetPrice_AuditsOldAndNew() {
	s.mockAudit.EXPECT().Audit("ADMIN_SET_PRICE|TCS|3200.0000->3300.0000").Times(1)

	_, err := s.service.SetPrice("TCS", d("3300"))

	s.NoError(err)
}

func (s *MarketServiceAuditTestSuite) TestSetPrice_RejectedWritesNothing() {
	_, err := s.service.SetPrice("TCS", decimal.Zero)
	s.ErrorIs(err, ErrInvalidPrice)

	_, err = s.service.SetPrice("DOGE", d("1"))
	s.ErrorIs(err, ErrAssetNotFound)
}

func (s *MarketServiceAuditTestSuite) TestSetFXRates_AuditsBothRates() {
	s.mockAudit.EXPECT().Audit("ADMIN_SET_FX|INR_USD=85.000000|INR_EUR=92.500000").Times(1)

	_, err := s.service.SetFXRates(d("85"), d("92.5"))

	s.NoError(err)
}

func (s *MarketServiceAuditTestSuite) TestTickAndRandomize() {
	gomock.InOrder(
		s.mockAudit.EXPECT().Audit("MARKET_TICK|ALL_MARKETS"),
		s.mockAudit.EXPECT().Audit("ADMIN_RANDOMIZE_PRICES"),
	)

	_, err := s.service.Tick()
	s.Require().NoError(err)
	s.NoError(s.service.RandomizePrices())
}

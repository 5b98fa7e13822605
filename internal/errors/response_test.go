package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

// TestNewErrorResponse_BasicUsage tests creating a basic error response
func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthWrongPin, s.traceID)

	s.NotNil(response)
	s.Equal("AUTH_001", response.Error.Code)
	s.Equal("security", response.Error.Kind)
	s.Equal("Invalid PIN", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

// TestNewErrorResponse_WithMultipleOptions tests using multiple functional options
func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	details := []string{"Detail 1", "Detail 2"}
	response := NewErrorResponse(
		AccountNotFound,
		s.traceID,
		WithMessage("Custom message"),
		WithDetails(details...),
	)

	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("Custom message", response.Error.Message)
	s.Equal(details, response.Error.Details)
}

// TestFromError_DomainError keeps the domain message
func (s *ResponseTestSuite) TestFromError_DomainError() {
	err := fmt.Errorf("withdraw: %w", New(AccountInsufficientFunds))

	response := FromError(err, s.traceID)

	s.Equal(string(AccountInsufficientFunds), response.Error.Code)
	s.Equal("validation", response.Error.Kind)
	s.Equal(ExitRejected, response.GetExitStatus())
}

// TestFromError_Persistence prefers the persistence code over the cause
func (s *ResponseTestSuite) TestFromError_Persistence() {
	err := fmt.Errorf("save accounts: %w: %w", ErrPersistence, stderrors.New("disk full"))

	response := FromError(err, s.traceID)

	s.Equal(string(SystemPersistenceFailure), response.Error.Code)
	s.Equal(ExitPersistence, response.GetExitStatus())
	s.Equal(KindPersistence, KindOf(err))
}

// TestFromError_KeepsFieldDetails reports every rejected field of a domain error
func (s *ResponseTestSuite) TestFromError_KeepsFieldDetails() {
	sentinel := New(ValidationInvalidPin)
	err := Detailed(sentinel, "pin failed account_pin", "name failed required")

	response := FromError(err, s.traceID)

	s.True(stderrors.Is(err, sentinel))
	s.Equal(string(ValidationInvalidPin), response.Error.Code)
	s.Equal(sentinel.Message, response.Error.Message)
	s.Equal([]string{"pin failed account_pin", "name failed required"}, response.Error.Details)
	s.Equal(ExitRejected, response.GetExitStatus())
}

// TestDetailed_NoDetails returns the error unchanged
func (s *ResponseTestSuite) TestDetailed_NoDetails() {
	sentinel := New(MarketInvalidRate)

	s.Same(sentinel, Detailed(sentinel))
	s.Nil(Detailed(nil, "ignored"))
	s.Nil(DetailsOf(sentinel))
}

// TestFromError_UnknownError hides nothing but reports it as internal
func (s *ResponseTestSuite) TestFromError_UnknownError() {
	response := FromError(stderrors.New("boom"), s.traceID)

	s.Equal(string(SystemInternalError), response.Error.Code)
	s.Equal([]string{"boom"}, response.Error.Details)
	s.Equal(ExitInternal, response.GetExitStatus())
}

// TestToJSON_EmptyDetails tests JSON serialization omits empty details
func (s *ResponseTestSuite) TestToJSON_EmptyDetails() {
	response := NewErrorResponse(MarketClosed, s.traceID)

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal("MARKET_002", errorMap["code"])
}

// TestErrorsIs_SentinelIdentity checks sentinels behave with errors.Is
func (s *ResponseTestSuite) TestErrorsIs_SentinelIdentity() {
	sentinel := New(UpiNotFound)
	wrapped := fmt.Errorf("transfer: %w", sentinel)

	s.True(stderrors.Is(wrapped, sentinel))
	s.False(stderrors.Is(wrapped, New(UpiNotFound)))
	s.Equal(UpiNotFound, CodeOf(wrapped))
}

// TestString_FormatsCorrectly tests the string representation
func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(TradeNotOwned, s.traceID)
	s.Equal("[TRADE_002] You do not own this asset (trace: "+s.traceID+")", response.String())
}

package errors

// ErrorCode represents a standardized error code used throughout the engine
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthWrongPin      ErrorCode = "AUTH_001"
	AuthAccountFrozen ErrorCode = "AUTH_002"
	AuthAdminDenied   ErrorCode = "AUTH_003"
	AuthNoSession     ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidPin    ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound           ErrorCode = "ACCOUNT_001"
	AccountInactive           ErrorCode = "ACCOUNT_002"
	AccountInsufficientFunds  ErrorCode = "ACCOUNT_003"
	AccountInvalidAmount      ErrorCode = "ACCOUNT_004"
	AccountLimitReached       ErrorCode = "ACCOUNT_005"
	AccountSameTransfer       ErrorCode = "ACCOUNT_006"
	AccountDestinationBlocked ErrorCode = "ACCOUNT_007"
)

// UPI error codes (UPI_*)
const (
	UpiInvalid   ErrorCode = "UPI_001"
	UpiDuplicate ErrorCode = "UPI_002"
	UpiNotFound  ErrorCode = "UPI_003"
)

// Market error codes (MARKET_*)
const (
	MarketAssetNotFound ErrorCode = "MARKET_001"
	MarketClosed        ErrorCode = "MARKET_002"
	MarketInvalidPrice  ErrorCode = "MARKET_003"
	MarketInvalidRate   ErrorCode = "MARKET_004"
)

// Trade error codes (TRADE_*)
const (
	TradeInvalidQuantity     ErrorCode = "TRADE_001"
	TradeNotOwned            ErrorCode = "TRADE_002"
	TradeHoldingLimitReached ErrorCode = "TRADE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemPersistenceFailure ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthWrongPin:      "Invalid PIN",
	AuthAccountFrozen: "Account frozen. Contact admin",
	AuthAdminDenied:   "Invalid admin PIN",
	AuthNoSession:     "No active session",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidPin:    "PIN must be a 4-digit number",

	// Account errors
	AccountNotFound:           "Account not found",
	AccountInactive:           "Account is inactive",
	AccountInsufficientFunds:  "Insufficient funds",
	AccountInvalidAmount:      "Invalid amount",
	AccountLimitReached:       "Account limit reached",
	AccountSameTransfer:       "Cannot transfer to the same account",
	AccountDestinationBlocked: "Destination account cannot receive funds",

	// UPI errors
	UpiInvalid:   "Invalid UPI. Must be letters and/or numbers only, domain must be @bvdu or omitted",
	UpiDuplicate: "UPI already taken",
	UpiNotFound:  "UPI not found",

	// Market errors
	MarketAssetNotFound: "Asset not found",
	MarketClosed:        "Market is currently closed",
	MarketInvalidPrice:  "Price must be positive",
	MarketInvalidRate:   "Rate must be positive",

	// Trade errors
	TradeInvalidQuantity:     "Invalid quantity",
	TradeNotOwned:            "You do not own this asset",
	TradeHoldingLimitReached: "Holdings limit reached",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemPersistenceFailure: "Operation applied but could not be saved",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

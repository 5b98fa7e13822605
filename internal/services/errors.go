package services

import (
	apperrors "bvdu-bank/internal/errors"
	"bvdu-bank/internal/models"
	"bvdu-bank/internal/repositories"
)

var (
	ErrInvalidPin             = apperrors.New(apperrors.ValidationInvalidPin)
	ErrInvalidName            = apperrors.Newf(apperrors.ValidationRequiredField, "Name is required and cannot contain '|' or line breaks")
	ErrInvalidAccountType     = apperrors.Newf(apperrors.ValidationInvalidFormat, "Account type must be Savings or Current")
	ErrDuplicateUpi           = apperrors.New(apperrors.UpiDuplicate)
	ErrInvalidUpi             = models.ErrInvalidUPI
	ErrUpiNotFound            = repositories.ErrUPINotFound
	ErrAccountLimitReached    = repositories.ErrAccountLimitReached
	ErrAccountNotFound        = repositories.ErrAccountNotFound
	ErrAccountInactive        = models.ErrAccountInactive
	ErrAccountFrozen          = models.ErrAccountFrozen
	ErrWrongPin               = apperrors.New(apperrors.AuthWrongPin)
	ErrInvalidAmount          = models.ErrInvalidAmount
	ErrInsufficientFunds      = models.ErrInsufficientFunds
	ErrSameAccountTransfer    = apperrors.New(apperrors.AccountSameTransfer)
	ErrDestinationUnavailable = apperrors.New(apperrors.AccountDestinationBlocked)
	ErrAssetNotFound          = repositories.ErrPriceNotFound
	ErrMarketClosed           = apperrors.New(apperrors.MarketClosed)
	ErrInvalidQuantity        = apperrors.New(apperrors.TradeInvalidQuantity)
	ErrHoldingLimitReached    = repositories.ErrHoldingLimitReached
	ErrNotOwned               = repositories.ErrHoldingNotFound
	ErrInvalidPrice           = apperrors.New(apperrors.MarketInvalidPrice)
	ErrInvalidRate            = apperrors.New(apperrors.MarketInvalidRate)
	ErrAdminDenied            = apperrors.New(apperrors.AuthAdminDenied)
	ErrNoSession              = apperrors.New(apperrors.AuthNoSession)
)

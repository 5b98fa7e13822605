package models

import (
	"strconv"
	"strings"
	"unicode"

	apperrors "bvdu-bank/internal/errors"
)

// UPIDomain is the only domain accepted for payment handles
const UPIDomain = "bvdu"

var ErrInvalidUPI = apperrors.New(apperrors.UpiInvalid)

// NormalizeUPI turns "alice" or " Alice@BVDU" into "alice@bvdu".
// Surrounding whitespace is ignored. The local part must be non-empty ASCII letters and digits; at most one '@' is allowed
// and the domain, when present, must be bvdu.
func NormalizeUPI(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidUPI
	}

	local, domain, hasDomain := strings.Cut(s, "@")
	if hasDomain {
		if strings.Contains(domain, "@") {
			return "", ErrInvalidUPI
		}
		if strings.ToLower(domain) != UPIDomain {
			return "", ErrInvalidUPI
		}
	}

	if local == "" {
		return "", ErrInvalidUPI
	}
	for _, r := range local {
		if r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return "", ErrInvalidUPI
		}
	}

	return strings.ToLower(local) + "@" + UPIDomain, nil
}

// ResolveUPI picks the handle for a new account. An explicit candidate must be valid;
// an empty one falls back to the display name and then to the account number.
func ResolveUPI(candidate, name string, accountNumber int) (string, error) {
	if strings.TrimSpace(candidate) != "" {
		return NormalizeUPI(candidate)
	}
	if upi, err := NormalizeUPI(name); err == nil {
		return upi, nil
	}
	return strconv.Itoa(accountNumber) + "@" + UPIDomain, nil
}

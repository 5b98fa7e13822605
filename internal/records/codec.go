// Package records converts ledger rows to and from the pipe-delimited lines
// stored in the data directory. Each table has one Encode/Decode pair.
package records

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bvdu-bank/internal/models"

	"github.com/shopspring/decimal"
)

const separator = "|"

var (
	ErrFieldCount     = errors.New("wrong number of fields")
	ErrMalformedField = errors.New("malformed field")
)

// fields splits a line into exactly n fields. The last field keeps any separators it contains.
func fields(line string, n int) ([]string, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.SplitN(line, separator, n)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(parts), n)
	}
	return parts, nil
}

func join(values ...string) string {
	return strings.Join(values, separator)
}

func malformed(field, value string, err error) error {
	return fmt.Errorf("%w %s %q: %v", ErrMalformedField, field, value, err)
}

func parseInt(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, malformed(field, value, err)
	}
	return n, nil
}

func parseBool(field, value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, malformed(field, value, errors.New("want 0 or 1"))
	}
}

func parseDecimal(field, value string, places int32) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, malformed(field, value, err)
	}
	return v.Round(places), nil
}

func parseTime(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(models.TimestampLayout, value, time.Local)
	if err != nil {
		return time.Time{}, malformed(field, value, err)
	}
	return t, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(models.TimestampLayout)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

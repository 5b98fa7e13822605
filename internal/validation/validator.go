package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"bvdu-bank/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// FieldError describes one rejected field by its json name and the failing rule
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) String() string {
	if e.Param != "" {
		return fmt.Sprintf("%s failed %s=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("%s failed %s", e.Field, e.Tag)
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	_ = v.RegisterValidation("account_pin", validateAccountPIN)
	_ = v.RegisterValidation("account_category", validateAccountCategory)
	_ = v.RegisterValidation("record_text", validateRecordText)

	// decimals are compared as numbers by gt/gte/lte
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate checks a struct and returns the rejected fields, or nil when it is valid
func (v *Validator) Validate(i interface{}) []FieldError {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Tag: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		out = append(out, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

// Messages renders field errors for an error response
func Messages(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.String())
	}
	return out
}

// Custom validation functions

// validateAccountPIN validates a 4-digit numeric PIN
func validateAccountPIN(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.IsValidPIN(int(fl.Field().Int()))
	default:
		return false
	}
}

// validateAccountCategory validates that account type is Savings or Current
func validateAccountCategory(fl validator.FieldLevel) bool {
	_, ok := models.NormalizeAccountType(fl.Field().String())
	return ok && strings.TrimSpace(fl.Field().String()) != ""
}

// validateRecordText rejects characters that would break a pipe-delimited record
func validateRecordText(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "|\r\n")
}

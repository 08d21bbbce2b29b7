// Package checkout validates the contact form and turns a validated form
// plus the mirrored cart into a single order submission.
package checkout

import (
	"regexp"
	"strings"
)

const (
	CodeRequired      = "REQUIRED"
	CodeInvalidFormat = "INVALID_FORMAT"
)

// Field names double as the JSON keys the storefront uses to highlight the
// first invalid input.
const (
	FieldFullName        = "fullName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldShippingAddress = "shippingAddress"
)

type Form struct {
	FullName        string
	Email           string
	Phone           string
	ShippingAddress string
}

type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Errors map[string]FieldError `json:"errors,omitempty"`
	Valid  bool                  `json:"valid"`
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Validate applies the field rules: every field is required, the email must
// look like local@domain, and the phone must strip down to 10-15 digits.
func (f Form) Validate() ValidationResult {

	errs := make(map[string]FieldError)

	if strings.TrimSpace(f.FullName) == "" {
		errs[FieldFullName] = FieldError{Code: CodeRequired, Message: "Full name is required"}
	}

	if strings.TrimSpace(f.Email) == "" {
		errs[FieldEmail] = FieldError{Code: CodeRequired, Message: "Email is required"}
	} else if !emailPattern.MatchString(strings.TrimSpace(f.Email)) {
		errs[FieldEmail] = FieldError{Code: CodeInvalidFormat, Message: "Email is invalid"}
	}

	if strings.TrimSpace(f.Phone) == "" {
		errs[FieldPhone] = FieldError{Code: CodeRequired, Message: "Phone number is required"}
	} else if digits := digitsOnly(f.Phone); len(digits) < 10 || len(digits) > 15 {
		errs[FieldPhone] = FieldError{Code: CodeInvalidFormat, Message: "Phone number is invalid"}
	}

	if strings.TrimSpace(f.ShippingAddress) == "" {
		errs[FieldShippingAddress] = FieldError{Code: CodeRequired, Message: "Shipping address is required"}
	}

	if len(errs) == 0 {
		return ValidationResult{Valid: true}
	}

	return ValidationResult{Errors: errs}
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}

		return -1
	}, s)
}

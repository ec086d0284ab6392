package services

import (
	"net/mail"
	"regexp"
)

// phonePattern allows an optional leading +, then digits, spaces and
// hyphens. Length bounds (6-20) are checked separately so the message
// can stay readable.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 \-]*$`)

// ValidateSubmission checks field well-formedness and returns every
// failure as a human-readable message. An empty slice means valid. No
// normalization happens here; callers trim and lowercase before
// validating.
func ValidateSubmission(name, phone, email string) []string {
	var errs []string

	if len(name) < 2 {
		errs = append(errs, "name must be at least 2 characters")
	}

	if len(phone) < 6 || len(phone) > 20 || !phonePattern.MatchString(phone) {
		errs = append(errs, "phone must contain 6-20 digits, spaces or hyphens with an optional leading +")
	}

	if _, err := mail.ParseAddress(email); email == "" || err != nil {
		errs = append(errs, "email must be a valid email address")
	}

	return errs
}

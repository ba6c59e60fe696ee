package services

import (
	"strings"
	"unicode/utf8"

	"github.com/jcoronel/bantay/core"
)

// Violation messages, each a complete user-facing sentence.
const (
	violationName          = "Name must be at least 2 characters long."
	violationEmailRequired = "Email address is required."
	violationEmailShape    = "Please enter a valid email address."
	violationSubject       = "Subject must be at least 5 characters long."
	violationMessage       = "Message must be at least 10 characters long."
)

// ContactValidator checks contact-form fields. It is stateless; rules are
// evaluated independently and every violation is collected, in field order
// name, email, subject, message, so the caller can show all problems at once.
type ContactValidator struct{}

// Validate returns the ordered violation list, or nil when the fields are
// accepted.
func (ContactValidator) Validate(fields core.ContactFields) []string {
	var violations []string

	name := strings.TrimSpace(fields.Name)
	if utf8.RuneCountInString(name) < 2 {
		violations = append(violations, violationName)
	}

	email := strings.TrimSpace(fields.Email)
	if email == "" {
		violations = append(violations, violationEmailRequired)
	} else if !emailShapeOK(email) {
		violations = append(violations, violationEmailShape)
	}

	subject := strings.TrimSpace(fields.Subject)
	if utf8.RuneCountInString(subject) < 5 {
		violations = append(violations, violationSubject)
	}

	message := strings.TrimSpace(fields.Message)
	if utf8.RuneCountInString(message) < 10 {
		violations = append(violations, violationMessage)
	}

	return violations
}

// emailShapeOK applies the deliberately loose structural check this form has
// always used: an "@" must be present, the part after the last "@" must
// contain a dot, the part before the first "@" must be non-empty, and the
// segment right after the first "@" must be at least 4 characters. This is
// the contract - do not upgrade it to full RFC validation.
func emailShapeOK(email string) bool {
	parts := strings.Split(email, "@")
	if len(parts) < 2 {
		return false
	}
	if !strings.Contains(parts[len(parts)-1], ".") {
		return false
	}
	if utf8.RuneCountInString(parts[0]) < 1 || utf8.RuneCountInString(parts[1]) < 4 {
		return false
	}
	return true
}

// Normalize returns the fields with surrounding whitespace trimmed, the form
// they are validated and stored in.
func (ContactValidator) Normalize(fields core.ContactFields) core.ContactFields {
	return core.ContactFields{
		Name:    strings.TrimSpace(fields.Name),
		Email:   strings.TrimSpace(fields.Email),
		Subject: strings.TrimSpace(fields.Subject),
		Message: strings.TrimSpace(fields.Message),
	}
}

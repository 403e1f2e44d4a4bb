// Package validation holds the shared field rules of the core: the
// name and email patterns, the canonical message texts, and the ordered
// collector the services accumulate failures into.
package validation

import "regexp"

// Canonical validation messages. The exact texts are part of the
// external contract: callers render them verbatim, and the login
// messages are intentionally identical for unknown-email and
// wrong-password so credentials cannot be enumerated.
const (
	MsgNameTooShort     = "First and last name are required and must be at least 2 characters."
	MsgNameNotLetters   = "First and last name must be letters only."
	MsgEmailTooShort    = "Email field must be at least 5 characters."
	MsgEmailInvalid     = "Email format is invalid."
	MsgEmailTaken       = "Email address already registered."
	MsgPasswordTooShort = "Password fields are required and must be at least 8 characters."
	MsgPasswordMismatch = "Password and confirmation password must match."
	MsgAllFieldsNeeded  = "All fields are required."
	MsgLoginInvalid     = "Login invalid."
	MsgAccountCorrupt   = "This user is corrupt. Please contact the administrator."
	MsgMessageRequired  = "Message description required."
	MsgCommentRequired  = "Comment description required."
	MsgDescriptionLong  = "Description must be less than 500 characters."
)

const (
	// MinNameLen is the minimum length of first and last names.
	MinNameLen = 2
	// MinEmailLen gates the email format check: shorter inputs fail with
	// MsgEmailTooShort and are never pattern- or duplicate-checked.
	MinEmailLen = 5
	// MinPasswordLen is the minimum password length.
	MinPasswordLen = 8
	// MaxDescriptionLen bounds user descriptions and message bodies.
	MaxDescriptionLen = 500
)

// lettersPattern matches zero or more ASCII letters. The empty string
// vacuously matches; the independent MinNameLen check is what rejects
// empty names. Keep both checks separate.
var lettersPattern = regexp.MustCompile(`^[a-zA-Z]*$`)

// emailPattern mirrors the registration contract: local part of
// letters, digits, '.', '+', '_', '-', then a domain of letters,
// digits, '.', '_', '-', a dot, and a letters-only tld.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9.+_-]+@[a-zA-Z0-9._-]+\.[a-zA-Z]*$`)

// LettersOnly reports whether s contains nothing but ASCII letters.
func LettersOnly(s string) bool {
	return lettersPattern.MatchString(s)
}

// EmailFormatValid reports whether s looks like an email address.
func EmailFormatValid(s string) bool {
	return emailPattern.MatchString(s)
}

// Collector accumulates validation messages in insertion order. The
// zero value is ready to use.
type Collector struct {
	messages []string
}

// Add records a failure message.
func (c *Collector) Add(message string) {
	c.messages = append(c.messages, message)
}

// HasErrors reports whether any failure was recorded.
func (c *Collector) HasErrors() bool {
	return len(c.messages) > 0
}

// Messages returns the recorded failures in order.
func (c *Collector) Messages() []string {
	return c.messages
}

// CheckNames applies both name rules: the combined length rule, then
// the letters-only rule. Each failure contributes one message covering
// both fields, matching the form-level contract.
func (c *Collector) CheckNames(firstName, lastName string) {
	if len(firstName) < MinNameLen || len(lastName) < MinNameLen {
		c.Add(MsgNameTooShort)
	}
	if !LettersOnly(firstName) || !LettersOnly(lastName) {
		c.Add(MsgNameNotLetters)
	}
}

// CheckPassword applies the length rule, and only when it passes, the
// confirmation match rule.
func (c *Collector) CheckPassword(password, confirm string) {
	if len(password) < MinPasswordLen {
		c.Add(MsgPasswordTooShort)
		return
	}
	if password != confirm {
		c.Add(MsgPasswordMismatch)
	}
}

package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail      = errors.New("invalid email format")
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidPhone      = errors.New("invalid phone number")
	ErrInvalidNationalID = errors.New("invalid national id")
	ErrPasswordTooWeak   = errors.New("password must be at least 8 characters long")
	ErrEmptyFullName     = errors.New("full name is required")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Mobile numbers normalized to digits, 10-15 digits with optional leading zero(s) stripped.
	phoneRegex = regexp.MustCompile(`^[0-9]{10,15}$`)
	// National identifiers are numeric strings, 10 digits.
	nationalIDRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 8 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, pw string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(pw)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }

// Phone is the customer identity key: inquiry creation resolves accounts by it.
type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	normalized := normalizeDigits(s)
	if !phoneRegex.MatchString(normalized) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: normalized}, nil
}

func (p Phone) Value() string {
	return p.value
}

type NationalID struct {
	value string
}

func NewNationalID(s string) (NationalID, error) {
	normalized := normalizeDigits(s)
	if !nationalIDRegex.MatchString(normalized) {
		return NationalID{}, ErrInvalidNationalID
	}
	return NationalID{value: normalized}, nil
}

func (n NationalID) Value() string {
	return n.value
}

func normalizeDigits(s string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidUsername = errors.New("invalid username")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" || !emailPattern.MatchString(trimmed) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func NewRole(value string) (Role, error) {
	switch Role(value) {
	case RoleUser, RoleAdmin:
		return Role(value), nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

func ValidateUsername(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < MinUsernameLength || len(trimmed) > MaxUsernameLength {
		return "", ErrInvalidUsername
	}
	return trimmed, nil
}

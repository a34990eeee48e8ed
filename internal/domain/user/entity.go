package user

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name cannot be empty")
	ErrInvalidEmail = errors.New("user email is invalid")
)

type User struct {
	id    uuid.UUID
	name  string
	email string
}

func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	return &User{name: name, email: email}, nil
}

func ReconstructUser(id uuid.UUID, name, email string) *User {
	return &User{id: id, name: name, email: email}
}

func (u *User) ApplyPatch(name, email *string) error {
	if name != nil && strings.TrimSpace(*name) != "" {
		u.name = strings.TrimSpace(*name)
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if !isValidEmail(trimmed) {
			return ErrInvalidEmail
		}
		u.email = trimmed
	}
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }
func (u *User) Email() string { return u.email }

func isValidEmail(email string) bool {
	if email == "" {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"account/internal/domain/service"
	"account/internal/errors"

	"github.com/google/uuid"
)

// ErrEmptyPassword is returned by SetPassword for an empty plaintext.
var ErrEmptyPassword = errors.New("password must not be empty")

// User is a registered account of the blogging platform.
// The plaintext password never lives on the entity, only its one-way hash.
type User struct {
	ID           uuid.UUID // Assigned by the repository on Save.
	Email        string    // Unique login identifier, normalized by NormalizeEmail.
	Login        string    // Display name shown next to posts and comments.
	Avatar       string    // Optional URI or path of the avatar image.
	PasswordHash string    `json:"-"` // One-way hash of the password, never the plaintext.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser builds a transient user with an empty password hash.
// Callers must SetPassword before handing the user to a repository.
func NewUser(email, login, avatar string) *User {
	return &User{
		Email:  NormalizeEmail(email),
		Login:  login,
		Avatar: avatar,
	}
}

// SetPassword hashes plaintext and replaces the stored hash.
func (u *User) SetPassword(hasher service.PasswordHasher, plaintext string) (*User, error) {
	if plaintext == "" {
		return u, ErrEmptyPassword
	}

	hash, err := hasher.Hash(plaintext)
	if err != nil {
		return u, errors.Wrap(err, "failed to hash password")
	}

	u.PasswordHash = hash

	return u, nil
}

// ComparePassword reports whether plaintext matches the stored hash.
func (u *User) ComparePassword(hasher service.PasswordHasher, plaintext string) bool {
	if u.PasswordHash == "" {
		return false
	}

	return hasher.Check(plaintext, u.PasswordHash)
}

// NormalizeEmail returns the canonical, case-insensitive form of an email.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

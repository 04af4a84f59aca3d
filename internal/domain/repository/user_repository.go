// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"account/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
// Implementations enforce email uniqueness and report a violation as
// domainerrors.ErrUserAlreadyExists; the use case's existence check is only a
// fast path in front of that guarantee.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by email, ignoring case.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Save persists a new user and returns it with ID and timestamps assigned.
	Save(ctx context.Context, user *entity.User) (*entity.User, error)

	// Update overwrites the stored user identified by id.
	Update(ctx context.Context, id uuid.UUID, user *entity.User) (*entity.User, error)
}

// Package memory is a process-local implementation of the persistence layer,
// used by the "memory" storage driver and by use case tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
)

type userRepository struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]entity.User
	byEmail map[string]uuid.UUID
	now     func() time.Time
}

// NewUserRepository returns an empty repository.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users:   make(map[uuid.UUID]entity.User),
		byEmail: make(map[string]uuid.UUID),
		now:     time.Now,
	}
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[entity.NormalizeEmail(email)]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	user := r.users[id]

	return &user, nil
}

// Save stores a copy of user under a fresh id. The email index is checked and
// written under the same lock, so concurrent registrations of one email
// produce exactly one user.
func (r *userRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stored := *user
	stored.Email = entity.NormalizeEmail(stored.Email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[stored.Email]; taken {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
	}

	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	now := r.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.users[stored.ID] = stored
	r.byEmail[stored.Email] = stored.ID

	return &stored, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, user *entity.User) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	updated := *user
	updated.ID = id
	updated.Email = entity.NormalizeEmail(updated.Email)
	updated.CreatedAt = current.CreatedAt
	updated.UpdatedAt = r.now()

	if updated.Email != current.Email {
		if _, taken := r.byEmail[updated.Email]; taken {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		delete(r.byEmail, current.Email)
		r.byEmail[updated.Email] = id
	}
	r.users[id] = updated

	return &updated, nil
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"account/internal/domain/entity"
	"account/internal/domain/service"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Avatar   string
	Email    string
	Login    string
	Password string
}

// VerifyUserInput defines the credentials checked on login.
type VerifyUserInput struct {
	Email    string
	Password string
}

// ChangePasswordInput carries the current and the replacement password.
type ChangePasswordInput struct {
	UserID      uuid.UUID
	Password    string
	NewPassword string
}

// AuthenticationUsecase defines the account operations the delivery layer depends on.
// Every failure is a domainerrors.AppError (possibly wrapped); callers map its Kind.
type AuthenticationUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	VerifyUser(ctx context.Context, input *VerifyUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*entity.User, error)
	CreateUserToken(ctx context.Context, user *entity.User) (service.TokenPair, error)
	RefreshUserToken(ctx context.Context, refreshToken string) (service.TokenPair, error)
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to open a new account.
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Phone    string
	Role     entity.Role // customer or shop_owner; empty means customer
}

// SignInInput defines the data required for an account to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// UpdateProfileInput defines the editable account fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name  *string
	Phone *string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful sign-up or sign-in.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Role         entity.Role
}

// ProfileOutput is the account as seen by its owner, with the role resolved for this request.
type ProfileOutput struct {
	User *entity.User
	Role entity.Role
}

// AccountUsecase defines the session and profile operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, err error)
	SignOut(ctx context.Context, refreshToken string) error
	Authenticate(ctx context.Context, accessToken string) (*entity.Session, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

package service

import (
	"context"

	"github.com/psantos/go-accounts/models"
)

// AuthService covers the authentication gate: registration, credential
// verification, and JWT token lifecycle.
type AuthService interface {
	// RegisterUser creates a new account after validating the input fields
	// and hashing the password. The returned user carries server-assigned
	// fields.
	RegisterUser(ctx context.Context, name, email, password, confirmPassword string) (models.User, error)

	// Login verifies an email/password pair and returns the matching user.
	Login(ctx context.Context, email, password string) (models.User, error)

	// CreateToken issues a signed JWT for an already-authenticated user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates a raw JWT string and returns the decoded token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService covers token-gated CRUD on user records plus the public
// listing operation.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) (models.User, error)
}

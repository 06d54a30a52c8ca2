package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/psantos/go-accounts/models"
)

// UserRepository is the persistence contract for User records. Any document
// or relational backend can satisfy it; the shipped implementation is
// PostgreSQL-backed.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID retrieves a user by its internal identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// FindUserByEmail retrieves a user by its unique email (login key).
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindAllUsers lists every registered user.
	FindAllUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser applies a partial update to the user with the given ID and
	// returns the updated record.
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user with the given ID and returns the record
	// as it existed before deletion.
	DeleteUser(ctx context.Context, userID int64) (models.User, error)
}

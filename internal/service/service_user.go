package service

import (
	"context"
	"fmt"

	"github.com/psantos/go-accounts/internal/crypto"
	"github.com/psantos/go-accounts/internal/logger"
	"github.com/psantos/go-accounts/internal/store"
	"github.com/psantos/go-accounts/models"
)

// userService is the concrete implementation of UserService. It provides
// record-level operations over the user repository; authorization decisions
// are made upstream by the auth middleware.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetUser retrieves a single user record by ID.
//
// Returns a wrapped storage error on failure (store.ErrNoUserWasFound when
// the record does not exist).
func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// ListUsers returns every registered user. Storage failures are surfaced to
// the caller, not swallowed.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.FindAllUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update to a user record. A plaintext password
// in the patch is hashed with bcrypt before it reaches the store; the store
// never sees plaintext credentials.
//
// Returns the updated record or:
//   - ErrInvalidDataProvided if the patch is empty or sets a field to blank.
//   - A wrapped hashing error if bcrypt fails.
//   - A wrapped storage error on repository failure (not found, email taken).
func (u *userService) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if patch.IsEmpty() {
		log.Error().Int64("id", userID).Msg("empty update provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if (patch.Name != nil && *patch.Name == "") ||
		(patch.Email != nil && *patch.Email == "") ||
		(patch.Password != nil && *patch.Password == "") {
		log.Error().Int64("id", userID).Msg("blank field in update")
		return models.User{}, ErrInvalidDataProvided
	}

	update := models.UserUpdate{
		Name:  patch.Name,
		Email: patch.Email,
	}

	if patch.Password != nil {
		passwordHash, err := crypto.HashPassword(*patch.Password)
		if err != nil {
			log.Err(err).Int64("id", userID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", err)
		}
		update.PasswordHash = &passwordHash
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updatedUser, nil
}

// DeleteUser removes a user record and returns it as it existed before
// deletion.
func (u *userService) DeleteUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	deletedUser, err := u.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("user deletion ended with error")
		return models.User{}, fmt.Errorf("user deletion ended with error: %w", err)
	}

	return deletedUser, nil
}

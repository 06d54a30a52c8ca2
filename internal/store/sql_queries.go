package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/psantos/go-accounts/models"
)

const userColumns = "user_id, name, email, password_hash, created_at, updated_at"

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at, updated_at;`

	findUserByID = `SELECT user_id, name, email, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findAllUsers = `SELECT user_id, name, email, password_hash, created_at, updated_at
    FROM users
    ORDER BY user_id;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1
    RETURNING user_id, name, email, password_hash, created_at, updated_at;`
)

// buildUpdateQuery builds a dynamic UPDATE statement covering only the
// fields present in the partial update. Returns [ErrNothingToUpdate] when
// no field is set.
func buildUpdateQuery(userID int64, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := sq.Update("users").
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns).
		PlaceholderFormat(sq.Dollar)

	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	return builder.ToSql()
}

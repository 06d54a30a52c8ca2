package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the persistence layer on insert.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Email is the unique user login identifier.
	// Uniqueness is enforced by the database.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is
	// never serialized into API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch is the client-facing shape of a partial user update as decoded
// from a PATCH request body. Nil fields are left untouched. Password, when
// set, is plaintext and must be hashed by the service layer before it
// reaches the store.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// IsEmpty reports whether the patch carries no field changes at all.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}

// UserUpdate describes a partial update of a user record at the persistence
// layer. Nil fields are left untouched; non-nil fields are written as-is.
// PasswordHash, when set, must already be a bcrypt hash.
type UserUpdate struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	PasswordHash *string `json:"-"`
}

// IsEmpty reports whether the update carries no field changes at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Name == nil && u.Email == nil && u.PasswordHash == nil
}

package models

// TokenResponse is the body returned by a successful login.
type TokenResponse struct {
	// Token is the compact JWS serialization of the issued JWT.
	Token string `json:"token"`
}

// UserResponse wraps a single user record in API responses.
type UserResponse struct {
	User User `json:"user"`
}

// UsersResponse contains the full list of registered users.
type UsersResponse struct {
	// Users is the list of user records with credential data stripped.
	Users []User `json:"users"`

	// Length is the total number of entries in Users.
	// Provided for convenience so the client can validate the response
	// without iterating the slice.
	Length int `json:"length"`
}

// MessageResponse is a generic informational body used by the welcome
// endpoint and by error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

package service

import "errors"

var (
	ErrInvalidDataProvided          = errors.New("invalid data provided")
	ErrPasswordConfirmationMismatch = errors.New("password and confirmation do not match")
	ErrWrongPassword                = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

package auth

import "errors"

var (
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrNotAdmin              = errors.New("identity is not on the admin allow-list")
	ErrInvalidSecret         = errors.New("invalid registration secret")
	ErrDuplicateRegistration = errors.New("an admin profile already exists for this identity")
	ErrOAuthUnavailable      = errors.New("oauth provider is not configured")
)

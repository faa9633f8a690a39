package domain

import "errors"

// Sentinel errors for the auth domain. Use errors.Is() to check these.
var (
	// ErrInvalidCredentials indicates the username/password pair did not match.
	// Deliberately indistinguishable from an unknown username.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserInactive indicates the account exists but has been deactivated.
	ErrUserInactive = errors.New("user account is inactive")

	// ErrUsernameTaken indicates a username collision on user creation.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidRole indicates an unrecognized role name.
	ErrInvalidRole = errors.New("invalid role")
)

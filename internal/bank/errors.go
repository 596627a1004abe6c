package bank

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("no user is logged in")
	ErrSessionActive      = errors.New("another user is already logged in")
	ErrAccountNotFound    = errors.New("invalid account number")
)

package domain

import "errors"

// Common domain errors
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrUnauthenticated      = errors.New("token not provided")
	ErrSessionExpired       = errors.New("session expired")
	ErrAuthenticationFailed = errors.New("invalid credentials")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrNotFound             = errors.New("resource not found")
	ErrConflict             = errors.New("duplicate entry")
	ErrUpstream             = errors.New("upstream failure")
)

// Member errors
var (
	ErrMemberNotFound    = errors.New("member not found")
	ErrMemberNameTaken   = errors.New("member name already exists")
	ErrUsernameRequired  = errors.New("administrator username is required")
	ErrMemberNameMissing = errors.New("member name is required")
)

// Transaction errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be a non-negative number")
	ErrInvalidKind         = errors.New("unknown transaction kind")
	ErrInvalidDate         = errors.New("invalid transaction date")
)

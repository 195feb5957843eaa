package domain

import "errors"

// Sentinel errors shared across services and adapters.
var (
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrSessionExpired      = errors.New("session expired")
	ErrSnapshotUnavailable = errors.New("event snapshot unavailable")
)

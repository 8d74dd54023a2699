// Package common defines shared constants and sentinel errors used across
// the client and server of the standup tracker. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal       = errors.New("internal error")
	ErrorUnauthorized   = errors.New("unauthorized")
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors.
	ErrEmptyText       = errors.New("entry text is empty")
	ErrUnknownProvider = errors.New("unknown identity provider")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

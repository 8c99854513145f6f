// Package common defines shared sentinel errors used across the service
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Request/validation errors surfaced by the orchestrator.
	ErrorBadRequest       = errors.New("invalid request")
	ErrorAlreadyExists    = errors.New("already exists")
	ErrorWrongCredentials = errors.New("wrong credentials")

	// Generic downstream failure (issuance, storage, profile fetch).
	ErrorSomethingWentWrong = errors.New("something went wrong")

	// Unexpected infrastructure failures.
	ErrorInternal = errors.New("internal error")

	// Credential hasher errors, translated to ErrorSomethingWentWrong at
	// the orchestrator boundary.
	ErrHashing             = errors.New("hashing error")
	ErrMalformedStoredForm = errors.New("malformed stored password")

	// Token lifecycle errors.
	ErrInvalidToken        = errors.New("invalid token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")

	// Identifier format errors.
	ErrInvalidIdentifierFormat = errors.New("invalid identifier format")
)

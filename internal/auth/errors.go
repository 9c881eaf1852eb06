// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "errors"

var (
	// ErrEmptySigningSecret is returned when a signing secret is constructed
	// from an empty string. The process must not start without a secret.
	ErrEmptySigningSecret = errors.New("signing secret is empty")

	// ErrUnknownRole is returned when a role outside of the buyer/seller
	// enumeration is parsed or embedded into a token.
	ErrUnknownRole = errors.New("unknown role")
)

// Verification failures. They are kept distinct for logging and tests;
// the gate folds all of them into [ErrInvalidCredential].
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// Gate and policy outcomes. Every one of them is terminal for the request.
var (
	// ErrMissingCredential is returned when the request carries no
	// "Authorization" header.
	ErrMissingCredential = errors.New("no credential provided")

	// ErrMalformedHeader is returned when the header scheme is not exactly
	// "Bearer" or the token part is missing.
	ErrMalformedHeader = errors.New("malformed authorization header")

	// ErrInvalidCredential wraps any verification failure.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrForbidden is returned when an authenticated principal does not hold
	// the role required by the route.
	ErrForbidden = errors.New("access denied")
)

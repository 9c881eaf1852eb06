// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"
	"strings"
)

// BearerScheme is the only accepted authorization scheme. Matching is
// case-sensitive.
const BearerScheme = "Bearer"

// TokenVerifier is satisfied by [*Verifier].
type TokenVerifier interface {
	Verify(token string) (Claims, error)
}

// Gate authenticates raw "Authorization" header values.
type Gate struct {
	verifier TokenVerifier
}

func NewGate(verifier TokenVerifier) *Gate {
	return &Gate{verifier: verifier}
}

// Authenticate turns a raw header value into a [Principal].
//
// An empty header is treated as absent and yields [ErrMissingCredential].
// The value is split on the first space; a scheme other than "Bearer" or an
// empty token yields [ErrMalformedHeader]. Any verification failure yields
// [ErrInvalidCredential] wrapping the verifier's error.
func (g *Gate) Authenticate(rawHeader string) (Principal, error) {
	if rawHeader == "" {
		return Principal{}, ErrMissingCredential
	}

	scheme, token, _ := strings.Cut(rawHeader, " ")
	if scheme != BearerScheme || token == "" {
		return Principal{}, ErrMalformedHeader
	}

	claims, err := g.verifier.Verify(token)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	return principalFromClaims(claims), nil
}

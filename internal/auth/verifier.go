// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// signingMethod is the only algorithm accepted by the verifier. Tokens
// advertising anything else (including "none") fail signature verification.
var signingMethod = jwt.SigningMethodHS256

// Verifier checks the integrity and expiry of tokens signed with a single
// [SigningSecret].
type Verifier struct {
	secret SigningSecret
	parser *jwt.Parser
	opts   options
}

// NewVerifier returns a [Verifier] bound to secret.
func NewVerifier(secret SigningSecret, opts ...Option) (*Verifier, error) {
	if secret.IsZero() {
		return nil, ErrEmptySigningSecret
	}

	o := applyOptions(opts)

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(o.now),
	}
	if o.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(o.issuer))
	}

	return &Verifier{
		secret: secret,
		parser: jwt.NewParser(parserOpts...),
		opts:   o,
	}, nil
}

// Verify parses token and returns its claims.
//
// The error is one of [ErrTokenMalformed], [ErrTokenSignatureInvalid] or
// [ErrTokenExpired], wrapping the underlying parser error. The signature is
// checked before the claims, so a token that is both forged and expired
// reports a signature failure.
func (v *Verifier) Verify(token string) (Claims, error) {
	if token == "" {
		return Claims{}, fmt.Errorf("%w: empty token", ErrTokenMalformed)
	}

	var claims Claims
	_, err := v.parser.ParseWithClaims(token, &claims, v.keyFunc)
	if err != nil {
		return Claims{}, classify(err)
	}

	return claims, nil
}

func (v *Verifier) keyFunc(*jwt.Token) (any, error) {
	return v.secret.key, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenSignatureInvalid, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}

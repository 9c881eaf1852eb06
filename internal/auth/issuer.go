// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the lifetime of tokens issued on login.
const DefaultTokenTTL = time.Hour

// Issuer signs tokens for authenticated users.
type Issuer struct {
	secret SigningSecret
	ttl    time.Duration
	opts   options
}

// NewIssuer returns an [Issuer] bound to secret. A non-positive ttl falls back
// to [DefaultTokenTTL].
func NewIssuer(secret SigningSecret, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if secret.IsZero() {
		return nil, ErrEmptySigningSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &Issuer{
		secret: secret,
		ttl:    ttl,
		opts:   applyOptions(opts),
	}, nil
}

// TTL returns the lifetime applied by [Issuer.Issue].
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for userID with the configured lifetime.
func (i *Issuer) Issue(userID int64, role Role) (string, error) {
	return i.IssueWithTTL(userID, role, i.ttl)
}

// IssueWithTTL signs a token whose "exp" is now+ttl. Unlike [NewIssuer] the
// ttl is taken literally, so a non-positive value yields a token that is
// already expired.
func (i *Issuer) IssueWithTTL(userID int64, role Role, ttl time.Duration) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	now := i.opts.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.opts.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(i.secret.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload carried by a marketplace token:
//
//	{"id": 42, "role": "seller", "iat": 1700000000, "exp": 1700003600}
//
// The standard registered claims are embedded so that the jwt parser can
// validate "exp" and "iat" (and "iss" when an issuer is configured).
type Claims struct {
	UserID int64 `json:"id"`
	Role   Role  `json:"role"`

	jwt.RegisteredClaims
}

// Validate is called by the jwt parser after the registered claims have been
// checked. A token without a known role is rejected as malformed.
func (c Claims) Validate() error {
	if !c.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownRole, c.Role)
	}

	return nil
}

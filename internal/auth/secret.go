// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

// SigningSecret is the symmetric key used to sign and verify tokens.
//
// It is created once at startup and never mutated. The key bytes are copied on
// construction so that later changes to the source string buffer cannot leak
// into verification.
type SigningSecret struct {
	key []byte
}

// NewSigningSecret returns a [SigningSecret] for secret, or
// [ErrEmptySigningSecret] if secret is empty.
func NewSigningSecret(secret string) (SigningSecret, error) {
	if secret == "" {
		return SigningSecret{}, ErrEmptySigningSecret
	}

	return SigningSecret{key: []byte(secret)}, nil
}

// IsZero reports whether the secret was never initialised.
func (s SigningSecret) IsZero() bool {
	return len(s.key) == 0
}

// String keeps the key out of logs and fmt output.
func (s SigningSecret) String() string {
	return "[REDACTED]"
}

// MarshalText keeps the key out of structured log fields.
func (s SigningSecret) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "time"

// Option configures a [Verifier] or an [Issuer].
type Option func(*options)

type options struct {
	now    func() time.Time
	issuer string
}

func defaultOptions() options {
	return options{now: time.Now}
}

// WithClock replaces the wall clock. Tests use it to pin "now".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithIssuer sets the "iss" claim on issued tokens and requires it on
// verified ones.
func WithIssuer(issuer string) Option {
	return func(o *options) {
		o.issuer = issuer
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

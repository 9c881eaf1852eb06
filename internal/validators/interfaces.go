// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for request bodies.
//
// Rules are declared on the request models with `validate` struct tags
// (go-playground/validator). A failing field is reported under its JSON name
// with the message from its `msg` struct tag, or a generic message derived
// from the failed rule when the tag is absent.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {
	// Validate returns nil or a *ValidationError listing every failed field.
	Validate(ctx context.Context, obj any) error
}

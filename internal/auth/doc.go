// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth implements the request authentication and authorization gate
// of the marketplace API.
//
// The package is split into four small pieces that are composed by the HTTP
// transport layer:
//   - [Issuer] signs HS256 tokens carrying the user ID and role on login.
//   - [Verifier] checks a token's signature, structure and expiry and returns
//     its [Claims].
//   - [Gate] turns a raw "Authorization" header value into a [Principal].
//   - [Authorize] checks a [Principal] against a route's [Requirement].
//
// All components are safe for concurrent use: the only shared value is the
// [SigningSecret], which is immutable after construction.
package auth

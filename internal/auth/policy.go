// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "fmt"

// Authorize checks p against the role demanded by a route.
func Authorize(p Principal, required Requirement) error {
	if required == RequireNone {
		return nil
	}
	if Role(required) != p.Role {
		return fmt.Errorf("%w: %s route, %s principal", ErrForbidden, required, p.Role)
	}
	return nil
}

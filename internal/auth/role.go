// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import "fmt"

// Role is an access tier of a marketplace user.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Valid reports whether r belongs to the role enumeration.
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

func (r Role) String() string {
	return string(r)
}

// ParseRole converts s into a [Role]. The match is case-sensitive.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}

	return role, nil
}

// Requirement is the role a route demands from its caller. It is fixed when
// the route is registered.
type Requirement Role

const (
	// RequireNone lets every authenticated principal through.
	RequireNone   Requirement = ""
	RequireBuyer  Requirement = Requirement(RoleBuyer)
	RequireSeller Requirement = Requirement(RoleSeller)
)

func (r Requirement) String() string {
	if r == RequireNone {
		return "none"
	}
	return string(r)
}

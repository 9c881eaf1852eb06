// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// errNoPrincipal is logged when a role-guarded route is reached without the
// access gate in front of it. It indicates a routing mistake, not a client
// error.
var errNoPrincipal = errors.New("no principal in request context")

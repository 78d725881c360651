// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks portal requests (sign-up, sign-in, profiles and
// bookings) before they reach the repositories.
package validators

import "context"

// Validator validates a request value. fields, when given, limits the check
// to the named fields; an empty list checks everything the type defines.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader rejects a protected route called without
	// a bearer token.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	errInvalidJSON = errors.New("request body is not valid JSON")
)

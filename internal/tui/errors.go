// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/health-vault/internal/adapter"
)

const msgServerUnavailable = "No network or the server is unavailable"

// networkHints catch transport failures that reach the page without being
// wrapped in adapter.ErrUnreachable.
var networkHints = []string{
	"connection refused",
	"dial tcp",
	"no such host",
	"network is unreachable",
	"i/o timeout",
	"context deadline exceeded",
}

// humanizeServerUnavailableError turns a failed backend call into page text.
func humanizeServerUnavailableError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrUnreachable):
		return msgServerUnavailable
	}

	text := strings.ToLower(err.Error())
	for _, hint := range networkHints {
		if strings.Contains(text, hint) {
			return msgServerUnavailable
		}
	}
	return err.Error()
}

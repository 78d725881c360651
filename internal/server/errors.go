// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoServersAreCreated means neither listen address was configured.
var errNoServersAreCreated = errors.New("no servers are created")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client is a runnable portal process.
type Client interface {
	// Run blocks until the user leaves the portal.
	Run() error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the portal process: it starts the background workers
// that restore the session, hands the terminal to the UI and closes the
// Auth Context when the user leaves.
package client

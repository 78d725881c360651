// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/health-vault/internal/service"
)

// authInitWorker restores the Auth Context without holding up the portal.
// Gated pages show their loading placeholder until it finishes.
type authInitWorker struct {
	ctx  context.Context
	auth service.ClientAuthService
	done chan struct{}
}

// NewAuthInitWorker returns a Worker whose Run starts auth.Init in its own
// goroutine and returns at once.
func NewAuthInitWorker(ctx context.Context, auth service.ClientAuthService) Worker {
	return &authInitWorker{ctx: ctx, auth: auth, done: make(chan struct{})}
}

func (w *authInitWorker) Run() {
	go func() {
		defer close(w.done)
		w.auth.Init(w.ctx)
	}()
}

// sessionWorker keeps re-checking the backend session while the portal runs.
type sessionWorker struct {
	ctx      context.Context
	job      service.ClientSessionJob
	interval time.Duration
}

// NewSessionWorker returns a Worker starting job with interval. The job is
// stopped by its owner.
func NewSessionWorker(ctx context.Context, job service.ClientSessionJob, interval time.Duration) Worker {
	return &sessionWorker{ctx: ctx, job: job, interval: interval}
}

func (w *sessionWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/health-vault/internal/adapter"
	"github.com/MKhiriev/health-vault/internal/logger"
)

const defaultSessionCheckInterval = time.Minute

type clientSessionJob struct {
	backend adapter.BackendClient
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSessionJob creates a clientSessionJob that asks the backend for the
// current session on a ticker. GetCurrentSession drops an expired session and
// notifies its listeners, so the Auth Context signs the user out without any
// page interaction. The job is idle until Start is called.
func NewClientSessionJob(backend adapter.BackendClient, logger *logger.Logger) ClientSessionJob {
	return &clientSessionJob{backend: backend, logger: logger}
}

// Start implements ClientSessionJob.
func (j *clientSessionJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSessionCheckInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.backend.GetCurrentSession(jobCtx); err != nil {
					j.logger.Err(err).Str("func", "*clientSessionJob.Start").Msg("session check failed")
				}
			}
		}
	}()
}

// Stop implements ClientSessionJob. Safe to call when the job is not running.
func (j *clientSessionJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

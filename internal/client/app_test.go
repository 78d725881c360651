package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/MKhiriev/health-vault/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct {
	service.ClientAuthService

	mu     sync.Mutex
	inited chan struct{}
	closed bool
}

func (s *stubAuth) Init(context.Context) { close(s.inited) }

func (s *stubAuth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

type stubJob struct {
	interval time.Duration
	started  bool
	stopped  bool
}

func (s *stubJob) Start(_ context.Context, interval time.Duration) {
	s.started = true
	s.interval = interval
}

func (s *stubJob) Stop() { s.stopped = true }

type stubUI struct {
	err error
	ran bool
}

func (s *stubUI) Run(context.Context) error {
	s.ran = true
	return s.err
}

func newTestApp(t *testing.T, uiErr error) (*App, *stubAuth, *stubJob, *stubUI) {
	t.Helper()

	auth := &stubAuth{inited: make(chan struct{})}
	job := &stubJob{}
	ui := &stubUI{err: uiErr}

	services := &service.ClientServices{AuthService: auth, SessionJob: job}
	app, err := NewApp(services, ui, config.ClientWorkers{SessionCheckInterval: time.Minute}, logger.Nop())
	require.NoError(t, err)

	return app, auth, job, ui
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "ui returns normally", uiErr: nil},
		{name: "user quit is not an error", uiErr: tui.ErrUserQuit},
		{name: "ui failure is returned", uiErr: errors.New("terminal gone"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, auth, job, ui := newTestApp(t, tt.uiErr)

			err := app.Run()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				require.NoError(t, err)
			}

			assert.True(t, ui.ran)
			assert.True(t, job.started)
			assert.True(t, job.stopped)
			assert.Equal(t, time.Minute, job.interval)

			select {
			case <-auth.inited:
			case <-time.After(time.Second):
				t.Fatal("auth was not initialised")
			}

			auth.mu.Lock()
			assert.True(t, auth.closed)
			auth.mu.Unlock()
		})
	}
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &stubUI{}, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.ClientServices{AuthService: &stubAuth{}}, nil, config.ClientWorkers{}, logger.Nop())
	assert.Error(t, err)
}

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

type stubAuth struct {
	service.ClientAuthService
	initCalls chan context.Context
}

func (s *stubAuth) Init(ctx context.Context) {
	s.initCalls <- ctx
}

type stubJob struct {
	ctx      context.Context
	interval time.Duration
	started  int
}

func (s *stubJob) Start(ctx context.Context, interval time.Duration) {
	s.ctx = ctx
	s.interval = interval
	s.started++
}

func (s *stubJob) Stop() {}

func TestAuthInitWorker_RunsInitInBackground(t *testing.T) {
	auth := &stubAuth{initCalls: make(chan context.Context, 1)}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	w := NewAuthInitWorker(ctx, auth)
	w.Run()

	select {
	case <-w.(*authInitWorker).done:
	case <-time.After(time.Second):
		t.Fatal("Init was not called")
	}

	require.Len(t, auth.initCalls, 1)
	assert.Equal(t, ctx, <-auth.initCalls)
}

func TestSessionWorker_StartsJobWithInterval(t *testing.T) {
	job := &stubJob{}
	ctx := context.Background()

	NewSessionWorker(ctx, job, 2*time.Minute).Run()

	assert.Equal(t, 1, job.started)
	assert.Equal(t, 2*time.Minute, job.interval)
	assert.Equal(t, ctx, job.ctx)
}

func TestNew_RunsClientWorkersInOrder(t *testing.T) {
	auth := &stubAuth{initCalls: make(chan context.Context, 1)}
	job := &stubJob{}
	order := []int{}

	ws := New(
		&orderWorker{id: 1, order: &order},
		NewAuthInitWorker(context.Background(), auth),
		NewSessionWorker(context.Background(), job, time.Second),
		&orderWorker{id: 2, order: &order},
	)
	ws.Run()

	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, 1, job.started)

	select {
	case <-auth.initCalls:
	case <-time.After(time.Second):
		t.Fatal("Init was not called")
	}
}

package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/handler"
	myGRPC "github.com/MKhiriev/health-vault/internal/handler/grpc"
	"github.com/MKhiriev/health-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeListener struct {
	serveErr error
	stopped  chan struct{}
}

func newFakeListener(serveErr error) *fakeListener {
	return &fakeListener{serveErr: serveErr, stopped: make(chan struct{})}
}

func (f *fakeListener) name() string    { return "fake" }
func (f *fakeListener) address() string { return "fake:0" }

func (f *fakeListener) serve() error {
	if f.serveErr != nil {
		return f.serveErr
	}
	<-f.stopped
	return nil
}

func (f *fakeListener) stop(context.Context) error {
	select {
	case <-f.stopped:
	default:
		close(f.stopped)
	}
	return nil
}

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServer_Run(t *testing.T) {
	boom := errors.New("address in use")

	tests := []struct {
		name      string
		listeners []listener
		cancel    bool
		wantErr   error
	}{
		{name: "no listeners", wantErr: errNoServersAreCreated},
		{name: "context cancelled stops everything", listeners: []listener{newFakeListener(nil), newFakeListener(nil)}, cancel: true},
		{name: "failing listener stops the others", listeners: []listener{newFakeListener(nil), newFakeListener(boom)}, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &server{listeners: tt.listeners, logger: logger.Nop()}
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			done := make(chan error, 1)
			go func() { done <- s.run(ctx) }()

			select {
			case err := <-done:
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.NoError(t, err)
				}
			case <-time.After(2 * time.Second):
				t.Fatal("run did not return")
			}
		})
	}
}

func TestNewHTTPServer_UsesConfig(t *testing.T) {
	s := newHTTPServer(http.NewServeMux(), config.Server{HTTPAddress: "localhost:8080"})

	assert.Equal(t, "localhost:8080", s.address())
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
}

func TestHTTPListener_ServeAndStop(t *testing.T) {
	router := http.NewServeMux()
	router.HandleFunc("/ping", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})
	s := newHTTPServer(router, config.Server{HTTPAddress: "127.0.0.1:0"})

	done := make(chan error, 1)
	go func() { done <- s.serve() }()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, s.stop(context.Background()))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not return after stop")
	}
}

func TestGRPCListener_ServeAndStop(t *testing.T) {
	h := myGRPC.NewHandler(nil, logger.Nop())

	s, err := newGRPCServer(h, config.Server{GRPCAddress: "127.0.0.1:0"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.address())

	done := make(chan struct{})
	go func() {
		_ = s.serve()
		close(done)
	}()

	require.NoError(t, s.stop(context.Background()))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("gRPC server did not stop")
	}
}

func TestNewGRPCServer_BadAddress(t *testing.T) {
	_, err := newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), config.Server{GRPCAddress: "not-an-address"})

	assert.Error(t, err)
}

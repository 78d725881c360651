package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/health-vault/internal/config"
	"github.com/MKhiriev/health-vault/internal/handler"
	"github.com/MKhiriev/health-vault/internal/logger"
	"golang.org/x/sync/errgroup"
)

// listener is one network front of the backend.
type listener interface {
	name() string
	address() string
	serve() error
	stop(ctx context.Context) error
}

type server struct {
	listeners []listener
	logger    *logger.Logger
}

// NewServer builds a listener for every configured address. At least one of
// HTTPAddress and GRPCAddress must be set.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		s.listeners = append(s.listeners, newHTTPServer(handlers.HTTP.Init(), cfg))
	}
	if cfg.GRPCAddress != "" {
		g, err := newGRPCServer(handlers.GRPC, cfg)
		if err != nil {
			return nil, fmt.Errorf("error creating gRPC server: %w", err)
		}
		s.listeners = append(s.listeners, g)
	}

	if len(s.listeners) == 0 {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return
	}
	s.logger.Info().Msg("server stopped gracefully")
}

func (s *server) Shutdown() {
	for _, l := range s.listeners {
		if err := l.stop(context.Background()); err != nil {
			s.logger.Err(err).Str("listener", l.name()).Msg("error stopping listener")
		}
	}
}

// run serves every listener until ctx is done or one of them fails, then
// stops the rest.
func (s *server) run(ctx context.Context) error {
	if len(s.listeners) == 0 {
		return errNoServersAreCreated
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, l := range s.listeners {
		g.Go(func() error {
			s.logger.Info().Str("listener", l.name()).Str("address", l.address()).Msg("listening")
			if err := l.serve(); err != nil {
				return fmt.Errorf("%s listener: %w", l.name(), err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		s.Shutdown()
		return nil
	})

	return g.Wait()
}

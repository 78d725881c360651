package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/health-vault/internal/config"
	myGRPC "github.com/MKhiriev/health-vault/internal/handler/grpc"
	"google.golang.org/grpc"
)

// grpcListener serves the health service. The socket is bound eagerly so a
// bad address fails at construction.
type grpcListener struct {
	handler  *myGRPC.Handler
	server   *grpc.Server
	listener net.Listener
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server) (*grpcListener, error) {
	lis, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcListener{handler: handler, server: s, listener: lis}, nil
}

func (g *grpcListener) name() string { return "grpc" }

func (g *grpcListener) address() string { return g.listener.Addr().String() }

func (g *grpcListener) serve() error {
	return g.server.Serve(g.listener)
}

// stop flips health to NOT_SERVING before draining in-flight calls.
func (g *grpcListener) stop(context.Context) error {
	g.handler.Shutdown()
	g.server.GracefulStop()
	return nil
}

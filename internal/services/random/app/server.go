package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"time"

	platformgrpc "github.com/louisbranch/glulxrand/internal/platform/grpc"
	"github.com/louisbranch/glulxrand/internal/platform/timeouts"
	rng "github.com/louisbranch/glulxrand/internal/random"
	randomservice "github.com/louisbranch/glulxrand/internal/services/random/api/grpc/random"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

// Options configures the generator a server starts with.
type Options struct {
	// Source names the native entropy source (see random.SourceByName).
	Source string
	// Seed is applied once at startup; zero keeps native mode.
	Seed uint32
}

// Server hosts the random gRPC API.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	generator  *rng.Generator
}

// New creates a configured random server listening on the provided port.
func New(port int, opts Options) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port), opts)
}

// NewWithAddr creates a configured random server for the provided address.
func NewWithAddr(addr string, opts Options) (*Server, error) {
	source, err := rng.SourceByName(opts.Source)
	if err != nil {
		return nil, fmt.Errorf("select entropy source: %w", err)
	}
	generator := rng.New(source)
	if opts.Seed != 0 {
		generator.SetSeed(opts.Seed)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	grpcServer := grpc.NewServer(platformgrpc.ServerOptions()...)
	healthServer := health.NewServer()
	randomservice.RegisterRandomServiceServer(grpcServer, randomservice.NewService(generator))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(randomservice.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		generator:  generator,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Generator returns the generator the server hands out values from.
func (s *Server) Generator() *rng.Generator {
	if s == nil {
		return nil
	}
	return s.generator
}

// Run creates and serves a random server until context cancellation.
func Run(ctx context.Context, port int, opts Options) error {
	server, err := New(port, opts)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("random server listening at %v (mode %s)", s.listener.Addr(), s.generator.Mode())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		s.health.Shutdown()
		s.gracefulStop(timeouts.Shutdown)
		return handleServeErr(<-serveErr)
	case err := <-serveErr:
		return handleServeErr(err)
	}
}

// Close releases server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
}

// gracefulStop waits up to limit for in-flight calls before forcing a stop.
func (s *Server) gracefulStop(limit time.Duration) {
	done := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(limit):
		log.Printf("random server graceful stop timed out after %v", limit)
		s.grpcServer.Stop()
	}
}

func handleServeErr(err error) error {
	if err == nil || errors.Is(err, grpc.ErrServerStopped) {
		return nil
	}
	return fmt.Errorf("serve gRPC: %w", err)
}

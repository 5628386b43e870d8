package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"hello-mcp/service"
	"hello-mcp/shared"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	serverName    = "hello-mcp-server"
	serverVersion = "1.0.0"

	shutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg        shared.Config
	svc        *service.ToolService
	mcpServer  *server.MCPServer
	streamable *server.StreamableHTTPServer
	sse        *server.SSEServer
	metrics    *toolMetrics
	tracer     trace.Tracer

	tracerProvider trace.TracerProvider
	shutdownTracer func(context.Context) error
}

type Option func(*Server)

// WithTracerProvider replaces the provider built from the OTLP settings.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Server) {
		s.tracerProvider = tp
	}
}

func NewServer(cfg shared.Config, svc *service.ToolService, opts ...Option) (*Server, error) {
	if svc == nil {
		svc = service.NewToolService(nil)
	}
	s := &Server{
		cfg:     cfg,
		svc:     svc,
		metrics: newToolMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracerProvider == nil {
		tp, err := newTracerProvider(context.Background(), cfg)
		if err != nil {
			return nil, err
		}
		s.tracerProvider = tp
		s.shutdownTracer = tp.Shutdown
	}
	s.tracer = s.tracerProvider.Tracer("hello-mcp/mcp-server")

	s.mcpServer = server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	if err := s.registerTools(); err != nil {
		return nil, err
	}
	s.streamable = server.NewStreamableHTTPServer(s.mcpServer, server.WithEndpointPath("/mcp"))
	s.sse = server.NewSSEServer(s.mcpServer)
	return s, nil
}

func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Handler serves streamable HTTP on /mcp, SSE on /sse and /message and
// Prometheus metrics on /metrics.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", s.streamable)
	mux.Handle("/sse", s.sse.SSEHandler())
	mux.Handle("/message", s.sse.MessageHandler())
	mux.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}))
	return corsMiddleware(mux)
}

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.ListenAddr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.ListenAddr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. Open SSE streams
// are closed when shutdown starts.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if s.shutdownTracer != nil {
		otel.SetTracerProvider(s.tracerProvider)
	}
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	defer cancelStreams()
	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}
	httpServer.RegisterOnShutdown(cancelStreams)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Msg("mcp server listening, streamable http on /mcp, sse on /sse")
		err := httpServer.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down mcp server")
		return errors.Join(
			httpServer.Shutdown(shutdownCtx),
			s.Close(shutdownCtx),
		)
	})
	return g.Wait()
}

// ServeStdio serves a single MCP session over in and out, the way desktop
// hosts launch local servers. It returns when ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	log.Info().Msg("mcp server serving stdio")
	stdio := server.NewStdioServer(s.mcpServer)
	err := stdio.Listen(ctx, in, out)
	return errors.Join(err, s.Close(context.Background()))
}

// Close flushes pending spans.
func (s *Server) Close(ctx context.Context) error {
	if s.shutdownTracer == nil {
		return nil
	}
	return s.shutdownTracer(ctx)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Mcp-Session-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

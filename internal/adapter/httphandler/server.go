package httphandler

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const (
	// Submissions wait for the acknowledgment delay, keep well above it.
	defaultRequestTimeout = 10 * time.Second

	readHeaderTimeout  = 5 * time.Second
	defaultIdleTimeout = 30 * time.Second
	timeoutMessage     = "request timed out"
)

type serverOptions struct {
	requestTimeout time.Duration
	idleTimeout    time.Duration
}

type ServerOpt func(*serverOptions)

// WithRequestTimeout bounds the time spent by a single handler.
func WithRequestTimeout(d time.Duration) ServerOpt {
	return func(o *serverOptions) {
		if d > 0 {
			o.requestTimeout = d
		}
	}
}

func WithIdleTimeout(d time.Duration) ServerOpt {
	return func(o *serverOptions) {
		if d > 0 {
			o.idleTimeout = d
		}
	}
}

type HTTPServer struct {
	httpServer *http.Server
}

func NewHTTPServer(addr string, handler http.Handler, opts ...ServerOpt) HTTPServer {
	o := serverOptions{
		requestTimeout: defaultRequestTimeout,
		idleTimeout:    defaultIdleTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &http.Server{
		Addr:              addr,
		Handler:           http.TimeoutHandler(handler, o.requestTimeout, timeoutMessage),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       o.idleTimeout,
	}
	return HTTPServer{s}
}

// Run listens on the configured address and calls stopFn once the server
// stops, whatever the reason.
func (s HTTPServer) Run(stopFn context.CancelFunc) {
	const op = "HTTPServer.Run"
	log := slog.With("op", op)

	defer stopFn()
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		log.Error("failed to listen", "addr", s.httpServer.Addr, "err", err)
		return
	}
	s.serve(ln)
}

// Serve is Run over an existing listener.
func (s HTTPServer) Serve(ln net.Listener, stopFn context.CancelFunc) {
	defer stopFn()
	s.serve(ln)
}

func (s HTTPServer) serve(ln net.Listener) {
	const op = "HTTPServer.serve"
	log := slog.With("op", op, "addr", ln.Addr().String())

	log.Info("storefront is listening")
	err := s.httpServer.Serve(ln)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("unexpected server shutdown", "err", err)
	}
}

func (s HTTPServer) Close(ctx context.Context) {
	const op = "HTTPServer.Close"
	log := slog.With("op", op)

	log.Info("closing http server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown gracefully", "err", err)
		return
	}
	log.Info("http server is closed")
}

// RegisterStatic serves product images from dir. Nothing is mounted when
// dir is empty.
func RegisterStatic(mux *http.ServeMux, dir string) {
	if dir == "" {
		return
	}
	mux.Handle("GET /images/", http.FileServer(http.Dir(dir)))
}

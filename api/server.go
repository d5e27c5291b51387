// Package api exposes sources over a JSON REST interface.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/shinigami-rest/shinigami/key"
	"github.com/shinigami-rest/shinigami/log"
	"github.com/shinigami-rest/shinigami/source"
	"github.com/spf13/viper"
)

// Options configure a Server.
type Options struct {
	Host string
	Port int
	// CORSOrigin is sent as Access-Control-Allow-Origin.
	CORSOrigin string
	// LogRequests emits one log line per handled request.
	LogRequests bool
	// PassthroughContentType forwards upstream image types instead of image/jpeg.
	PassthroughContentType bool
	// ShutdownTimeout bounds the wait for in-flight requests when Run returns.
	ShutdownTimeout time.Duration
}

// OptionsFromConfig reads server.* and related settings.
func OptionsFromConfig() Options {
	return Options{
		Host:                   viper.GetString(key.ServerHost),
		Port:                   viper.GetInt(key.ServerPort),
		CORSOrigin:             viper.GetString(key.ServerCORSOrigin),
		LogRequests:            viper.GetBool(key.LogsRequests),
		PassthroughContentType: viper.GetBool(key.ImagePassthroughContentType),
		ShutdownTimeout:        time.Duration(viper.GetInt(key.ServerShutdownTimeout)) * time.Second,
	}
}

// Server serves one source.
type Server struct {
	options Options
	handler http.Handler
}

// New creates a Server for src.
func New(src source.Source, options Options) *Server {
	if options.CORSOrigin == "" {
		options.CORSOrigin = "*"
	}

	h := &handlers{
		source:      src,
		passthrough: options.PassthroughContentType,
		now:         time.Now,
	}

	return &Server{
		options: options,
		handler: chain(h.routes(), requestLogger(options.LogRequests), recoverer, cors(options.CORSOrigin)),
	}
}

// Handler returns the root http.Handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.options.Host, strconv.Itoa(s.options.Port))
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.Addr(), err)
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", listener.Addr())
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	timeout := s.options.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

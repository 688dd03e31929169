// Package api exposes the command surface over HTTP/JSON under /api, for the
// desktop front end and for browser development.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/croissant/internal/logging"
	"github.com/dmitrijs2005/croissant/internal/server/commands"
	"github.com/go-playground/validator/v10"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

type Server struct {
	address    string
	dispatcher *commands.Dispatcher
	logger     logging.Logger
	validate   *validator.Validate
	now        func() time.Time
}

func NewServer(address string, d *commands.Dispatcher, l logging.Logger) *Server {
	return &Server{
		address:    address,
		dispatcher: d,
		logger:     l.With("module", "http_server"),
		validate:   validator.New(),
		now:        time.Now,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.buildRouter(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/BotGJ16/ContentVault/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	AutocertCacheDir  string
	Router            http.Handler
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		// Requests inherit the application logger but not its cancellation, so
		// in-flight requests can finish during shutdown.
		BaseContext: func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			domain.LoggerFromContext(ctx).ErrorContext(shutdownCtx, "unable to shut down HTTP server", "error", err)
		}
	}()

	var err error
	if s.TLSDisabled {
		srv.Addr = fmt.Sprintf(":%d", s.TLSDisabledPort)
		err = srv.ListenAndServe()
	} else {
		manager := &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(s.AutocertHostnames...),
		}
		if s.AutocertCacheDir != "" {
			manager.Cache = autocert.DirCache(s.AutocertCacheDir)
		}
		err = srv.Serve(manager.Listener())
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/hubspot-contact-upsert/internal/config"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/http/router"
	"github.com/xavierca1/hubspot-contact-upsert/internal/infra/logger"
)

// in-flight upserts get this long to finish their HubSpot calls
const drainTimeout = 15 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("❌ invalid configuration")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		log.WithError(err).Fatal("listen")
	}

	srv := &http.Server{
		Handler:           router.Build(cfg, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":           ln.Addr().String(),
		"allowed_origin": cfg.CORS.AllowedOrigin,
		"hubspot_url":    cfg.HubSpot.BaseURL,
	}).Info("🔥 Contact upsert server listening")

	if err := serve(ctx, srv, ln, drainTimeout, log); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	log.Info("server exited")
}

// serve blocks until ctx is done or the listener fails, then waits for
// in-flight requests to finish before returning.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, drain time.Duration, log logrus.FieldLogger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), drain)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

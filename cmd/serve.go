package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dart-sim/dart-sim/api"
)

var serveAddr string // Listen address for the HTTP API

// serveCmd exposes simulate/optimize over HTTP until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator as a JSON HTTP API with Prometheus metrics",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              serveAddr,
			Handler:           api.NewServer(),
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      2 * time.Minute,
		}

		errCh := make(chan error, 1)
		go func() {
			logrus.Infof("Listening on %s", serveAddr)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.Fatalf("Server failed: %v", err)
			}
		case <-ctx.Done():
			logrus.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logrus.Errorf("Graceful shutdown failed: %v", err)
			}
		}
	},
}

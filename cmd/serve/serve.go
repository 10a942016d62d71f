// Package serve implements the command that runs the HTTP API.
package serve

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"saisatyanet/jobboard/cmd/root"
	"saisatyanet/jobboard/internal/api"
	"saisatyanet/jobboard/internal/feed"
	"saisatyanet/jobboard/internal/logging"
)

var addr string

// Cmd is the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the job catalog views over HTTP.",
	RunE:  run,
}

func init() {
	Cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides server.addr)")
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogrusAdapterFromLogger(root.Log)
	service := feed.NewService(root.Cfg, logger)

	listenAddr := root.Cfg.Server.Addr
	if addr != "" {
		listenAddr = addr
	}

	handler := api.NewRouter(api.Deps{
		Service: service,
		Config:  root.Cfg,
		Logger:  logger,
	})

	server := &http.Server{
		Addr:              listenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("API listening", logging.Field{Key: "addr", Value: listenAddr})
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

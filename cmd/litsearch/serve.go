// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litsearch/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search engine over HTTP",
	Long: `Serve loads the corpus once and exposes it over an HTTP API. Each
client session gets its own isolated query state and save set, addressed
by a session id; the corpus itself is immutable and shared.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig(cmd)
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}

	ix, err := loadIndex(cfg)
	if err != nil {
		return err
	}
	slog.Info("corpus loaded",
		slog.String("path", cfg.Source.Path),
		slog.Int("records", len(ix.Records)))

	handler := api.NewHandler(ix, cfg.Display.MaxShown)
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: api.NewRouter(handler),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func init() {
	serveCmd.Flags().Int("port", 0, "HTTP port (default from config)")

	rootCmd.AddCommand(serveCmd)
}

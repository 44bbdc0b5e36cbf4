package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/osiris-intel/osiris/internal/config"
	"github.com/osiris-intel/osiris/internal/dashboard"
	"github.com/osiris-intel/osiris/internal/metrics"
	"github.com/osiris-intel/osiris/internal/telemetry"
)

func newServeCmd() *cobra.Command {
	var port int
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			if bind != "" {
				cfg.Server.Bind = bind
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := new(slog.LevelVar)
			level.Set(cfg.Level())
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			base, cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}

			var m *metrics.Metrics
			if cfg.Telemetry.Metrics {
				m = metrics.New()
			}
			shutdownTracing, err := telemetry.Setup(cfg.Telemetry.Trace, os.Stderr)
			if err != nil {
				return err
			}

			srv := dashboard.NewServer(dashboard.Options{
				Catalog:           cat,
				SessionTTL:        time.Duration(cfg.Session.TTLHours) * time.Hour,
				DispatchPerMinute: cfg.Session.DispatchPerMinute,
				Metrics:           m,
				Logger:            logger,
			})
			httpSrv := &http.Server{
				Addr:              net.JoinHostPort(cfg.Server.Bind, strconv.Itoa(cfg.Server.Port)),
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Graceful shutdown on SIGINT/SIGTERM
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := os.Stat(cfgFile); err == nil {
				w, err := config.NewWatcher(cfgFile, logger)
				if err != nil {
					logger.Warn("config hot reload disabled", "error", err)
				} else {
					go w.Run(ctx, func(next *config.Config) {
						level.Set(next.Level())
						srv.SetCatalog(next.ApplyProfile(base))
					})
				}
			}

			printBanner(cfg, m != nil)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("dashboard listening", "addr", httpSrv.Addr)
				if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- fmt.Errorf("starting server: %w", err)
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				_ = shutdownTracing(context.Background())
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down server: %w", err)
			}
			return shutdownTracing(shutdownCtx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "override server port")
	cmd.Flags().StringVar(&bind, "bind", "", "address to bind (default: 127.0.0.1)")
	return cmd
}

func printBanner(cfg *config.Config, metricsOn bool) {
	bold := color.New(color.Bold).SprintFunc()
	accent := color.New(color.FgHiMagenta, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	addr := net.JoinHostPort(cfg.Server.Bind, strconv.Itoa(cfg.Server.Port))

	fmt.Println()
	fmt.Printf("  %s\n", accent("OSIRIS"))
	fmt.Println(dim("  ────────────────────────────────────────"))
	fmt.Printf("  Dashboard:  %s\n", bold("http://"+addr+"/osiris"))
	fmt.Printf("  Health:     http://%s/health\n", addr)
	if metricsOn {
		fmt.Printf("  Metrics:    http://%s/metrics\n", addr)
	}
	fmt.Println(dim("  ────────────────────────────────────────"))
	fmt.Printf("  Sessions expire after %dh idle\n", cfg.Session.TTLHours)
	fmt.Println()
	fmt.Println("  Press Ctrl+C to stop.")
	fmt.Println()
}

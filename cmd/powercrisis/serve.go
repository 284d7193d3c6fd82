package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/power-crisis/internal/platform/tui"
)

var (
	flagSSHAddr       string
	flagHostKey       string
	flagIdleTimeout   int
	flagMetricsAddr   string
	flagSessionsRate  float64
	flagSessionsBurst int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host Power Crisis over SSH",
	Long: `Start an SSH server. Every connection gets its own single-player
session with the variant menu. Runs from all players share one history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.powercrisis/host_key

Examples:
  powercrisis serve                              # Listen on :23234
  powercrisis serve --ssh :2222                  # Listen on port 2222
  powercrisis serve --metrics 127.0.0.1:9100     # Expose Prometheus metrics
  powercrisis serve --sessions-per-minute 2      # Throttle reconnects

Players connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()

	serveCmd.SilenceUsage = true

	addGameFlags(serveCmd)
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagMetricsAddr, "metrics", "", "Serve Prometheus metrics on this address (disabled if empty)")
	serveCmd.Flags().Float64Var(&flagSessionsRate, "sessions-per-minute", defaults.RateLimit.SessionsPerMinute, "New sessions allowed per minute per address")
	serveCmd.Flags().IntVar(&flagSessionsBurst, "sessions-burst", defaults.RateLimit.Burst, "New sessions allowed back to back per address")
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS
	cfg.RateLimit.SessionsPerMinute = flagSessionsRate
	cfg.RateLimit.Burst = flagSessionsBurst

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flagMetricsAddr != "" {
		metrics := &http.Server{
			Addr:              flagMetricsAddr,
			Handler:           tui.MetricsHandler(),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("serving metrics", "address", flagMetricsAddr)
			if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "err", err)
			}
		}()
		defer metrics.Close()
	}

	fmt.Printf("Starting Power Crisis SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.Serve(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

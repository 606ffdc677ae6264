package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/openfiscal/wealthsim/logging"
	"github.com/openfiscal/wealthsim/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Long: `Start the HTTP API.

Endpoints:
  POST /simulate  run a simulation (JSON body, omitted fields use defaults)
  GET  /revenue   linear revenue estimate, ?rate= in percent
  GET  /healthz   liveness probe

Configuration comes from WEALTHSIM_* environment variables; --addr
overrides the listen address.

Example:
  wealthsim serve --addr :8080`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := server.ConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}
	if cmd.Flags().Changed("addr") {
		cfg.Addr = serveAddr
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	srv := server.New(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

package main

import (
	"fmt"
	"net"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/pkg/database"
)

var migrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API and the gRPC health server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "apply pending migrations before serving")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	app, cleanup, err := InitializeApp(cfg, log)
	if err != nil {
		return fmt.Errorf("initializing service: %w", err)
	}
	defer cleanup()

	if migrateOnStart {
		if err := database.RunMigrations(app.DB, log); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("starting catalog service",
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Bool("grpc_enabled", cfg.GRPC.Enabled),
		zap.String("events", cfg.Events.Driver),
	)

	errCh := make(chan error, 2)
	running := 1
	go func() { errCh <- app.HTTP.Run(ctx) }()

	if cfg.GRPC.Enabled {
		lis, err := net.Listen("tcp", net.JoinHostPort("", strconv.Itoa(cfg.GRPC.Port)))
		if err != nil {
			stop()
			<-errCh
			return fmt.Errorf("listening on gRPC port: %w", err)
		}
		running++
		go func() { errCh <- app.GRPC.Serve(ctx, lis) }()
		go func() {
			<-ctx.Done()
			app.GRPC.Stop()
		}()
	}

	var firstErr error
	for ; running > 0; running-- {
		if err := <-errCh; err != nil && firstErr == nil {
			firstErr = err
			stop()
		}
	}

	log.Info("catalog service stopped")
	return firstErr
}

// Package main provides the catalog service entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/narwhalmedia/catalog/internal/config"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

// Version is set at build time via ldflags
var Version = "dev"

var configFile string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Video catalog administration service",
	Long: `catalog manages the categories, genres, cast members and videos of a
video platform. It serves a REST API, a gRPC health endpoint and publishes
an event for every change.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (default: ./config.yaml)")
	rootCmd.Version = Version

	rootCmd.AddCommand(serveCmd, migrateCmd)
}

// bootstrap loads the configuration and builds the root logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.Config{
		Level:       cfg.Logger.Level,
		Development: cfg.Logger.Development,
		Encoding:    cfg.Logger.Format,
		OutputPaths: []string{"stdout"},
		ErrorPaths:  []string{"stderr"},
		InitialFields: map[string]any{
			"service":     cfg.Service.Name,
			"environment": cfg.Service.Environment,
			"version":     Version,
		},
	}.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}

	return cfg, log.Zap(), nil
}

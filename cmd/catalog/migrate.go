package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/narwhalmedia/catalog/internal/infrastructure/persistence"
	"github.com/narwhalmedia/catalog/pkg/database"
)

var (
	migrateStatus bool
	migrateDryRun bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "show applied and pending migrations")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "show pending migrations without applying them")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, closeDB, err := persistence.NewDB(cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeDB()

	migrator := database.NewMigrator(db, log)
	out := cmd.OutOrStdout()

	switch {
	case migrateStatus:
		status, err := migrator.Status()
		if err != nil {
			return err
		}
		for _, s := range status {
			applied := "pending"
			if s.AppliedAt != nil {
				applied = "applied " + s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(out, "%s | %-28s | %s\n", s.Version, s.Name, applied)
		}
		return nil

	case migrateDryRun:
		pending, err := migrator.GetPendingMigrations()
		if err != nil {
			return err
		}
		if len(pending) == 0 {
			fmt.Fprintln(out, "No pending migrations.")
			return nil
		}
		for _, m := range pending {
			fmt.Fprintf(out, "%s | %s\n", m.Version, m.Name)
		}
		return nil

	default:
		if err := migrator.Migrate(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Migrations completed successfully.")
		return nil
	}
}

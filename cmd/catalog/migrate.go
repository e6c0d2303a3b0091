package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"certtrack/internal/config"
	"certtrack/internal/database/migration"
	dbpostgres "certtrack/internal/database/postgres"
	"certtrack/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long:  "Applies versioned SQL migrations to the configured database. Without --dir the migrations built into the binary are used.",
	RunE:  runMigrate,
}

var migrateDir string

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Directory of V<n>__name.sql files (defaults to the embedded set)")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	var fsys fs.FS = migrations.FS
	if dir := strings.TrimSpace(migrateDir); dir != "" {
		fsys = os.DirFS(dir)
	}

	r := migration.Runner{FS: fsys, Logger: log.New(cmd.ErrOrStderr(), "", log.LstdFlags)}
	return r.Run(ctx, db.SQLDB())
}

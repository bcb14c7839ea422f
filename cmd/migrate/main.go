package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"ticketqueen/internal/handler/middleware"
	"ticketqueen/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// migrate applies migrations/ to the configured database with the Atlas CLI.
// After editing a migration, refresh migrations/atlas.sum with `atlas migrate hash`.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	dryRun := flag.Bool("dry-run", false, "print pending files without applying them")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	// Only the DB and log sections are needed here, so PORT and friends may be unset.
	var cfg struct {
		DB  config.DBConfig
		Log config.LogConfig
	}
	if err := envconfig.Process("", &cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(*dir)),
	)
	if err != nil {
		logger.Error("failed to prepare migration directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), *bin)
	if err != nil {
		logger.Error("failed to create atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.DB.BuildDSN(),
		DryRun: *dryRun,
	})
	if err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	for _, f := range res.Applied {
		logger.Info("applied migration", "file", f.Name, "version", f.Version)
	}
	logger.Info("database is up to date", "current", res.Current, "target", res.Target, "dry_run", *dryRun)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	appMigrations "github.com/yigit/campus/internal/app/migrations"
	"github.com/yigit/campus/internal/bootstrap"
	"github.com/yigit/campus/internal/config"
	"github.com/yigit/campus/internal/db"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML config file")
	role := flag.String("role", "", "schema sets to manage: catalog, enrollment or all (overrides server.role)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		lgr.Fatal().Str("driver", cfg.Database.Driver).Msg("Migrations require the postgres driver")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	migrator, err := appMigrations.NewMigrator(
		database.Pool,
		appMigrations.SetsForRole(cfg.ServesCatalog(), cfg.ServesEnrollment()),
		lgr,
	)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Failed to create migrator")
	}
	defer migrator.Close()

	switch args[0] {
	case "up":
		err = migrator.Up(ctx)
	case "down":
		err = migrator.Down(ctx)
	case "status":
		err = migrator.Status(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		lgr.Error().Err(err).Str("command", args[0]).Msg("Migration command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrator [-config path] [-role catalog|enrollment|all] <command>")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up      apply all pending migrations")
	fmt.Fprintln(os.Stderr, "  down    roll back the latest migration of each schema set")
	fmt.Fprintln(os.Stderr, "  status  print migration status")
}

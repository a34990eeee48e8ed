package bootstrap

import (
	"context"
	"database/sql"
	"log/slog"

	"shareit/internal/pkg/config"
	"shareit/migrations"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

// RunMigrations applies pending schema migrations before the server starts
// serving. goose drives database/sql, not the pgx pool, so a short-lived
// connection is opened just for this step.
func RunMigrations(cfg config.Config) error {
	if !cfg.DB.Migrate {
		slog.Info("schema migrations disabled, skipping")
		return nil
	}

	db, err := sql.Open("pgx", cfg.DB.BuildDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}

	results, err := provider.Up(context.Background())
	if err != nil {
		return err
	}

	slog.Info("schema migrations applied", "count", len(results))
	return nil
}

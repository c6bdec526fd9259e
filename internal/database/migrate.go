package database

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/dkovacic/devlink/internal/config"
	"github.com/dkovacic/devlink/internal/database/migrations"
)

// Migrate applies the embedded goose migrations. goose runs over database/sql,
// so it opens its own short-lived connection via the pgx stdlib driver.
func Migrate(ctx context.Context, cfg *config.Config) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}

	db, err := goose.OpenDBWithDriver("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	return nil
}

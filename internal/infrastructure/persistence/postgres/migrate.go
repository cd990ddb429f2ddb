package postgres

import (
	"context"
	"fmt"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"

	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/persistence/postgres/migrations"
)

// Migrate aplica as migrations embutidas com goose.
// O dialeto segue o driver do gorm (postgres em produção, sqlite nos testes).
func Migrate(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	dialect := "postgres"
	if db.Dialector.Name() == "sqlite" {
		dialect = "sqlite3"
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqlDB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}

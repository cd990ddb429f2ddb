// Package testutil reúne dublês e bancos de teste compartilhados pelas suítes.
package testutil

import (
	"context"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/gravegrounds-backend/internal/domain/entities"
	"github.com/rafabene/gravegrounds-backend/internal/infrastructure/persistence/postgres"
)

// T é o subconjunto de testing.TB que GinkgoT() também satisfaz
type T interface {
	Helper()
	TempDir() string
	Fatalf(format string, args ...any)
	Cleanup(func())
}

// OpenDB cria um SQLite em arquivo temporário, aplica as migrations e semeia as facções.
// Uma única conexão serializa o acesso, como exige o SQLite.
func OpenDB(t T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "gravegrounds.db") + "?_foreign_keys=on&_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), postgres.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	if err := postgres.NewFactionStatsRepository(db).Seed(context.Background(), entities.AllFactions()); err != nil {
		t.Fatalf("failed to seed factions: %v", err)
	}

	return db
}

package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
)

//go:embed catalog/*.sql enrollment/*.sql
var embedMigrations embed.FS

// Schema sets. Each set keeps its own goose version table so the catalog and
// enrollment services can share one database or use separate ones.
const (
	SetCatalog    = "catalog"
	SetEnrollment = "enrollment"
)

var versionTables = map[string]string{
	SetCatalog:    "goose_catalog_version",
	SetEnrollment: "goose_enrollment_version",
}

// goose keeps its dialect, table name and base FS in package globals
var gooseMu sync.Mutex

// Migrator manages database migrations
type Migrator struct {
	db     *sql.DB
	sets   []string
	logger zerolog.Logger
}

// NewMigrator creates a new migrator for the given schema sets, applied in order
func NewMigrator(pool *pgxpool.Pool, sets []string, logger zerolog.Logger) (*Migrator, error) {
	for _, set := range sets {
		if _, ok := versionTables[set]; !ok {
			return nil, fmt.Errorf("unknown migration set %q", set)
		}
	}
	return &Migrator{
		db:     stdlib.OpenDBFromPool(pool),
		sets:   sets,
		logger: logger,
	}, nil
}

// SetsForRole returns the schema sets a process role owns
func SetsForRole(catalog, enrollment bool) []string {
	var sets []string
	if catalog {
		sets = append(sets, SetCatalog)
	}
	if enrollment {
		sets = append(sets, SetEnrollment)
	}
	return sets
}

// Up applies all pending migrations
func (m *Migrator) Up(ctx context.Context) error {
	return m.each(func(set string) error {
		if err := goose.UpContext(ctx, m.db, set); err != nil {
			return fmt.Errorf("failed to apply %s migrations: %w", set, err)
		}
		m.logger.Info().Str("set", set).Msg("Migrations applied")
		return nil
	})
}

// Down rolls back the latest migration of every set, in reverse order
func (m *Migrator) Down(ctx context.Context) error {
	reversed := make([]string, 0, len(m.sets))
	for i := len(m.sets) - 1; i >= 0; i-- {
		reversed = append(reversed, m.sets[i])
	}
	return m.eachOf(reversed, func(set string) error {
		if err := goose.DownContext(ctx, m.db, set); err != nil {
			return fmt.Errorf("failed to roll back %s migrations: %w", set, err)
		}
		m.logger.Info().Str("set", set).Msg("Latest migration rolled back")
		return nil
	})
}

// Status prints the migration status of every set
func (m *Migrator) Status(ctx context.Context) error {
	return m.each(func(set string) error {
		if err := goose.StatusContext(ctx, m.db, set); err != nil {
			return fmt.Errorf("failed to read %s migration status: %w", set, err)
		}
		return nil
	})
}

// Close releases the database/sql handle; the underlying pool stays open
func (m *Migrator) Close() error {
	return m.db.Close()
}

func (m *Migrator) each(fn func(set string) error) error {
	return m.eachOf(m.sets, fn)
}

func (m *Migrator) eachOf(sets []string, fn func(set string) error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(gooseLogger{m.logger})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	for _, set := range sets {
		goose.SetTableName(versionTables[set])
		if err := fn(set); err != nil {
			return err
		}
	}
	return nil
}

// gooseLogger routes goose output through zerolog
type gooseLogger struct {
	logger zerolog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info().Msgf(format, v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Fatal().Msgf(format, v...)
}

package db

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"time"

	"gorm.io/gorm"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

var migrationDirs = map[string]string{
	DialectPostgres: "migrations/postgres",
	DialectSQLite:   "migrations/sqlite",
}

type schemaMigration struct {
	Filename  string `gorm:"column:filename;primaryKey"`
	AppliedAt time.Time
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// Migrate brings the schema for the connected dialect up to date. Each file
// runs in its own transaction together with its schema_migrations row, so a
// failed file leaves no partial record behind.
func Migrate(db *gorm.DB) error {
	dir, ok := migrationDirs[db.Dialector.Name()]
	if !ok {
		return fmt.Errorf("no migrations for dialect %q", db.Dialector.Name())
	}

	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		filename TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`).Error; err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	pending, err := pendingMigrations(db, dir)
	if err != nil {
		return err
	}

	for _, name := range pending {
		if err := applyMigration(db, dir, name); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
	}
	return nil
}

// pendingMigrations lists the .sql files in dir that have no
// schema_migrations row yet, in filename order.
func pendingMigrations(db *gorm.DB, dir string) ([]string, error) {
	var applied []string
	if err := db.Model(&schemaMigration{}).Pluck("filename", &applied).Error; err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}

	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return nil, err
	}

	var pending []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".sql" || slices.Contains(applied, name) {
			continue
		}
		pending = append(pending, name)
	}
	slices.Sort(pending)
	return pending, nil
}

func applyMigration(db *gorm.DB, dir, name string) error {
	contents, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
	if err != nil {
		return err
	}
	statements := strings.TrimSpace(string(contents))

	return db.Transaction(func(tx *gorm.DB) error {
		if statements != "" {
			if err := tx.Exec(statements).Error; err != nil {
				return err
			}
		}
		return tx.Create(&schemaMigration{Filename: name, AppliedAt: time.Now().UTC()}).Error
	})
}

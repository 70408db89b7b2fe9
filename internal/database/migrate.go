package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"autoquiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the schema for driver up to date. sqlite3 and postgres go through
// golang-migrate; Oracle has no driver there and uses runOracleMigrations.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	switch driver {
	case DriverSQLite, DriverPostgres:
		return runGolangMigrate(db, driver)
	case DriverOracle:
		return runOracleMigrations(ctx, db)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func runGolangMigrate(db *sql.DB, driver string) error {
	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	var target migratedb.Driver
	switch driver {
	case DriverSQLite:
		target, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case DriverPostgres:
		target, err = postgres.WithInstance(db, &postgres.Config{})
	}
	if err != nil {
		return fmt.Errorf("could not create %s migration driver: %w", driver, err)
	}

	// m.Close would also close db, which belongs to the caller.
	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Get().Info("Schema already up to date", zap.String("driver", driver))
			return nil
		}
		return fmt.Errorf("could not apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	logger.Get().Info("Migrations completed successfully",
		zap.String("driver", driver), zap.Uint("version", version))
	return nil
}

const (
	oracleVersionTableExists = `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	oracleCreateVersionTable = `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY)`
	oracleAppliedVersions    = `SELECT version FROM schema_migrations`
	oracleRecordVersion      = `INSERT INTO schema_migrations (version) VALUES (:1)`
)

type migrationFile struct {
	version uint64
	name    string
}

// runOracleMigrations executes every pending *.up.sql file in version order and records
// it in schema_migrations. Statements are separated by ';'.
func runOracleMigrations(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, oracleVersionTableExists).Scan(&count); err != nil {
		return fmt.Errorf("could not check schema_migrations: %w", err)
	}
	if count == 0 {
		if _, err := db.ExecContext(ctx, oracleCreateVersionTable); err != nil {
			return fmt.Errorf("could not create schema_migrations: %w", err)
		}
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	files, err := upMigrations(migrationsFS, "migrations/"+DriverOracle)
	if err != nil {
		return err
	}

	for _, file := range files {
		if applied[file.version] {
			continue
		}

		content, err := fs.ReadFile(migrationsFS, path.Join("migrations", DriverOracle, file.name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file.name, err)
		}

		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", file.name, err)
			}
		}
		if _, err := db.ExecContext(ctx, oracleRecordVersion, file.version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", file.name, err)
		}

		logger.Get().Info("Executed migration", zap.String("file", file.name))
	}

	logger.Get().Info("Migrations completed successfully", zap.String("driver", DriverOracle))
	return nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[uint64]bool, error) {
	rows, err := db.QueryContext(ctx, oracleAppliedVersions)
	if err != nil {
		return nil, fmt.Errorf("could not read applied migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[uint64]bool)
	for rows.Next() {
		var v uint64
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("could not scan migration version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// upMigrations lists dir's *.up.sql files sorted by their numeric version prefix.
func upMigrations(fsys fs.FS, dir string) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	var files []migrationFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		prefix, _, _ := strings.Cut(name, "_")
		version, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s has no numeric version: %w", name, err)
		}
		files = append(files, migrationFile{version: version, name: name})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].version < files[j].version })
	return files, nil
}

// splitStatements drops the trailing ';' the Oracle driver rejects.
func splitStatements(content string) []string {
	var stmts []string
	for _, part := range strings.Split(content, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

package database

import (
	"context"
	"fmt"

	"autoquiz/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
	_ "github.com/sijms/go-ora/v2"  // Oracle driver, registered as "oracle"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
	DriverOracle   = "oracle"
)

func init() {
	// go-ora is unknown to sqlx; Oracle takes :1, :2 style placeholders.
	sqlx.BindDriver(DriverOracle, sqlx.NAMED)
}

// NewSQLXDB opens and pings a connection for the configured driver.
func NewSQLXDB(ctx context.Context, cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		// sqlite allows one writer; in-memory databases also vanish with their last connection.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.Driver, err)
	}

	return db, nil
}

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/eaglebank/financeiro/internal/config"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var schemas = map[string]string{
	config.DriverSQLite: `
		CREATE TABLE IF NOT EXISTS transacoes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			cpf TEXT NOT NULL,
			tipo TEXT NOT NULL,
			valor REAL NOT NULL,
			descricao TEXT NOT NULL
		)`,
	config.DriverPostgres: `
		CREATE TABLE IF NOT EXISTS transacoes (
			id BIGSERIAL PRIMARY KEY,
			cpf TEXT NOT NULL,
			tipo TEXT NOT NULL,
			valor DOUBLE PRECISION NOT NULL,
			descricao TEXT NOT NULL
		)`,
}

// DB is the process-wide store handle. Queries are written with '?'
// placeholders and passed through Rebind.
type DB struct {
	*sql.DB
	Driver string
}

// Open connects to the store and creates the transacoes table if absent.
func Open(ctx context.Context, driver, dsn string) (*DB, error) {
	db, err := connect(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenReadOnly connects without running DDL. A SQLite file is opened in
// read-only mode and must already exist.
func OpenReadOnly(ctx context.Context, driver, dsn string) (*DB, error) {
	if driver == config.DriverSQLite {
		dsn = sqliteReadOnlyDSN(dsn)
	}
	db, err := connect(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == config.DriverSQLite {
		if _, err := db.ExecContext(ctx, "PRAGMA query_only = ON"); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set read-only mode: %w", err)
		}
	}
	return db, nil
}

func sqliteReadOnlyDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		dsn = "file:" + dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&mode=ro"
	}
	return dsn + "?mode=ro"
}

func connect(ctx context.Context, driver, dsn string) (*DB, error) {
	if _, ok := schemas[driver]; !ok {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	sqlDB, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if driver == config.DriverSQLite {
		// SQLite allows one writer; a single connection also keeps ":memory:" databases alive.
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &DB{DB: sqlDB, Driver: driver}, nil
}

func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, schemas[db.Driver]); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Rebind rewrites '?' placeholders into the driver's bind syntax.
func (db *DB) Rebind(query string) string {
	if db.Driver != config.DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

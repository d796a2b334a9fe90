package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"meca-api/core/constants"
	"meca-api/core/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Database wraps the pool. Every query goes through Conn, so repositories
// join a transaction opened by WithTx without knowing about it.
type Database struct {
	db   *sql.DB
	sqlx *sqlx.DB
}

type DatabaseConfig struct {
	Host             string
	Port             int
	User             string
	Password         string
	DBName           string
	SSLMode          string // disable, require, verify-ca, verify-full
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
	StatementTimeout time.Duration
}

func (c DatabaseConfig) withDefaults() DatabaseConfig {
	if c.SSLMode == "" {
		c.SSLMode = constants.DatabaseSSLMode
	}
	if c.MaxOpenConns <= 0 {
		c.MaxOpenConns = constants.DatabaseMaxOpenConns
	}
	if c.MaxIdleConns <= 0 {
		c.MaxIdleConns = constants.DatabaseMaxIdleConns
	}
	if c.ConnMaxLifetime <= 0 {
		c.ConnMaxLifetime = time.Duration(constants.DatabaseConnMaxLifetime) * time.Minute
	}
	return c
}

// DSN renders the lib/pq connection string. statement_timeout is passed
// through as a server run-time parameter.
func (c DatabaseConfig) DSN() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.Host),
		fmt.Sprintf("port=%d", c.Port),
		fmt.Sprintf("user=%s", c.User),
		fmt.Sprintf("dbname=%s", c.DBName),
		fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	if c.Password != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.Password))
	}
	if c.StatementTimeout > 0 {
		parts = append(parts, fmt.Sprintf("statement_timeout=%d", c.StatementTimeout.Milliseconds()))
	}
	return strings.Join(parts, " ")
}

// NewFromSQLx wraps an existing connection.
func NewFromSQLx(db *sqlx.DB) Database {
	return Database{db: db.DB, sqlx: db}
}

func InitDB(ctx context.Context, config DatabaseConfig) (Database, error) {
	config = config.withDefaults()
	logger.Info("Database:Init:Connecting", "host", config.Host, "port", config.Port, "database", config.DBName)

	sqlxDB, err := sqlx.ConnectContext(ctx, "postgres", config.DSN())
	if err != nil {
		logger.Error("Database:Init:Connect", "error", err)
		return Database{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlxDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlxDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlxDB.SetConnMaxLifetime(config.ConnMaxLifetime)

	logger.Info("Database:Init:Ready",
		"maxOpenConns", config.MaxOpenConns,
		"maxIdleConns", config.MaxIdleConns,
		"connMaxLifetime", config.ConnMaxLifetime,
		"statementTimeout", config.StatementTimeout,
	)
	return NewFromSQLx(sqlxDB), nil
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) error {
	_, err := d.Conn(ctx).ExecContext(ctx, query, args...)
	return err
}

func (d *Database) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.Conn(ctx).GetContext(ctx, dest, query, args...)
}

func (d *Database) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return d.Conn(ctx).SelectContext(ctx, dest, query, args...)
}

// In expands a query written with ? placeholders and slice arguments into
// $n placeholders for postgres.
func (d *Database) In(query string, args ...any) (string, []any, error) {
	expanded, expandedArgs, err := sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}
	return d.sqlx.Rebind(expanded), expandedArgs, nil
}

// Ping backs the readiness probe.
func (d *Database) Ping(ctx context.Context) error {
	if d.sqlx == nil {
		return fmt.Errorf("database not initialized")
	}
	return d.sqlx.PingContext(ctx)
}

func (d *Database) Close() error {
	if d.sqlx == nil {
		return nil
	}
	return d.sqlx.Close()
}

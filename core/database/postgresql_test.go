package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:             "db",
		Port:             5432,
		User:             "meca",
		Password:         "pw",
		DBName:           "meca",
		StatementTimeout: 15 * time.Second,
	}.withDefaults()

	assert.Equal(t, "host=db port=5432 user=meca dbname=meca sslmode=disable password=pw statement_timeout=15000", cfg.DSN())
}

func TestDSN_OmitsEmptyOptionals(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5432, User: "meca", DBName: "meca", SSLMode: "require"}
	assert.Equal(t, "host=db port=5432 user=meca dbname=meca sslmode=require", cfg.DSN())
}

func TestWithDefaults(t *testing.T) {
	cfg := DatabaseConfig{MaxOpenConns: 4}.withDefaults()
	assert.Equal(t, 4, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.Equal(t, "disable", cfg.SSLMode)
}

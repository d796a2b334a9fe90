package server

import (
	"context"
	"fmt"
	"slices"
	"time"

	"meca-api/core/config"
	"meca-api/core/constants"
	"meca-api/core/database"
	"meca-api/core/logger"
	"meca-api/core/utils"

	"github.com/google/uuid"
)

// Migrate applies pending migrations and returns. Used by deploy jobs that run
// before the API starts.
func Migrate(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.Server.Env); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.InitDB(ctx, databaseConfig(cfg))
	if err != nil {
		return err
	}
	defer db.Close()

	return db.Migrate(ctx)
}

var tokenRoles = []string{constants.RoleAdmin, constants.RoleEventDirector, constants.RoleUser}

// IssueToken signs a bearer token with the configured secret. Sign-in lives
// outside this service; this covers operators and local testing.
func IssueToken(profileID, role string, ttl time.Duration) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("load config: %w", err)
	}
	return issueToken(cfg.JWT, profileID, role, ttl)
}

func issueToken(jwtCfg config.JWTConfig, profileID, role string, ttl time.Duration) (string, error) {
	id, err := uuid.Parse(profileID)
	if err != nil {
		return "", fmt.Errorf("profile id: %w", err)
	}
	if !slices.Contains(tokenRoles, role) {
		return "", fmt.Errorf("unknown role %q", role)
	}
	if ttl <= 0 {
		ttl = jwtCfg.TTL
	}
	return utils.GenerateToken(jwtCfg.Secret, jwtCfg.Issuer, id, role, ttl)
}

func databaseConfig(cfg *config.Config) database.DatabaseConfig {
	return database.DatabaseConfig{
		Host:             cfg.Database.Host,
		Port:             cfg.Database.Port,
		User:             cfg.Database.User,
		Password:         cfg.Database.Password,
		DBName:           cfg.Database.DBName,
		SSLMode:          cfg.Database.SSLMode,
		MaxOpenConns:     cfg.Database.MaxOpenConns,
		MaxIdleConns:     cfg.Database.MaxIdleConns,
		ConnMaxLifetime:  cfg.Database.ConnMaxLifetime,
		StatementTimeout: cfg.Database.StatementTimeout,
	}
}

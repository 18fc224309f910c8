package db

import (
	"context"
	"fmt"
	"os"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQL driver shared by all repositories
type Database struct {
	Driver *entsql.Driver
}

// Open connects to the database and verifies the connection.
// driver is "postgres" or "sqlite3". An empty postgres URL is built from DB_* variables.
func Open(ctx context.Context, driver, url string) (*Database, error) {
	var name string
	switch driver {
	case dialect.Postgres:
		name = dialect.Postgres
		if url == "" {
			url = NewConfig().DSN()
		}
	case dialect.SQLite:
		name = dialect.SQLite
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	drv, err := entsql.Open(name, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := drv.DB().PingContext(ctx); err != nil {
		drv.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{Driver: drv}, nil
}

// Initialize opens the database and creates or updates the schema
func Initialize(ctx context.Context, driver, url string) (*Database, error) {
	database, err := Open(ctx, driver, url)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// Migrate creates missing tables, columns and indexes
func (d *Database) Migrate(ctx context.Context) error {
	migrate, err := schema.NewMigrate(d.Driver)
	if err != nil {
		return fmt.Errorf("failed creating migrator: %w", err)
	}
	if err := migrate.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable
func (d *Database) Ping(ctx context.Context) error {
	return d.Driver.DB().PingContext(ctx)
}

// Dialect returns the SQL dialect of the connection
func (d *Database) Dialect() string {
	return d.Driver.Dialect()
}

// Close closes the underlying connection pool
func (d *Database) Close() error {
	return d.Driver.Close()
}

// Config represents Postgres connection settings
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a new database configuration from environment variables
func NewConfig() *Config {
	return &Config{
		Host:     getEnvOrDefault("DB_HOST", "localhost"),
		Port:     getEnvOrDefaultInt("DB_PORT", 5432),
		User:     getEnvOrDefault("DB_USER", "postgres"),
		Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
		DBName:   getEnvOrDefault("DB_NAME", "portfolio"),
		SSLMode:  getEnvOrDefault("DB_SSL_MODE", "disable"),
	}
}

// DSN renders the lib/pq connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// Helper functions for environment variables
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var result int
		if _, err := fmt.Sscanf(value, "%d", &result); err == nil {
			return result
		}
	}
	return defaultValue
}

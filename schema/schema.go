// Package schema creates the destination table across the supported
// database dialects: PostgreSQL, MySQL/MariaDB and SQLite.
package schema

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

var identifierRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

// validateIdentifier ensures an identifier contains only safe characters for SQL.
// Returns an error if the identifier contains characters that could be used for SQL injection.
func validateIdentifier(name string) error {
	if name == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	if !identifierRegex.MatchString(name) {
		return fmt.Errorf("table name must start with a letter and contain only letters, numbers, and underscores (got: %s)", name)
	}
	return nil
}

// DDL returns the CREATE TABLE statement for the destination table in the
// given driver's dialect.
func DDL(driver, table string) (string, error) {
	if err := validateIdentifier(table); err != nil {
		return "", err
	}

	switch driver {
	case "postgres":
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id BIGSERIAL PRIMARY KEY,
    sender TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`, table), nil
	case "mysql":
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id BIGINT AUTO_INCREMENT PRIMARY KEY,
    sender VARCHAR(255) NOT NULL,
    message TEXT NOT NULL,
    created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`, table), nil
	case "sqlite3":
		return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    sender TEXT NOT NULL,
    message TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
)`, table), nil
	default:
		return "", fmt.Errorf("unsupported driver: %s", driver)
	}
}

// Apply creates the destination table if it does not exist.
func Apply(ctx context.Context, db *sql.DB, driver, table string) error {
	ddl, err := DDL(driver, table)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create destination table: %w", err)
	}

	return nil
}

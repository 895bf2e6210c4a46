package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  title TEXT NOT NULL,
  description TEXT,
  status TEXT NOT NULL DEFAULT 'pending',
  priority TEXT NOT NULL DEFAULT 'medium',
  due_date VARCHAR(10),
  created_at TIMESTAMP NOT NULL
);
`

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS tasks (
  id BIGINT AUTO_INCREMENT PRIMARY KEY,
  title VARCHAR(255) NOT NULL,
  description TEXT,
  status VARCHAR(64) NOT NULL DEFAULT 'pending',
  priority VARCHAR(64) NOT NULL DEFAULT 'medium',
  due_date VARCHAR(10),
  created_at DATETIME(6) NOT NULL
);
`

// EnsureSchema creates the tasks table if it does not exist yet. It is run
// at every startup instead of a migrations framework; the statement is
// idempotent in both dialects.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	var schema string
	switch db.DriverName() {
	case "sqlite":
		schema = sqliteSchema
	case "mysql":
		schema = mysqlSchema
	default:
		return fmt.Errorf("no schema for driver %q", db.DriverName())
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/Tarunkashyap6665/taskify-bhatiyani/internal/config"
)

// ConnectDB opens the configured database. SQLite is the default and needs
// no external service; MySQL is selected with DB_DRIVER=mysql.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	switch conf.DBDriver {
	case config.DriverMySQL:
		return connectMySQL(conf)
	case config.DriverSQLite, "":
		return ConnectSQLite(conf.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", conf.DBDriver)
	}
}

func ConnectSQLite(path string) (*sqlx.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, err
	}

	// A single connection keeps in-memory databases from vanishing between
	// pooled connections and serializes writers.
	db.SetMaxOpenConns(1)

	return db, nil
}

func connectMySQL(conf *config.Config) (*sqlx.DB, error) {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	return sqlx.Connect("mysql", dsn)
}

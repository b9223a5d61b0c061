package repository

import (
	"database/sql"
	"fmt"

	"simples/internal/simples/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

// OpenPool prepares the shared pool. sql.Open never dials, so this does not
// block on the database being reachable.
func OpenPool(cfg config.DBConfig) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxOpenConns)
	return db, nil
}

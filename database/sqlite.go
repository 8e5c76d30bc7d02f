package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// connectionOptions are applied by the driver to every pooled connection.
// Writers take the lock when the transaction begins and wait up to busy_timeout for it.
var connectionOptions = []string{
	"_busy_timeout=5000",
	"_journal_mode=WAL",
	"_synchronous=NORMAL",
	"_txlock=immediate",
}

var db *sql.DB

// DSN appends the connection options to a database path
func DSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(connectionOptions, "&")
}

// Open opens and pings a SQLite database at path
func Open(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

// OpenDB initializes the shared SQLite database connection
func OpenDB(path string) error {
	conn, err := Open(path)
	if err != nil {
		return err
	}
	db = conn
	return nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(path string) error {
	if err := OpenDB(path); err != nil {
		return err
	}

	if err := RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	fmt.Println("✅ Database initialized successfully")
	return nil
}

// GetDB returns the database connection
func GetDB() *sql.DB {
	return db
}

// CloseDB closes the database connection
func CloseDB() error {
	if db != nil {
		return db.Close()
	}
	return nil
}

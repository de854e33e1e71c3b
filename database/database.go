package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/databricks/databricks-sql-go"

	"salesdash/config"
)

// db is the process-lifetime warehouse connection. It stays nil when the
// warehouse is unreachable; queries treat a nil handle as "no data".
var db *sql.DB

// Connect opens the connection to the Databricks SQL warehouse using the
// loaded credentials. A connection failure is reported but not fatal.
func Connect() {
	cfg := config.AppConfig

	httpPath := cfg.HTTPPath
	if !strings.HasPrefix(httpPath, "/") {
		httpPath = "/" + httpPath
	}
	dsn := fmt.Sprintf("token:%s@%s:443%s", cfg.AccessToken, cfg.ServerHostname, httpPath)

	handle, err := sql.Open("databricks", dsn)
	if err != nil {
		log.Printf("Error opening warehouse connection: %v", err)
		return
	}

	// The warehouse session is not safe for concurrent use; serialize all
	// queries through a single connection.
	handle.SetMaxOpenConns(1)
	handle.SetMaxIdleConns(1)
	handle.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := handle.PingContext(ctx); err != nil {
		log.Printf("Warehouse ping failed: %v", err)
		handle.Close()
		return
	}

	db = handle
	log.Println("Successfully connected to the Databricks warehouse")
}

// GetDB returns the active warehouse connection, or nil when unavailable.
func GetDB() *sql.DB {
	return db
}

// SetDB replaces the active connection. Used by tests to inject a mock.
func SetDB(handle *sql.DB) {
	db = handle
}

// Close closes the warehouse connection.
func Close() {
	if db != nil {
		db.Close()
		db = nil
		log.Println("Warehouse connection closed")
	}
}

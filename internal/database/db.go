package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens the SQLite product database in read-only mode and
// verifies the connection. The service never writes: mode=ro keeps the
// file untouched and lets any number of connections read concurrently
// without locking each other out.
func Open(path string) (*sql.DB, error) {
	// mode=ro would surface a missing file only on first query; check
	// up front so startup fails with a clear error.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat database file: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)&_pragma=query_only(1)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings: each connection is an independent reader.
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createRecordingsTable = `
CREATE TABLE IF NOT EXISTS recordings (
		"id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"recording_id" TEXT NOT NULL UNIQUE,
		"source" TEXT NOT NULL,
		"original_name" TEXT,
		"content_type" TEXT,
		"size" INTEGER NOT NULL,
		"checksum" TEXT NOT NULL,
		"file_path" TEXT NOT NULL,
		"created_at" TEXT NOT NULL
);`

// OpenDatabase opens (or creates) the sqlite upload log and its schema.
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("OpenDatabase(): failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("OpenDatabase(): failed to open database: %w", err)
	}
	// sqlite는 단일 writer라 커넥션 하나로 충분하다
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenDatabase(): failed to connect to database: %w", err)
	}
	if _, err := db.ExecContext(ctx, createRecordingsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenDatabase(): failed to create recordings table: %w", err)
	}

	log.Printf("OpenDatabase(): database ready at %s", path)
	return db, nil
}

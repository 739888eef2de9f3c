package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"AudioRecordingServer/internal/models"
)

// RecordStore is the append-only log of successful recording writes.
type RecordStore struct {
	db *sql.DB
}

func NewRecordStore(db *sql.DB) *RecordStore {
	return &RecordStore{db: db}
}

func (s *RecordStore) CreateRecording(ctx context.Context, rec models.Recording) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO recordings(recording_id, source, original_name, content_type, size, checksum, file_path, created_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Source, rec.OriginalName, rec.ContentType, rec.Size, rec.Checksum, rec.FilePath,
		rec.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("RecordStore.CreateRecording(): %w", err)
	}
	return nil
}

// ListRecordings returns up to limit records, newest first.
func (s *RecordStore) ListRecordings(ctx context.Context, limit int) ([]models.Recording, error) {
	query := `
		SELECT recording_id, source, original_name, content_type, size, checksum, file_path, created_at
		FROM recordings
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("RecordStore.ListRecordings(): %w", err)
	}
	defer rows.Close()

	records := make([]models.Recording, 0)
	for rows.Next() {
		var r models.Recording
		var name, contentType sql.NullString
		var createdStr string

		if err := rows.Scan(&r.ID, &r.Source, &name, &contentType, &r.Size, &r.Checksum, &r.FilePath, &createdStr); err != nil {
			return nil, fmt.Errorf("RecordStore.ListRecordings(): %w", err)
		}
		r.OriginalName = name.String
		r.ContentType = contentType.String

		parsedTime, err := time.Parse(time.RFC3339Nano, createdStr)
		if err != nil {
			return nil, fmt.Errorf("RecordStore.ListRecordings(): bad created_at %q: %w", createdStr, err)
		}
		r.CreatedAt = parsedTime

		records = append(records, r)
	}
	return records, rows.Err()
}

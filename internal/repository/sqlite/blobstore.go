package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/pixwall/internal/domain"
)

// BlobStore implements domain.BlobStore using SQLite BLOB rows. Backed by
// an in-memory database it holds the transient bytes of uploaded and
// edited images for the session; Delete releases a reference so a long
// session does not accumulate superseded rasters.
type BlobStore struct {
	db *sql.DB
}

// NewBlobStore creates the blob table if needed and returns the store.
func NewBlobStore(db *sql.DB) (*BlobStore, error) {
	_, err := db.ExecContext(context.Background(), `
		CREATE TABLE IF NOT EXISTS image_blobs (
			storage_key  TEXT PRIMARY KEY,
			content_type TEXT NOT NULL,
			data         BLOB NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("create blob table: %w", err)
	}
	return &BlobStore{db: db}, nil
}

func (s *BlobStore) Save(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO image_blobs (storage_key, content_type, data) VALUES (?, ?, ?)",
		key, contentType, data,
	)
	if err != nil {
		return fmt.Errorf("save image blob: %w", err)
	}
	return nil
}

func (s *BlobStore) Get(ctx context.Context, key string) ([]byte, string, error) {
	var (
		data        []byte
		contentType string
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT data, content_type FROM image_blobs WHERE storage_key = ?", key,
	).Scan(&data, &contentType)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", domain.ErrNotFound
		}
		return nil, "", fmt.Errorf("get image blob: %w", err)
	}
	return data, contentType, nil
}

func (s *BlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM image_blobs WHERE storage_key = ?", key,
	)
	if err != nil {
		return fmt.Errorf("delete image blob: %w", err)
	}
	return nil
}

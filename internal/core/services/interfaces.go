package services

import (
	"context"
	"io"
)

// MediaStore persists receipts and profile photos and returns a stable URL
type MediaStore interface {
	Upload(ctx context.Context, folder, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, folder, url string) error
}

// BackupUploader stores a backup artifact and returns its id and link
type BackupUploader interface {
	Upload(ctx context.Context, name string, content []byte) (fileID string, link string, err error)
}

// Upload is an optional file attached to a create or update request
type Upload struct {
	Filename string
	Content  io.Reader
}

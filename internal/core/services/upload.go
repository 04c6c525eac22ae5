package services

import (
	"bytes"
	"context"
	"io"
	"log"
	"strings"
	"time"

	"iadev-dashboard/internal/pkg/metrics"
)

// UploadWarning is reported when a record was saved without its attachment
const UploadWarning = "record saved without attachment: upload failed or timed out"

// uploader bounds auxiliary uploads so a slow store degrades to saving the
// record without the file
type uploader struct {
	store   MediaStore
	timeout time.Duration
}

// put returns the stored URL, or "" and a warning when the upload failed.
// The content is buffered first since the caller closes it once put returns.
func (u uploader) put(ctx context.Context, folder string, file *Upload) (string, string) {
	if file == nil || file.Content == nil {
		return "", ""
	}

	content, err := io.ReadAll(file.Content)
	if err != nil {
		metrics.Uploads.WithLabelValues(folder, "failed").Inc()
		log.Printf("⚠️ Warning: failed to read %s upload: %v", folder, err)
		return "", UploadWarning
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	type result struct {
		url string
		err error
	}
	done := make(chan result, 1)
	go func() {
		url, err := u.store.Upload(ctx, folder, file.Filename, bytes.NewReader(content))
		done <- result{url: url, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			metrics.Uploads.WithLabelValues(folder, "failed").Inc()
			log.Printf("⚠️ Warning: %s upload failed: %v", folder, r.err)
			return "", UploadWarning
		}
		metrics.Uploads.WithLabelValues(folder, "ok").Inc()
		return r.url, ""
	case <-ctx.Done():
		metrics.Uploads.WithLabelValues(folder, "timeout").Inc()
		log.Printf("⚠️ Warning: %s upload aborted after %s", folder, u.timeout)
		// the record is saved without this file; drop it if it lands anyway
		go func() {
			if r := <-done; r.err == nil && r.url != "" {
				u.remove(context.Background(), folder, r.url)
			}
		}()
		return "", UploadWarning
	}
}

// remove deletes a stored object, logging instead of failing
func (u uploader) remove(ctx context.Context, folder, url string) {
	if url == "" || strings.Contains(url, "svg+xml") {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	if err := u.store.Delete(ctx, folder, url); err != nil {
		log.Printf("⚠️ Warning: failed to remove %s object: %v", folder, err)
	}
}

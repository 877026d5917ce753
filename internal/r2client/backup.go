package r2client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/aauhelpdesk/helpdesk-go/internal/logger"
)

const backupContentType = "application/zstd"

// Backup uploads zstd-compressed copies of the SQLite database to R2
// and restores them on a fresh deployment.
type Backup struct {
	client *Client
	dbPath string
	key    string
	logger *logger.Logger
}

// NewBackup creates a backup manager for the database at dbPath.
// The compressed database is stored under key in the configured bucket.
func NewBackup(client *Client, dbPath, key string, log *logger.Logger) *Backup {
	return &Backup{
		client: client,
		dbPath: dbPath,
		key:    key,
		logger: log.WithModule("backup"),
	}
}

// Run compresses the database file and uploads it, replacing the
// previous backup object.
func (b *Backup) Run(ctx context.Context) error {
	start := time.Now()

	tmpPath := b.dbPath + ".zst.tmp"
	if err := CompressFile(b.dbPath, tmpPath); err != nil {
		return fmt.Errorf("backup: %w", err)
	}
	defer os.Remove(tmpPath)

	f, err := os.Open(tmpPath)
	if err != nil {
		return fmt.Errorf("backup: open compressed file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("backup: stat compressed file: %w", err)
	}

	etag, err := b.client.Upload(ctx, b.key, f, backupContentType)
	if err != nil {
		return fmt.Errorf("backup: %w", err)
	}

	b.logger.WithFields(map[string]any{
		"key":         b.key,
		"etag":        etag,
		"size_bytes":  info.Size(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Database backup uploaded")

	return nil
}

// Restore downloads the latest backup and decompresses it to the
// database path. It is a no-op when a local database already exists
// or no backup object is present.
func (b *Backup) Restore(ctx context.Context) error {
	if _, err := os.Stat(b.dbPath); err == nil {
		b.logger.Debug("Local database exists, skipping restore")
		return nil
	}

	body, etag, err := b.client.Download(ctx, b.key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			b.logger.WithField("key", b.key).Info("No backup found, starting fresh")
			return nil
		}
		return fmt.Errorf("restore: %w", err)
	}
	defer body.Close()

	if err := os.MkdirAll(filepath.Dir(b.dbPath), 0o755); err != nil {
		return fmt.Errorf("restore: create data dir: %w", err)
	}

	if err := DecompressStream(body, b.dbPath); err != nil {
		return fmt.Errorf("restore: %w", err)
	}

	b.logger.WithFields(map[string]any{
		"key":  b.key,
		"etag": etag,
	}).Info("Database restored from backup")

	return nil
}

// CompressFile compresses a file using zstd and writes to the destination path.
func CompressFile(srcPath, dstPath string) error {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("compress: open source: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("compress: create dest: %w", err)
	}
	defer dst.Close()

	encoder, err := zstd.NewWriter(dst, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return fmt.Errorf("compress: create encoder: %w", err)
	}

	if _, err := io.Copy(encoder, src); err != nil {
		_ = encoder.Close()
		return fmt.Errorf("compress: copy: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("compress: close encoder: %w", err)
	}

	return nil
}

// DecompressStream decompresses a zstd-compressed stream to the destination path.
// Uses streaming decompression to minimize memory usage.
func DecompressStream(r io.Reader, dstPath string) error {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("decompress: create decoder: %w", err)
	}
	defer decoder.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("decompress: create dest: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, decoder); err != nil {
		return fmt.Errorf("decompress: copy: %w", err)
	}

	return nil
}

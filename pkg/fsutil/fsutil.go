// Package fsutil provides file system utilities for mdpress.
// It handles reads with metadata capture and atomic writes.
package fsutil

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"time"
)

// FileInfo captures the state of a file at a point in time.
type FileInfo struct {
	// Path is the absolute or relative path to the file.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the file size in bytes.
	Size int64

	// Hash is the SHA-256 hash of the file content.
	Hash [32]byte
}

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// ReadFile reads a file and returns its content along with metadata.
func ReadFile(ctx context.Context, path string) ([]byte, *FileInfo, error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if stat.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, nil, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    stat.Size(),
		Hash:    sha256.Sum256(content),
	}

	return content, info, nil
}

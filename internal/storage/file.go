package storage

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/logging"
	"github.com/fitjournal/fitjournal/internal/model"
)

// maxLineSize bounds a single history line when reading.
const maxLineSize = 1024 * 1024

// FileHistory stores entries as newline-terminated lines in a flat text file.
// The file is only ever opened for append or read; it is never rewritten.
// The handle is opened and closed within each call.
type FileHistory struct {
	path         string
	minFreeSpace uint64
}

// NewFileHistory creates a file-backed history at path.
// The file is created lazily by the first Append.
func NewFileHistory(path string, minFreeSpace uint64) *FileHistory {
	return &FileHistory{path: path, minFreeSpace: minFreeSpace}
}

// Path returns the history file path.
func (h *FileHistory) Path() string {
	return h.path
}

// Name returns the file name shown to the user.
func (h *FileHistory) Name() string {
	return filepath.Base(h.path)
}

// Exists reports whether the history file has been created.
func (h *FileHistory) Exists() bool {
	_, err := os.Stat(h.path)
	return err == nil
}

// Append writes the entry as one line at the end of the file, creating it if absent.
func (h *FileHistory) Append(ctx context.Context, e *model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := CheckDiskSpace(filepath.Dir(h.path), h.minFreeSpace); err != nil {
		return err
	}

	f, err := os.OpenFile(h.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return wrapIOError("open", h.path, err)
	}

	line := e.String() + "\n"
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return wrapIOError("write", h.path, err)
	}
	if err := f.Close(); err != nil {
		return wrapIOError("close", h.path, err)
	}

	logging.LogOperation("append", logging.KeyStore, "file", logging.KeyPath, h.path)
	return nil
}

// ReadAll returns every line of the file in order, without trailing newlines.
// A missing file yields errors.ErrNoHistory; an empty file yields no lines.
func (h *FileHistory) ReadAll(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(h.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrNoHistory
		}
		return nil, wrapIOError("open", h.path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapIOError("read", h.path, err)
	}

	logging.LogOperation("read_all", logging.KeyStore, "file", logging.KeyPath, h.path, logging.KeyCount, len(lines))
	return lines, nil
}

// Close is a no-op; FileHistory holds no handle between calls.
func (h *FileHistory) Close() error {
	return nil
}

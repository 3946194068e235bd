package storage

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitjournal/fitjournal/internal/config"
	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.Local)
}

func setupFileHistory(t *testing.T) *FileHistory {
	return NewFileHistory(filepath.Join(t.TempDir(), config.DefaultHistoryFile), 0)
}

func setupBadgerHistory(t *testing.T) *BadgerHistory {
	db, err := Open(DBOptions{InMemory: true})
	require.NoError(t, err)
	h := NewBadgerHistory(db)
	t.Cleanup(func() { h.Close() })
	return h
}

// =============================================================================
// FileHistory Tests
// =============================================================================

func TestFileHistoryAppendCreatesFile(t *testing.T) {
	h := setupFileHistory(t)
	ctx := context.Background()
	assert.False(t, h.Exists())

	err := h.Append(ctx, model.NewEntry(day(28), model.TypeRunning, "30", ""))
	require.NoError(t, err)
	assert.True(t, h.Exists())

	data, err := os.ReadFile(h.Path())
	require.NoError(t, err)
	assert.Equal(t, "2024-01-28 - Running - 30 minutes\n", string(data))
}

func TestFileHistoryAppendOrder(t *testing.T) {
	h := setupFileHistory(t)
	ctx := context.Background()

	const n = 25
	for i := 1; i <= n; i++ {
		e := model.NewEntry(day(1), model.TypeYoga, fmt.Sprint(i), "")
		require.NoError(t, h.Append(ctx, e))
	}

	lines, err := h.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, lines, n)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("2024-01-01 - Yoga - %d minutes", i+1), line)
	}
}

func TestFileHistoryNeverRewrites(t *testing.T) {
	h := setupFileHistory(t)
	ctx := context.Background()

	// Lines written by someone else are kept verbatim.
	require.NoError(t, os.WriteFile(h.Path(), []byte("hand written line\n"), 0o644))
	require.NoError(t, h.Append(ctx, model.NewEntry(day(2), model.TypeCycling, "60", "hills")))

	data, err := os.ReadFile(h.Path())
	require.NoError(t, err)
	assert.Equal(t, "hand written line\n2024-01-02 - Cycling - 60 minutes - Notes: hills\n", string(data))
}

func TestFileHistoryReadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("missing_file", func(t *testing.T) {
		h := setupFileHistory(t)
		lines, err := h.ReadAll(ctx)
		assert.True(t, stderrors.Is(err, errors.ErrNoHistory))
		assert.Nil(t, lines)
		assert.False(t, h.Exists(), "reading must not create the file")
	})

	t.Run("empty_file", func(t *testing.T) {
		h := setupFileHistory(t)
		require.NoError(t, os.WriteFile(h.Path(), nil, 0o644))

		lines, err := h.ReadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("crlf_lines", func(t *testing.T) {
		h := setupFileHistory(t)
		require.NoError(t, os.WriteFile(h.Path(), []byte("a\r\nb\r\n"), 0o644))

		lines, err := h.ReadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, lines)
	})

	t.Run("missing_trailing_newline", func(t *testing.T) {
		h := setupFileHistory(t)
		require.NoError(t, os.WriteFile(h.Path(), []byte("a\nb"), 0o644))

		lines, err := h.ReadAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, lines)
	})

	t.Run("read_does_not_modify", func(t *testing.T) {
		h := setupFileHistory(t)
		require.NoError(t, h.Append(ctx, model.NewEntry(day(3), model.TypeSwimming, "20", "")))
		before, err := os.ReadFile(h.Path())
		require.NoError(t, err)

		_, err = h.ReadAll(ctx)
		require.NoError(t, err)

		after, err := os.ReadFile(h.Path())
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})
}

func TestFileHistoryCancelledContext(t *testing.T) {
	h := setupFileHistory(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Append(ctx, model.NewEntry(day(1), model.TypeRunning, "5", ""))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, h.Exists())

	_, err = h.ReadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileHistoryAppendToMissingDirectory(t *testing.T) {
	h := NewFileHistory(filepath.Join(t.TempDir(), "missing", "history.txt"), 0)

	err := h.Append(context.Background(), model.NewEntry(day(1), model.TypeRunning, "5", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open")
}

func TestFileHistoryPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o700) })

	h := NewFileHistory(filepath.Join(dir, "history.txt"), 0)
	err := h.Append(context.Background(), model.NewEntry(day(1), model.TypeRunning, "5", ""))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrPermissionDenied))
	assert.True(t, errors.IsSystemError(err))
}

func TestFileHistoryInsufficientSpace(t *testing.T) {
	h := NewFileHistory(filepath.Join(t.TempDir(), "history.txt"), ^uint64(0))

	err := h.Append(context.Background(), model.NewEntry(day(1), model.TypeRunning, "5", ""))
	if err == nil {
		t.Skip("disk space could not be determined")
	}
	assert.True(t, stderrors.Is(err, errors.ErrDiskFull))
	assert.False(t, h.Exists())
}

func TestFileHistoryName(t *testing.T) {
	h := NewFileHistory(filepath.Join("some", "dir", "workout_history.txt"), 0)
	assert.Equal(t, "workout_history.txt", h.Name())
	assert.NoError(t, h.Close())
}

// =============================================================================
// BadgerHistory Tests
// =============================================================================

func TestBadgerHistoryAppendAndRead(t *testing.T) {
	h := setupBadgerHistory(t)
	ctx := context.Background()

	_, err := h.ReadAll(ctx)
	assert.True(t, stderrors.Is(err, errors.ErrNoHistory))

	require.NoError(t, h.Append(ctx, model.NewEntry(day(28), model.TypeRunning, "30", "")))
	require.NoError(t, h.Append(ctx, model.NewEntry(day(29), "Rowing", "20", "felt great")))

	lines, err := h.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-01-28 - Running - 30 minutes",
		"2024-01-29 - Rowing - 20 minutes - Notes: felt great",
	}, lines)
}

func TestBadgerHistoryOrderAndKeys(t *testing.T) {
	h := setupBadgerHistory(t)
	ctx := context.Background()

	const n = 50
	for i := 0; i < n; i++ {
		require.NoError(t, h.Append(ctx, model.NewEntry(day(1), model.TypeYoga, fmt.Sprint(i), "")))
	}

	count, err := h.Count()
	require.NoError(t, err)
	assert.Equal(t, n, count)

	entries, err := h.Entries()
	require.NoError(t, err)
	require.Len(t, entries, n)
	for i, e := range entries {
		assert.Equal(t, fmt.Sprint(i), e.Duration)
		assert.True(t, strings.HasPrefix(e.Key, model.PrefixWorkout+":"))
	}
}

func TestBadgerHistoryDoesNotMutateInput(t *testing.T) {
	h := setupBadgerHistory(t)
	e := model.NewEntry(day(1), model.TypeRunning, "5", "")

	require.NoError(t, h.Append(context.Background(), e))
	assert.Empty(t, e.Key)
}

func TestBadgerHistoryName(t *testing.T) {
	h := setupBadgerHistory(t)
	assert.Equal(t, "in-memory history", h.Name())
}

func TestBadgerHistoryOnDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "db")
	ctx := context.Background()

	db, err := Open(DBOptions{Path: dir})
	require.NoError(t, err)
	h := NewBadgerHistory(db)
	assert.Equal(t, dir, h.Name())
	require.NoError(t, h.Append(ctx, model.NewEntry(day(5), model.TypeCycling, "40", "")))
	require.NoError(t, h.Close())

	db, err = Open(DBOptions{Path: dir})
	require.NoError(t, err)
	h = NewBadgerHistory(db)
	defer h.Close()

	lines, err := h.ReadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-05 - Cycling - 40 minutes"}, lines)
}

// =============================================================================
// OpenHistory Tests
// =============================================================================

func TestOpenHistory(t *testing.T) {
	t.Run("default_is_file", func(t *testing.T) {
		h, err := OpenHistory(Options{})
		require.NoError(t, err)
		defer h.Close()

		fh, ok := h.(*FileHistory)
		require.True(t, ok)
		assert.Equal(t, config.DefaultHistoryFile, fh.Path())
	})

	t.Run("file_with_path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "h.txt")
		h, err := OpenHistory(Options{Store: config.StoreFile, File: path})
		require.NoError(t, err)
		assert.Equal(t, "h.txt", h.Name())
	})

	t.Run("badger_in_memory", func(t *testing.T) {
		h, err := OpenHistory(Options{Store: config.StoreBadger, DatabasePath: ":memory:"})
		require.NoError(t, err)
		defer h.Close()

		_, ok := h.(*BadgerHistory)
		assert.True(t, ok)
	})

	t.Run("unknown_store", func(t *testing.T) {
		_, err := OpenHistory(Options{Store: "sqlite"})
		require.Error(t, err)
		assert.True(t, errors.IsUserError(err))
		assert.Contains(t, err.Error(), "sqlite")
	})

	t.Run("from_config", func(t *testing.T) {
		cfg := config.DefaultRuntimeConfig()
		cfg.History.File = "x.txt"
		opts := OptionsFromConfig(cfg)
		assert.Equal(t, config.StoreFile, opts.Store)
		assert.Equal(t, "x.txt", opts.File)
		assert.Equal(t, cfg.Storage.MinFreeSpace, opts.MinFreeSpace)
	})
}

// =============================================================================
// Disk Space Tests
// =============================================================================

func TestCheckDiskSpace(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, CheckDiskSpace(dir, 0))
	assert.NoError(t, CheckDiskSpace(dir, 1))
	assert.NoError(t, CheckDiskSpace(filepath.Join(dir, "not", "yet"), 1))
}

func TestGetDiskSpace(t *testing.T) {
	info, err := GetDiskSpace(t.TempDir())
	require.NoError(t, err)
	assert.Greater(t, info.TotalBytes, uint64(0))
	assert.GreaterOrEqual(t, info.FreePercent(), 0.0)
	assert.LessOrEqual(t, info.FreePercent(), 100.0)

	assert.Equal(t, 0.0, (&DiskSpaceInfo{}).FreePercent())
}

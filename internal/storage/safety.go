package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fitjournal/fitjournal/internal/errors"
)

// DiskSpaceInfo contains information about available disk space.
type DiskSpaceInfo struct {
	Path       string
	TotalBytes uint64
	FreeBytes  uint64
	UsedBytes  uint64
}

// FreePercent returns the percentage of free space.
func (d *DiskSpaceInfo) FreePercent() float64 {
	if d.TotalBytes == 0 {
		return 0
	}
	return float64(d.FreeBytes) / float64(d.TotalBytes) * 100
}

// CheckDiskSpace checks that at least minFree bytes are available at path.
// A zero minFree disables the check. If disk space cannot be determined the
// write is allowed to proceed.
func CheckDiskSpace(path string, minFree uint64) error {
	if minFree == 0 {
		return nil
	}

	info, err := GetDiskSpace(path)
	if err != nil {
		return nil
	}

	if info.FreeBytes < minFree {
		return errors.NewSystemError(
			fmt.Sprintf("insufficient disk space: %d KB free, need at least %d KB",
				info.FreeBytes/1024, minFree/1024),
			errors.ErrDiskFull,
		)
	}

	return nil
}

// existingAncestor walks up from path until it finds something that exists.
func existingAncestor(path string) string {
	for {
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(path)
		if parent == path {
			return path
		}
		path = parent
	}
}

// wrapIOError maps file system failures onto the fitjournal error taxonomy.
func wrapIOError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	if isDiskFullError(err) {
		return errors.NewSystemErrorWithOp(op, "disk full", fmt.Errorf("%w: %w", errors.ErrDiskFull, err))
	}
	if os.IsPermission(err) {
		return errors.NewSystemErrorWithOp(op, "permission denied on "+path,
			fmt.Errorf("%w: %w", errors.ErrPermissionDenied, err))
	}
	return errors.Wrapf(err, "%s %s", op, path)
}

package errors

import (
	"errors"
	"io/fs"
	"syscall"
)

// Category represents the type of error for display and handling purposes.
type Category int

const (
	// CategoryUnknown is the default for unclassified errors.
	CategoryUnknown Category = iota
	// CategoryUser indicates an error the user can fix (bad choice, bad date).
	CategoryUser
	// CategorySystem indicates a system-level error (disk full, permissions).
	CategorySystem
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryUser:
		return "user"
	case CategorySystem:
		return "system"
	default:
		return "unknown"
	}
}

// Classify determines the category of an error.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnknown
	}

	if IsUserError(err) {
		return CategoryUser
	}
	if IsSystemError(err) {
		return CategorySystem
	}

	if errors.Is(err, ErrInvalidOption) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidField) {
		return CategoryUser
	}

	if isSystemLevel(err) {
		return CategorySystem
	}

	return CategoryUnknown
}

// isSystemLevel checks if an error is a system-level error.
func isSystemLevel(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ENOSPC, syscall.EACCES, syscall.EPERM, syscall.EIO, syscall.EROFS:
			return true
		}
	}

	if errors.Is(err, fs.ErrPermission) {
		return true
	}

	return errors.Is(err, ErrDiskFull) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrUnknownStore)
}

// IsDiskFull reports whether err indicates that the device has no space left.
func IsDiskFull(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDiskFull) {
		return true
	}
	var errno syscall.Errno
	return errors.As(err, &errno) && errno == syscall.ENOSPC
}

// FormatByCategory returns a user-appropriate error message based on category.
func FormatByCategory(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	suggestion := GetSuggestion(err)

	switch Classify(err) {
	case CategoryUser:
		if suggestion != "" {
			return msg + "\nTry: " + suggestion
		}
		return msg

	case CategorySystem:
		if suggestion != "" {
			return "System error: " + msg + "\n" + suggestion
		}
		return "System error: " + msg

	default:
		return msg
	}
}

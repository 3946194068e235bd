// Package storage persists the workout history.
//
// Two stores implement History: FileHistory, the flat one-line-per-entry
// text file, and BadgerHistory, a structured store on Badger. Callers only
// see Append and ReadAll, so the format can change without touching the menus.
package storage

import (
	"context"
	"fmt"

	"github.com/fitjournal/fitjournal/internal/config"
	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/model"
)

// History is an append-only sequence of workout entries.
type History interface {
	// Append stores one entry after all previously appended entries.
	Append(ctx context.Context, e *model.Entry) error
	// ReadAll returns every stored entry as a history line, in append order.
	// It returns errors.ErrNoHistory if nothing has ever been stored.
	ReadAll(ctx context.Context) ([]string, error)
	// Name identifies the store in messages and logs.
	Name() string
	// Close releases any resources held by the store.
	Close() error
}

// Options configures which history store to open.
type Options struct {
	// Store is config.StoreFile or config.StoreBadger.
	Store string
	// File is the flat history file path.
	File string
	// DatabasePath is the Badger directory; ":memory:" or empty uses memory.
	DatabasePath string
	// MinFreeSpace is checked before every append to the flat file.
	MinFreeSpace uint64
}

// OptionsFromConfig builds store options from the runtime configuration.
func OptionsFromConfig(cfg *config.RuntimeConfig) Options {
	return Options{
		Store:        cfg.History.Store,
		File:         cfg.History.File,
		DatabasePath: cfg.History.DatabasePath,
		MinFreeSpace: cfg.Storage.MinFreeSpace,
	}
}

// OpenHistory opens the history store selected by opts.
func OpenHistory(opts Options) (History, error) {
	switch opts.Store {
	case "", config.StoreFile:
		file := opts.File
		if file == "" {
			file = config.DefaultHistoryFile
		}
		return NewFileHistory(file, opts.MinFreeSpace), nil

	case config.StoreBadger:
		inMemory := opts.DatabasePath == "" || opts.DatabasePath == ":memory:"
		db, err := Open(DBOptions{Path: opts.DatabasePath, InMemory: inMemory})
		if err != nil {
			return nil, errors.NewSystemErrorWithOp("open", "cannot open history database", err)
		}
		return NewBadgerHistory(db), nil

	default:
		return nil, errors.NewUserErrorWithField("store", opts.Store,
			fmt.Sprintf("unknown history store %q", opts.Store),
			errors.Suggestions[errors.ErrUnknownStore])
	}
}

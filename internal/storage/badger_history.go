package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fitjournal/fitjournal/internal/errors"
	"github.com/fitjournal/fitjournal/internal/logging"
	"github.com/fitjournal/fitjournal/internal/model"
)

// BadgerHistory stores entries as JSON values keyed "workout:<uuidv7>".
// UUID v7 keys sort by creation time, so key order is append order.
type BadgerHistory struct {
	db *DB
}

// NewBadgerHistory creates a history backed by db.
func NewBadgerHistory(db *DB) *BadgerHistory {
	return &BadgerHistory{db: db}
}

// Name returns the store name shown to the user.
func (h *BadgerHistory) Name() string {
	if h.db.Path() == "" {
		return "in-memory history"
	}
	return h.db.Path()
}

// Append stores a copy of the entry under a fresh time-ordered key.
func (h *BadgerHistory) Append(ctx context.Context, e *model.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}

	stored := *e
	stored.Key = model.GenerateWorkoutKey(id.String())
	if err := h.db.Set(&stored); err != nil {
		return errors.NewSystemErrorWithOp("append", "cannot store workout", err)
	}

	logging.LogOperation("append", logging.KeyStore, "badger")
	return nil
}

// ReadAll renders every stored entry as a history line, oldest first.
func (h *BadgerHistory) ReadAll(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := h.Entries()
	if err != nil {
		return nil, errors.NewSystemErrorWithOp("read", "cannot read workouts", err)
	}
	if len(entries) == 0 {
		return nil, errors.ErrNoHistory
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.String()
	}

	logging.LogOperation("read_all", logging.KeyStore, "badger", logging.KeyCount, len(lines))
	return lines, nil
}

// Entries returns the stored entries with their keys, oldest first.
func (h *BadgerHistory) Entries() ([]*model.Entry, error) {
	return GetAllByPrefix(h.db, model.PrefixWorkout+":", func() *model.Entry {
		return &model.Entry{}
	})
}

// Count returns the number of stored entries.
func (h *BadgerHistory) Count() (int, error) {
	return h.db.CountByPrefix(model.PrefixWorkout + ":")
}

// Close closes the underlying database.
func (h *BadgerHistory) Close() error {
	return h.db.Close()
}

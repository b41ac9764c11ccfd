// Package recorder turns a resolved button press into a persisted ActionRecord.
package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
)

// Sentinel kinds for recorder errors.
var (
	ErrEmptyAction = errors.New("action must not be empty")
	ErrStoreWrite  = errors.New("store write failed")
)

// Inserter is the store contract the recorder needs.
type Inserter interface {
	Insert(ctx context.Context, rec model.ActionRecord) error
}

// IDGenerator returns a fresh record id.
type IDGenerator func() (string, error)

// Clock returns the current time.
type Clock func() time.Time

// NewID returns a time-ordered UUIDv7 string.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// StoreWriteError carries the store failure back to the caller unchanged.
type StoreWriteError struct {
	Record model.ActionRecord
	Err    error
}

func (e *StoreWriteError) Error() string {
	return e.Err.Error()
}

func (e *StoreWriteError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrStoreWrite) match.
func (e *StoreWriteError) Is(target error) bool {
	return target == ErrStoreWrite
}

// Recorder builds and stores one ActionRecord per call.
type Recorder struct {
	store Inserter
	newID IDGenerator
	now   Clock
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(r *Recorder) {
		if g != nil {
			r.newID = g
		}
	}
}

// WithClock replaces time.Now.
func WithClock(c Clock) Option {
	return func(r *Recorder) {
		if c != nil {
			r.now = c
		}
	}
}

// New returns a Recorder writing to store.
func New(store Inserter, opts ...Option) *Recorder {
	r := &Recorder{
		store: store,
		newID: NewID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Record builds a record for (serialNumber, action) and makes exactly one
// insert attempt. Store failures come back as *StoreWriteError.
func (r *Recorder) Record(ctx context.Context, serialNumber, action string) (model.ActionRecord, error) {
	if action == "" {
		return model.ActionRecord{}, ErrEmptyAction
	}

	id, err := r.newID()
	if err != nil {
		return model.ActionRecord{}, fmt.Errorf("generate record id: %w", err)
	}

	rec := model.NewActionRecord(id, serialNumber, action, r.now())

	if err := r.store.Insert(ctx, rec); err != nil {
		return rec, &StoreWriteError{Record: rec, Err: err}
	}
	return rec, nil
}

package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicateID   = errors.New("record id already exists")
	ErrInsertFailed  = errors.New("insert failed")
	ErrInvalidRecord = errors.New("invalid record")
)

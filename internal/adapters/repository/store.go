// Package repository persists ActionRecords.
package repository

import (
	"context"

	"github.com/armandopadilla/lasttimei-lamdbda/internal/domain/model"
)

// Store is the durable sink for ActionRecords.
type Store interface {
	// Insert writes rec as a new item keyed by rec.ID. It is a single attempt:
	// either the whole record is committed or an error is returned.
	// Returns an error wrapping ErrDuplicateID if the id already exists.
	Insert(ctx context.Context, rec model.ActionRecord) error

	// Get fetches a record by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (model.ActionRecord, error)

	// Backend names the implementation for logs and metrics.
	Backend() string
}

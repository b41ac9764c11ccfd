package repository

import "github.com/armandopadilla/lasttimei-lamdbda/pkg/logger"

// DynamoOption configures a DynamoStore.
type DynamoOption func(*DynamoStore)

// WithTableName overrides the target table.
func WithTableName(name string) DynamoOption {
	return func(s *DynamoStore) {
		if name != "" {
			s.tableName = name
		}
	}
}

// WithDynamoLogger sets the logger used for write diagnostics.
func WithDynamoLogger(l logger.Logger) DynamoOption {
	return func(s *DynamoStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithFailure makes every Insert return err, wrapped in ErrInsertFailed.
// Used to simulate an unavailable backend.
func WithFailure(err error) MemoryOption {
	return func(s *MemoryStore) {
		s.failWith = err
	}
}

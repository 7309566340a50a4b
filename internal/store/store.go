// Package store provides the journal storage interface and JSON file implementation.
package store

import (
	"context"

	"github.com/rcliao/health-journal/internal/model"
)

// Store owns the persisted journal document. All other components work on
// in-memory documents obtained from and handed back to a Store.
type Store interface {
	// Load reads the whole document. A missing or unreadable document is
	// reported as an empty one, never as an error.
	Load(ctx context.Context) (*model.Document, error)

	// Save writes the whole document, replacing whatever was persisted.
	Save(ctx context.Context, doc *model.Document) error

	// Update runs fn inside a serialized load-mutate-save cycle. The merge
	// rules in the journal package assume no interleaving between load and
	// save; Update is the only way writers touch the document.
	Update(ctx context.Context, fn func(doc *model.Document) error) error

	// Reset deletes the persisted document entirely.
	Reset(ctx context.Context) error
}

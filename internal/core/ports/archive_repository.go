package ports

import (
	"context"

	"pos/internal/core/domain/model/archive"
)

// ArchiveRepository stores the append-only archive of cleared orders.
type ArchiveRepository interface {
	// Append adds snapshots after the existing entries of their day.
	Append(ctx context.Context, entries []archive.Entry) error

	// GetAll returns every entry in append order.
	GetAll(ctx context.Context) ([]archive.Entry, error)

	// Reset removes every entry. It is the only operation that drops archived data.
	Reset(ctx context.Context) error
}

package ports

import (
	"context"

	"pos/internal/core/domain/model/menu"
)

// MenuRepository stores the menu as one document.
type MenuRepository interface {
	// Get returns the stored menu, or an empty menu when none was saved yet.
	Get(ctx context.Context) (*menu.Menu, error)

	// Save replaces the stored document.
	Save(ctx context.Context, aggregate *menu.Menu) error
}

// Package commands contains business operations that modify system state.
// Every command follows the same pattern: constructor validation, one unit of
// work per call, persistence, commit. A failure anywhere before Commit rolls the
// whole operation back.
package commands

import (
	"context"

	"pos/internal/core/ports"
)

// Unit of Work interfaces narrowed to the repositories each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	UserCodeRepoFactory interface {
		UserCodeRepository() ports.UserCodeRepository
	}

	// OrderUoW covers order creation and relocation. The menu is read for the
	// configured table count.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		MenuRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ArchivingUoW covers clearing: orders are archived and deleted in the same
	// transaction, so either both writes land or neither does.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.ArchiveRepository().Append(ctx, entries)
	//   _ = uow.OrderRepository().Delete(ctx, id)
	//
	//   err = uow.Commit(ctx)
	ArchivingUoW interface {
		TxManager
		OrderRepoFactory
		ArchiveRepoFactory
	}

	ArchivingUoWFactory interface {
		Create() ArchivingUoW
	}

	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	MenuUoWFactory interface {
		Create() MenuUoW
	}

	ArchiveUoW interface {
		TxManager
		ArchiveRepoFactory
	}

	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}

	AccessUoW interface {
		TxManager
		UserCodeRepoFactory
	}

	AccessUoWFactory interface {
		Create() AccessUoW
	}
)

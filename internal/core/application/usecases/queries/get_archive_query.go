package queries

import (
	"context"
	"errors"

	"pos/internal/core/domain/model/archive"
	"pos/internal/core/ports"
	"pos/internal/pkg/guard"
)

var (
	ErrGetArchiveQueryIsNotConstructed = errors.New(
		"GetArchiveQuery must be created via NewGetArchiveQuery constructor",
	)
)

// GetArchiveQuery reads the archive of cleared orders grouped by day.
type GetArchiveQuery struct {
	guard guard.ConstructorGuard
}

func NewGetArchiveQuery() GetArchiveQuery {
	return GetArchiveQuery{guard: guard.NewConstructorGuard()}
}

func (q GetArchiveQuery) Validate() error {
	return q.guard.Validate(ErrGetArchiveQueryIsNotConstructed)
}

// ArchiveDayView holds the snapshots archived on one UTC day, in archive order.
type ArchiveDayView struct {
	Day    string
	Orders []OrderView
}

type GetArchiveQueryHandler struct {
	archive ports.ArchiveRepository
}

func NewGetArchiveQueryHandler(archive ports.ArchiveRepository) GetArchiveQueryHandler {
	return GetArchiveQueryHandler{archive: archive}
}

// Handle returns the days in ascending order.
func (h GetArchiveQueryHandler) Handle(ctx context.Context, query GetArchiveQuery) ([]ArchiveDayView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries, err := h.archive.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	log := archive.NewLog(entries)
	days := make([]ArchiveDayView, 0, len(log.Days()))
	for _, day := range log.Days() {
		view := ArchiveDayView{Day: day}
		for _, entry := range log.Entries(day) {
			view.Orders = append(view.Orders, newOrderView(entry.Order()))
		}
		days = append(days, view)
	}

	return days, nil
}

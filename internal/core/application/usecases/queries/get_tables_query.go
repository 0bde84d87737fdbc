package queries

import (
	"errors"

	"pos/internal/pkg/guard"
)

var (
	ErrGetTablesQueryIsNotConstructed = errors.New(
		"GetTablesQuery must be created via NewGetTablesQuery constructor",
	)
)

// GetTablesQuery retrieves the per-table view of the open orders: every
// configured table, empty ones included, then any other label holding orders.
type GetTablesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTablesQuery() GetTablesQuery {
	return GetTablesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetTablesQueryIsNotConstructed)
}

// TableView is one table of the view. LatestTime is the Unix millisecond time of
// its newest order, zero for an empty table. Clients compare it with the last
// time they looked at the table to highlight new orders.
type TableView struct {
	Table      string
	LatestTime int64
	Orders     []OrderView
}

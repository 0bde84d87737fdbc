package services

import (
	"cmp"
	"slices"
	"time"

	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
)

// TableGroup is the view of one table: its orders in time order and the time of
// the latest one (zero when the table is empty).
type TableGroup struct {
	Table      kernel.Table
	Orders     []*order.Order
	LatestTime time.Time
}

// TableGrouper derives the per-table view of the current orders. It holds no state
// and is recomputed on every read; which tables a client has already seen stays
// on the client.
type TableGrouper struct{}

func NewTableGrouper() TableGrouper {
	return TableGrouper{}
}

// Group returns tables 1..tableCount in order, empty ones included, followed by
// every other label that owns orders. Extra numeric labels sort numerically
// ahead of the non-numeric ones, which sort by label.
func (g TableGrouper) Group(orders []*order.Order, tableCount int) []TableGroup {
	byTable := make(map[string][]*order.Order)
	for _, o := range orders {
		label := o.Table().String()
		byTable[label] = append(byTable[label], o)
	}

	groups := make([]TableGroup, 0, max(tableCount, 0)+len(byTable))
	for n := 1; n <= tableCount; n++ {
		table := kernel.NewTableNumber(n)
		groups = append(groups, newTableGroup(table, byTable[table.String()]))
		delete(byTable, table.String())
	}

	extra := make([]kernel.Table, 0, len(byTable))
	for label := range byTable {
		extra = append(extra, kernel.MustNewTable(label))
	}
	slices.SortFunc(extra, compareTables)
	for _, table := range extra {
		groups = append(groups, newTableGroup(table, byTable[table.String()]))
	}

	return groups
}

func newTableGroup(table kernel.Table, orders []*order.Order) TableGroup {
	sorted := slices.Clone(orders)
	slices.SortStableFunc(sorted, func(a, b *order.Order) int {
		return a.PlacedAt().Compare(b.PlacedAt())
	})
	group := TableGroup{Table: table, Orders: sorted}
	if len(sorted) > 0 {
		group.LatestTime = sorted[len(sorted)-1].PlacedAt()
	}
	if group.Orders == nil {
		group.Orders = []*order.Order{}
	}
	return group
}

func compareTables(a, b kernel.Table) int {
	na, aNumeric := a.Number()
	nb, bNumeric := b.Number()
	switch {
	case aNumeric && bNumeric:
		return cmp.Compare(na, nb)
	case aNumeric:
		return -1
	case bNumeric:
		return 1
	default:
		return cmp.Compare(a.String(), b.String())
	}
}

package queries_test

import (
	"testing"
	"time"

	"pos/internal/adapters/out/sqlstore/menurepo"
	"pos/internal/adapters/out/sqlstore/orderrepo"
	"pos/internal/adapters/out/sqlstore/sqlstoretest"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTablesQueryHandler_GroupsByConfiguredTables(t *testing.T) {
	ctx := t.Context()
	db := sqlstoretest.Open(t)
	orders := orderrepo.NewGormOrderRepository(db)
	menus := menurepo.NewGormMenuRepository(db)

	m := menu.NewMenu()
	require.NoError(t, m.SetTableCount(3))
	require.NoError(t, menus.Save(ctx, m))

	base := time.UnixMilli(1740830400123).UTC()
	for _, placed := range []struct {
		table string
		at    time.Time
	}{
		{"2", base.Add(time.Minute)},
		{"2", base},
		{"bar", base},
	} {
		item, err := order.NewItem("Soup", 1, nil)
		require.NoError(t, err)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewTable(placed.table), placed.at, []order.Item{item})
		require.NoError(t, err)
		require.NoError(t, orders.Add(ctx, o))
	}

	handler := queries.NewGetTablesQueryHandler(orders, menus, services.NewTableGrouper())
	tables, err := handler.Handle(ctx, queries.NewGetTablesQuery())

	require.NoError(t, err)
	require.Len(t, tables, 4)
	assert.Equal(t, []string{"1", "2", "3", "bar"},
		[]string{tables[0].Table, tables[1].Table, tables[2].Table, tables[3].Table})

	assert.Empty(t, tables[0].Orders)
	assert.Zero(t, tables[0].LatestTime)

	require.Len(t, tables[1].Orders, 2)
	assert.Equal(t, base.UnixMilli(), tables[1].Orders[0].Time)
	assert.Equal(t, base.Add(time.Minute).UnixMilli(), tables[1].LatestTime)

	require.Len(t, tables[3].Orders, 1)
	assert.Equal(t, base.UnixMilli(), tables[3].LatestTime)
}

func TestGetTablesQueryHandler_DefaultTableCount(t *testing.T) {
	db := sqlstoretest.Open(t)
	handler := queries.NewGetTablesQueryHandler(
		orderrepo.NewGormOrderRepository(db),
		menurepo.NewGormMenuRepository(db),
		services.NewTableGrouper(),
	)

	tables, err := handler.Handle(t.Context(), queries.NewGetTablesQuery())

	require.NoError(t, err)
	assert.Len(t, tables, kernel.DefaultTableCount)
}

func TestGetTablesQueryHandler_NotConstructed(t *testing.T) {
	db := sqlstoretest.Open(t)
	handler := queries.NewGetTablesQueryHandler(
		orderrepo.NewGormOrderRepository(db),
		menurepo.NewGormMenuRepository(db),
		services.NewTableGrouper(),
	)

	_, err := handler.Handle(t.Context(), queries.GetTablesQuery{})

	require.ErrorIs(t, err, queries.ErrGetTablesQueryIsNotConstructed)
}

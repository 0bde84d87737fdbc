package queries_test

import (
	"context"
	"testing"
	"time"

	"pos/internal/adapters/out/sqlstore/orderrepo"
	"pos/internal/adapters/out/sqlstore/sqlstoretest"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	db      *gorm.DB
	orders  *orderrepo.GormOrderRepository
	handler queries.ListOrdersQueryHandler
	base    time.Time
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
	suite.db = sqlstoretest.Open(suite.T())
	suite.orders = orderrepo.NewGormOrderRepository(suite.db)
	suite.handler = queries.NewListOrdersQueryHandler(suite.db)
	suite.base = time.UnixMilli(1740830400123).UTC()
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	sqlstoretest.Truncate(suite.T(), suite.db)
}

func (suite *ListOrdersQueryHandlerTestSuite) add(table string, placedAt time.Time, items ...order.Item) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewTable(table), placedAt, items)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

func (suite *ListOrdersQueryHandlerTestSuite) item(name string, qty int, ingredients ...string) order.Item {
	item, err := order.NewItem(name, qty, ingredients)
	suite.Require().NoError(err)
	return item
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_ReturnsOrdersWithItemsInOrder() {
	late := suite.add("5", suite.base.Add(time.Minute), suite.item("Tea", 1))
	early := suite.add("5", suite.base,
		suite.item("Burger", 2, "cheese", "extra: bacon"),
		suite.item("Fries", 1),
	)

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.True(early.ID().IsEqual(result[0].ID))
	suite.Equal("5", result[0].Customer)
	suite.Equal(suite.base.UnixMilli(), result[0].Time)
	suite.Equal([]queries.OrderItemView{
		{Item: "Burger", Quantity: 2, Ingredients: []string{"cheese", "extra: bacon"}},
		{Item: "Fries", Quantity: 1, Ingredients: []string{}},
	}, result[0].Items)

	suite.True(late.ID().IsEqual(result[1].ID))
	suite.Len(result[1].Items, 1)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_TiesOrderedByTableLabel() {
	suite.add("7", suite.base, suite.item("Soup", 1))
	suite.add("12", suite.base, suite.item("Tea", 1))

	result, err := suite.handler.Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("12", result[0].Customer)
	suite.Equal("7", result[1].Customer)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_NotConstructed() {
	_, err := suite.handler.Handle(context.Background(), queries.ListOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrListOrdersQueryIsNotConstructed)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestExport_RowsPerItem() {
	suite.add("5", suite.base,
		suite.item("Burger", 2, "cheese", "extra: bacon"),
		suite.item("Fries", 1),
	)
	suite.add("bar", suite.base.Add(time.Second), suite.item("Beer", 3))
	export := queries.NewExportOrdersQueryHandler(suite.handler)

	rows, err := export.Handle(context.Background(), queries.NewExportOrdersQuery())

	suite.Require().NoError(err)
	suite.Equal([][]string{
		{"Table", "Item", "Quantity", "Ingredients"},
		{"5", "Burger", "2", "cheese; extra: bacon"},
		{"5", "Fries", "1", ""},
		{"bar", "Beer", "3", ""},
	}, rows)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestExport_EmptyStoreHasHeaderOnly() {
	export := queries.NewExportOrdersQueryHandler(suite.handler)

	rows, err := export.Handle(context.Background(), queries.NewExportOrdersQuery())

	suite.Require().NoError(err)
	suite.Equal([][]string{queries.ExportOrdersHeader}, rows)
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}

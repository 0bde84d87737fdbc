package commands_test

import (
	"context"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/access"
	"pos/internal/core/domain/model/archive"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/menu"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindByTableAndTime(
	ctx context.Context,
	table kernel.Table,
	placedAt time.Time,
) (*order.Order, error) {
	args := m.Called(ctx, table, placedAt)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetByTable(ctx context.Context, table kernel.Table) ([]*order.Order, error) {
	args := m.Called(ctx, table)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) Get(ctx context.Context) (*menu.Menu, error) {
	args := m.Called(ctx)
	catalog, _ := args.Get(0).(*menu.Menu)
	return catalog, args.Error(1)
}

func (m *MockMenuRepository) Save(ctx context.Context, catalog *menu.Menu) error {
	args := m.Called(ctx, catalog)
	return args.Error(0)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Append(ctx context.Context, entries []archive.Entry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockArchiveRepository) GetAll(ctx context.Context) ([]archive.Entry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]archive.Entry)
	return entries, args.Error(1)
}

func (m *MockArchiveRepository) Reset(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockUserCodeRepository struct{ mock.Mock }

func (m *MockUserCodeRepository) Add(ctx context.Context, code access.UserCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockUserCodeRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockUserCodeRepository) Get(ctx context.Context, code string) (access.UserCode, error) {
	args := m.Called(ctx, code)
	userCode, _ := args.Get(0).(access.UserCode)
	return userCode, args.Error(1)
}

func (m *MockUserCodeRepository) GetAll(ctx context.Context) ([]access.UserCode, error) {
	args := m.Called(ctx)
	codes, _ := args.Get(0).([]access.UserCode)
	return codes, args.Error(1)
}

type MockSessionStore struct{ mock.Mock }

func (m *MockSessionStore) Issue(ctx context.Context, role access.Role) (access.Session, error) {
	args := m.Called(ctx, role)
	session, _ := args.Get(0).(access.Session)
	return session, args.Error(1)
}

func (m *MockSessionStore) Validate(ctx context.Context, token string) (access.Session, error) {
	args := m.Called(ctx, token)
	session, _ := args.Get(0).(access.Session)
	return session, args.Error(1)
}

func (m *MockSessionStore) Revoke(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

func (m *MockUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

func (m *MockUoW) UserCodeRepository() ports.UserCodeRepository {
	args := m.Called()
	return args.Get(0).(ports.UserCodeRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) create() *MockUoW {
	args := m.Called()
	return args.Get(0).(*MockUoW)
}

// orderFactory, archivingFactory, menuFactory, archiveFactory and accessFactory
// adapt MockUoWFactory to the factory interface each handler expects.
type (
	orderFactory     struct{ *MockUoWFactory }
	archivingFactory struct{ *MockUoWFactory }
	menuFactory      struct{ *MockUoWFactory }
	archiveFactory   struct{ *MockUoWFactory }
	accessFactory    struct{ *MockUoWFactory }
)

func (f orderFactory) Create() commands.OrderUoW         { return f.create() }
func (f archivingFactory) Create() commands.ArchivingUoW { return f.create() }
func (f menuFactory) Create() commands.MenuUoW           { return f.create() }
func (f archiveFactory) Create() commands.ArchiveUoW     { return f.create() }
func (f accessFactory) Create() commands.AccessUoW       { return f.create() }

func newFactory(uow *MockUoW) *MockUoWFactory {
	factory := new(MockUoWFactory)
	factory.On("create").Return(uow).Once()
	return factory
}

func menuWithTables(n int) *menu.Menu {
	m := menu.NewMenu()
	if err := m.SetTableCount(n); err != nil {
		panic(err)
	}
	return m
}

func mustOrder(table string, placedAt time.Time, items ...order.Item) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), kernel.MustNewTable(table), placedAt, items)
	if err != nil {
		panic(err)
	}
	return o
}

func mustItem(name string, qty int, ingredients ...string) order.Item {
	item, err := order.NewItem(name, qty, ingredients)
	if err != nil {
		panic(err)
	}
	return item
}

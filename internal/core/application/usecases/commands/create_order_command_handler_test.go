package commands_test

import (
	"errors"
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, table string) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), table, time.Now(), []commands.OrderLine{
		{Item: "Burger", Quantity: 2, Ingredients: []string{"cheese", "extra: bacon"}},
	})
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "5")

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByTableAndTime", ctx, mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", "5")).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(cmd.OrderID()) && o.Table().String() == "5" && len(o.Items()) == 1
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := newFactory(uow)

	h := commands.NewCreateOrderCommandHandler(orderFactory{factory})
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	menuRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_SameMillisecond_TakesNextFreeSlot(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "5")
	placedAt := cmd.PlacedAt()

	existing, err := order.NewOrder(kernel.NewUUID(), cmd.Table(), placedAt, cmd.Items())
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByTableAndTime", ctx, cmd.Table(), placedAt).Return(existing, nil).Once(),
		orderRepo.On("FindByTableAndTime", ctx, cmd.Table(), placedAt.Add(time.Millisecond)).Return(existing, nil).Once(),
		orderRepo.On("FindByTableAndTime", ctx, cmd.Table(), placedAt.Add(2*time.Millisecond)).
			Return(nil, errs.NewObjectNotFoundError("order", "5")).Once(),
		orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID().IsEqual(cmd.OrderID()) && o.PlacedAt().Equal(placedAt.Add(2*time.Millisecond))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orderFactory{newFactory(uow)})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_LookupError(t *testing.T) {
	ctx := t.Context()
	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByTableAndTime", ctx, mock.Anything, mock.Anything).
			Return(nil, errs.NewStorageError("find order", errors.New("disk"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orderFactory{newFactory(uow)})
	err := h.Handle(ctx, newCreateOrderCommand(t, "5"))

	require.ErrorIs(t, err, errs.ErrStorage)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_TableOutOfRange(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t, "41")

	menuRepo := new(MockMenuRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orderFactory{newFactory(uow)})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "OrderRepository")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	h := commands.NewCreateOrderCommandHandler(orderFactory{factory})

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewCreateOrderCommandHandler(orderFactory{newFactory(uow)})
	err := h.Handle(ctx, newCreateOrderCommand(t, "5"))

	require.EqualError(t, err, "begin error")
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByTableAndTime", ctx, mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", "5")).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewObjectAlreadyExistsError("order", "5")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orderFactory{newFactory(uow)})
	err := h.Handle(ctx, newCreateOrderCommand(t, "5"))

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("FindByTableAndTime", ctx, mock.Anything, mock.Anything).
			Return(nil, errs.NewObjectNotFoundError("order", "5")).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(orderFactory{newFactory(uow)})
	err := h.Handle(ctx, newCreateOrderCommand(t, "5"))

	require.EqualError(t, err, "commit error")
	assert.True(t, uow.AssertExpectations(t))
}

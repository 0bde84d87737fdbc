package commands_test

import (
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/core/domain/services"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewMoveTableCommand(t *testing.T) {
	cmd, err := commands.NewMoveTableCommand("5", "bar")
	require.NoError(t, err)
	assert.Equal(t, "5", cmd.FromTable().String())
	assert.Equal(t, "bar", cmd.ToTable().String())

	_, err = commands.NewMoveTableCommand("5", "5")
	assert.ErrorIs(t, err, services.ErrSameTable)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewMoveTableCommand("", "5")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.NotErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "fromTable")

	assert.Equal(t, commands.ErrMoveTableCommandIsNotConstructed, commands.MoveTableCommand{}.Validate())
}

func TestMoveTableCommandHandler_Handle_RelabelsAndMerges(t *testing.T) {
	ctx := t.Context()
	colliding := mustOrder("5", orderTime, mustItem("Burger", 1))
	free := mustOrder("5", orderTime.Add(time.Minute), mustItem("Cola", 1))
	existing := mustOrder("7", orderTime, mustItem("Salad", 1))
	cmd, err := commands.NewMoveTableCommand("5", "7")
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTable", ctx, kernel.NewTableNumber(5)).Return([]*order.Order{colliding, free}, nil).Once(),
		orderRepo.On("GetByTable", ctx, kernel.NewTableNumber(7)).Return([]*order.Order{existing}, nil).Once(),
		orderRepo.On("Delete", ctx, colliding.ID()).Return(nil).Once(),
		orderRepo.On("Update", ctx, existing).Return(nil).Once(),
		orderRepo.On("Update", ctx, free).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMoveTableCommandHandler(orderFactory{newFactory(uow)}, services.NewOrderRelocator())
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	assert.Equal(t, "7", free.Table().String())
	assert.Len(t, existing.Items(), 2)
}

func TestMoveTableCommandHandler_Handle_EmptySourceIsNoop(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewMoveTableCommand("5", "7")
	require.NoError(t, err)

	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuRepository").Return(menuRepo).Once(),
		menuRepo.On("Get", ctx).Return(menuWithTables(40), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTable", ctx, kernel.NewTableNumber(5)).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewMoveTableCommandHandler(orderFactory{newFactory(uow)}, services.NewOrderRelocator())

	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

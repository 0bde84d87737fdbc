package commands_test

import (
	"errors"
	"testing"
	"time"

	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/domain/model/archive"
	"pos/internal/core/domain/model/kernel"
	"pos/internal/core/domain/model/order"
	"pos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var archivedAt = time.Date(2025, 3, 1, 23, 30, 0, 0, time.UTC)

func TestNewClearTableCommand(t *testing.T) {
	cmd, err := commands.NewClearTableCommand(" 07", archivedAt)
	require.NoError(t, err)
	assert.Equal(t, "7", cmd.Table().String())
	assert.Equal(t, archivedAt, cmd.ArchivedAt())

	_, err = commands.NewClearTableCommand("", time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "table")
	assert.Contains(t, err.Error(), "archivedAt")
}

func TestClearTableCommandHandler_Handle_ArchivesThenDeletes(t *testing.T) {
	ctx := t.Context()
	first := mustOrder("7", orderTime, mustItem("Burger", 1))
	second := mustOrder("7", orderTime.Add(time.Minute), mustItem("Cola", 2))
	cmd, err := commands.NewClearTableCommand("7", archivedAt)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)

	var appended []archive.Entry
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetByTable", ctx, kernel.NewTableNumber(7)).Return([]*order.Order{first, second}, nil).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Append", ctx, mock.AnythingOfType("[]archive.Entry")).
			Run(func(args mock.Arguments) { appended = args.Get(1).([]archive.Entry) }).
			Return(nil).Once(),
		orderRepo.On("Delete", ctx, first.ID()).Return(nil).Once(),
		orderRepo.On("Delete", ctx, second.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearTableCommandHandler(archivingFactory{newFactory(uow)})
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)

	require.Len(t, appended, 2)
	assert.Equal(t, "2025-03-01", appended[0].Day())
	assert.True(t, first.ID().IsEqual(appended[0].Order().ID()))
	assert.True(t, second.ID().IsEqual(appended[1].Order().ID()))
}

func TestClearTableCommandHandler_Handle_EmptyTableIsNoop(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearTableCommand("7", archivedAt)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTable", ctx, kernel.NewTableNumber(7)).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearTableCommandHandler(archivingFactory{newFactory(uow)})

	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "ArchiveRepository")
}

func TestClearTableCommandHandler_Handle_ArchiveFailureKeepsOrders(t *testing.T) {
	ctx := t.Context()
	o := mustOrder("7", orderTime, mustItem("Burger", 1))
	cmd, err := commands.NewClearTableCommand("7", archivedAt)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetByTable", ctx, kernel.NewTableNumber(7)).Return([]*order.Order{o}, nil).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Append", ctx, mock.Anything).Return(errs.NewStorageError("append archive", errors.New("disk full"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearTableCommandHandler(archivingFactory{newFactory(uow)})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorage)
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClearAllOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	a := mustOrder("3", orderTime, mustItem("Soup", 1))
	b := mustOrder("bar", orderTime, mustItem("Beer", 2))
	cmd, err := commands.NewClearAllOrdersCommand(archivedAt)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(orderRepo)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		orderRepo.On("GetAll", ctx).Return([]*order.Order{a, b}, nil).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("Append", ctx, mock.MatchedBy(func(entries []archive.Entry) bool {
			return len(entries) == 2
		})).Return(nil).Once(),
		orderRepo.On("Delete", ctx, a.ID()).Return(nil).Once(),
		orderRepo.On("Delete", ctx, b.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearAllOrdersCommandHandler(archivingFactory{newFactory(uow)})

	require.NoError(t, h.Handle(ctx, cmd))
	orderRepo.AssertExpectations(t)
	archiveRepo.AssertExpectations(t)
}

func TestClearAllOrdersCommandHandler_Handle_NothingToClear(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewClearAllOrdersCommand(archivedAt)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetAll", ctx).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewClearAllOrdersCommandHandler(archivingFactory{newFactory(uow)})

	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestClearAllOrdersCommand_NotConstructed(t *testing.T) {
	_, err := commands.NewClearAllOrdersCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	h := commands.NewClearAllOrdersCommandHandler(archivingFactory{new(MockUoWFactory)})
	err = h.Handle(t.Context(), commands.ClearAllOrdersCommand{})
	assert.ErrorIs(t, err, commands.ErrClearAllOrdersCommandIsNotConstructed)
}

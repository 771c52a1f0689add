package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inventory/internal/core/application/usecases/commands"
	"inventory/internal/core/domain/model/notification"
	"inventory/internal/core/domain/model/order"
	"inventory/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	if args.Error(0) == nil {
		_ = o.AssignID(int64(len(m.Calls)))
	}
	return args.Error(0)
}
func (m *MockOrderRepository) Get(_ context.Context, _ int64) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) UpdateStatus(_ context.Context, _ int64, _, _ order.Status) error {
	return errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetStuckProcessingIDs(_ context.Context, _ time.Time) ([]int64, error) {
	return nil, errors.New("not implemented in mock")
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(topic string, event notification.Event) {
	m.Called(topic, event)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "alice", []commands.OrderLine{
		{ItemID: 1, ItemName: "apple", Quantity: 2},
		{ItemID: 2, ItemName: "banana", Quantity: 1},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)
	publisher.On("Publish", notification.TopicAdmin, mock.AnythingOfType("notification.Event")).Twice()

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	ids, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockPublisher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "alice", []commands.OrderLine{
		{ItemID: 1, ItemName: "apple", Quantity: 2},
	})

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, new(MockPublisher))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "alice", []commands.OrderLine{
		{ItemID: 1, ItemName: "apple", Quantity: 2},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand(7, "alice", []commands.OrderLine{
		{ItemID: 1, ItemName: "apple", Quantity: 2},
	})

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockPublisher)

	h := commands.NewCreateOrderCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

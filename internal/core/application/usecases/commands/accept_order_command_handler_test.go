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
	"inventory/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAcceptOrderRepository struct{ mock.Mock }

func (m *MockAcceptOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockAcceptOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockAcceptOrderRepository) UpdateStatus(ctx context.Context, id int64, from, to order.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockAcceptOrderRepository) GetStuckProcessingIDs(_ context.Context, _ time.Time) ([]int64, error) {
	return nil, errors.New("not implemented in mock")
}

type MockAcceptUoW struct{ mock.Mock }

func (m *MockAcceptUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAcceptUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockAcceptUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAcceptUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockAcceptUoWFactory struct{ mock.Mock }

func (m *MockAcceptUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockAcceptWorkQueue struct{ mock.Mock }

func (m *MockAcceptWorkQueue) Enqueue(orderID int64) { m.Called(orderID) }
func (m *MockAcceptWorkQueue) Dequeue(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}
func (m *MockAcceptWorkQueue) Len() int { return 0 }
func (m *MockAcceptWorkQueue) Close()   {}

type MockAcceptPublisher struct{ mock.Mock }

func (m *MockAcceptPublisher) Publish(topic string, event notification.Event) {
	m.Called(topic, event)
}

func pendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(id, 7, "alice", 1, "apple", 2, order.Pending, time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(42)
	o := pendingOrder(t, 42)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, int64(42), order.Pending, order.Processing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(MockAcceptWorkQueue)
	queue.On("Enqueue", int64(42)).Once()

	publisher := new(MockAcceptPublisher)
	publisher.On("Publish", notification.UserTopic("alice"), mock.AnythingOfType("notification.Event")).Once()
	publisher.On("Publish", notification.TopicAdmin, mock.AnythingOfType("notification.Event")).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, queue, publisher)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Processing, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	queue.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(42)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(MockAcceptWorkQueue)
	publisher := new(MockAcceptPublisher)

	h := commands.NewAcceptOrderCommandHandler(factory, queue, publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_NotPending(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(42)
	o, err := order.RestoreOrder(42, 7, "alice", 1, "apple", 2, order.Cancelled, time.Now().UTC())
	require.NoError(t, err)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(MockAcceptWorkQueue)
	publisher := new(MockAcceptPublisher)

	h := commands.NewAcceptOrderCommandHandler(factory, queue, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Cancelled, o.Status())
	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_UpdateStatusConflict(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewAcceptOrderCommand(42)
	o := pendingOrder(t, 42)

	repo := new(MockAcceptOrderRepository)
	uow := new(MockAcceptUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, int64(42), order.Pending, order.Processing).
			Return(errs.NewInvalidStateError("order status", order.Cancelled.String(), order.Processing.String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAcceptUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(MockAcceptWorkQueue)
	publisher := new(MockAcceptPublisher)

	h := commands.NewAcceptOrderCommandHandler(factory, queue, publisher)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestAcceptOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AcceptOrderCommand{} // not constructed properly
	h := commands.NewAcceptOrderCommandHandler(
		new(MockAcceptUoWFactory), new(MockAcceptWorkQueue), new(MockAcceptPublisher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

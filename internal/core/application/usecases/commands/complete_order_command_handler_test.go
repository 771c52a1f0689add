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

type MockCompleteOrderRepository struct{ mock.Mock }

func (m *MockCompleteOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}
func (m *MockCompleteOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockCompleteOrderRepository) UpdateStatus(ctx context.Context, id int64, from, to order.Status) error {
	args := m.Called(ctx, id, from, to)
	return args.Error(0)
}
func (m *MockCompleteOrderRepository) GetStuckProcessingIDs(_ context.Context, _ time.Time) ([]int64, error) {
	return nil, errors.New("not implemented in mock")
}

type MockCompleteUoW struct{ mock.Mock }

func (m *MockCompleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCompleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCompleteUoWFactory struct{ mock.Mock }

func (m *MockCompleteUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCompletePublisher struct{ mock.Mock }

func (m *MockCompletePublisher) Publish(topic string, event notification.Event) {
	m.Called(topic, event)
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(42)
	o, err := order.RestoreOrder(42, 7, "alice", 1, "apple", 2, order.Processing, time.Now().UTC())
	require.NoError(t, err)

	repo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		repo.On("UpdateStatus", mock.Anything, int64(42), order.Processing, order.Processed).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockCompletePublisher)
	publisher.On("Publish", notification.UserTopic("alice"), mock.AnythingOfType("notification.Event")).Once()
	publisher.On("Publish", notification.TopicAdmin, mock.AnythingOfType("notification.Event")).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.Processed, o.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_CancelledMeanwhile(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(42)
	o, err := order.RestoreOrder(42, 7, "alice", 1, "apple", 2, order.Cancelled, time.Now().UTC())
	require.NoError(t, err)

	repo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockCompletePublisher)

	h := commands.NewCompleteOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Cancelled, o.Status())
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteOrderCommand(42)

	repo := new(MockCompleteOrderRepository)
	uow := new(MockCompleteUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, int64(42)).
			Return(nil, errs.NewObjectNotFoundError("orderID", int64(42))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCompleteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory, new(MockCompletePublisher))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

package commands_test

import (
	"context"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	stored := newStoredOrder(customerID, restaurantID)
	require.NoError(t, stored.ChangeStatus(order.StatusOutForDelivery))
	require.NoError(t, stored.IssueDeliveryCode("4821"))

	cmd, err := commands.NewCompleteDeliveryCommand(newDriverActor(kernel.NewUUID()), stored.ID(), "4821")
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	restaurants := new(MockRestaurantRepository)
	customers := new(MockCustomerRepository)
	broadcaster := new(MockEventBroadcaster)
	notifier := new(MockSMSNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		broadcaster.On("Broadcast", ctx, ports.StatusEvent{Status: "DELIVERED"}).Return(nil).Once(),
		restaurants.On("Get", ctx, restaurantID).
			Return(ports.Restaurant{ID: restaurantID, Name: "Spice Villa"}, nil).Once(),
		customers.On("Get", ctx, customerID).Return(customerFixture(customerID), nil).Once(),
		notifier.On("Send", ctx, "+919876543210", "Delivered! Enjoy your meal from Spice Villa.").
			Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(
		factory, restaurants, customers, broadcaster, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusDelivered, stored.Status())
	require.Nil(t, stored.DeliveryCode())
	broadcaster.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := context.Background()
	stored := newStoredOrder(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, stored.IssueDeliveryCode("4821"))

	cmd, _ := commands.NewCompleteDeliveryCommand(newDriverActor(kernel.NewUUID()), stored.ID(), "4820")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	broadcaster := new(MockEventBroadcaster)
	notifier := new(MockSMSNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteDeliveryCommandHandler(
		factory, new(MockRestaurantRepository), new(MockCustomerRepository),
		broadcaster, notifier, testLogger())

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidDeliveryCode)
	require.Equal(t, order.StatusPending, stored.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

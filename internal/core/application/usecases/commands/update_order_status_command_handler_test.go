package commands_test

import (
	"context"
	"errors"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_CommitThenBroadcastThenSMS(t *testing.T) {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	stored := newStoredOrder(customerID, restaurantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		newOwnerActor(ownerID), stored.ID(), order.StatusPreparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	restaurants := new(MockRestaurantRepository)
	customers := new(MockCustomerRepository)
	broadcaster := new(MockEventBroadcaster)
	notifier := new(MockSMSNotifier)

	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID, Name: "Spice Villa"}
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		restaurants.On("Get", ctx, restaurantID).Return(restaurant, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		broadcaster.On("Broadcast", ctx, ports.StatusEvent{Status: "PREPARING"}).Return(nil).Once(),
		restaurants.On("Get", ctx, restaurantID).Return(restaurant, nil).Once(),
		customers.On("Get", ctx, customerID).
			Return(ports.Customer{ID: customerID, Phone: "+919876543210"}, nil).Once(),
		notifier.On("Send", ctx, "+919876543210",
			"Order accepted! Spice Villa is preparing your food.").Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, restaurants, customers, broadcaster, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusPreparing, stored.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	broadcaster.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_NonOwnerRejected(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewUpdateOrderStatusCommand(
		newCustomerActor(kernel.NewUUID()), kernel.NewUUID(), order.StatusPreparing)
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, new(MockRestaurantRepository), new(MockCustomerRepository),
		new(MockEventBroadcaster), new(MockSMSNotifier), testLogger())

	handleErr := h.Handle(ctx, cmd)
	require.ErrorIs(t, handleErr, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_WrongOwnerRejected(t *testing.T) {
	ctx := context.Background()
	restaurantID := kernel.NewUUID()
	stored := newStoredOrder(kernel.NewUUID(), restaurantID)

	cmd, err := commands.NewUpdateOrderStatusCommand(
		newOwnerActor(kernel.NewUUID()), stored.ID(), order.StatusPreparing)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	restaurants := new(MockRestaurantRepository)
	broadcaster := new(MockEventBroadcaster)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		restaurants.On("Get", ctx, restaurantID).
			Return(ports.Restaurant{ID: restaurantID, OwnerID: kernel.NewUUID(), Name: "Spice Villa"}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, restaurants, new(MockCustomerRepository), broadcaster, new(MockSMSNotifier), testLogger())

	handleErr := h.Handle(ctx, cmd)
	require.ErrorIs(t, handleErr, errs.ErrNotAuthorized)
	require.Equal(t, order.StatusPending, stored.Status())
	broadcaster.AssertNotCalled(t, "Broadcast", mock.Anything, mock.Anything)
}

func TestUpdateOrderStatusCommandHandler_Handle_BroadcastFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	stored := newStoredOrder(customerID, restaurantID)

	cmd, _ := commands.NewUpdateOrderStatusCommand(
		newOwnerActor(ownerID), stored.ID(), order.StatusOutForDelivery)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	restaurants := new(MockRestaurantRepository)
	customers := new(MockCustomerRepository)
	broadcaster := new(MockEventBroadcaster)
	notifier := new(MockSMSNotifier)

	restaurant := ports.Restaurant{ID: restaurantID, OwnerID: ownerID, Name: "Spice Villa"}
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	restaurants.On("Get", ctx, restaurantID).Return(restaurant, nil).Twice()
	repo.On("Update", mock.Anything, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	broadcaster.On("Broadcast", ctx, ports.StatusEvent{Status: "OUT_FOR_DELIVERY"}).
		Return(errors.New("hub down")).Once()
	customers.On("Get", ctx, customerID).
		Return(ports.Customer{ID: customerID, Phone: "+919876543210"}, nil).Once()
	notifier.On("Send", ctx, "+919876543210",
		"Food on the way! Your driver has left Spice Villa. Track live on the app!").
		Return(errors.New("twilio down")).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, restaurants, customers, broadcaster, notifier, testLogger())

	// Both side effects fail; the committed transition still succeeds.
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, order.StatusOutForDelivery, stored.Status())
	notifier.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_SilentStatusSkipsSMS(t *testing.T) {
	ctx := context.Background()
	ownerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	stored := newStoredOrder(kernel.NewUUID(), restaurantID)

	cmd, _ := commands.NewUpdateOrderStatusCommand(
		newOwnerActor(ownerID), stored.ID(), order.StatusReadyForPickup)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	restaurants := new(MockRestaurantRepository)
	customers := new(MockCustomerRepository)
	broadcaster := new(MockEventBroadcaster)
	notifier := new(MockSMSNotifier)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once()
	restaurants.On("Get", ctx, restaurantID).
		Return(ports.Restaurant{ID: restaurantID, OwnerID: ownerID, Name: "Spice Villa"}, nil).Once()
	repo.On("Update", mock.Anything, stored).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	broadcaster.On("Broadcast", ctx, ports.StatusEvent{Status: "READY_FOR_PICKUP"}).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(
		factory, restaurants, customers, broadcaster, notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

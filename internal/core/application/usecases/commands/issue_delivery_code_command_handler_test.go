package commands_test

import (
	"context"
	"regexp"
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIssueDeliveryCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	stored := newStoredOrder(customerID, kernel.NewUUID())
	cmd, err := commands.NewIssueDeliveryCodeCommand(newDriverActor(kernel.NewUUID()), stored.ID())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	customers := new(MockCustomerRepository)
	notifier := new(MockSMSNotifier)

	var sentMessage string
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		repo.On("Update", mock.Anything, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		customers.On("Get", ctx, customerID).
			Return(customerFixture(customerID), nil).Once(),
		notifier.On("Send", ctx, "+919876543210", mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { sentMessage = args.String(2) }).
			Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIssueDeliveryCodeCommandHandler(
		factory, new(MockRestaurantRepository), customers, new(MockEventBroadcaster), notifier, testLogger())
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored.DeliveryCode())
	require.Regexp(t, regexp.MustCompile(`^[1-9]\d{3}$`), *stored.DeliveryCode())
	require.Equal(t, "Your food delivery code is: "+*stored.DeliveryCode(), sentMessage)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestIssueDeliveryCodeCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewIssueDeliveryCodeCommand(newDriverActor(kernel.NewUUID()), orderID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockSMSNotifier)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIssueDeliveryCodeCommandHandler(
		factory, new(MockRestaurantRepository), new(MockCustomerRepository),
		new(MockEventBroadcaster), notifier, testLogger())

	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

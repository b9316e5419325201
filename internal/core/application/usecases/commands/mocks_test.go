package commands_test

import (
	"context"
	"io"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"

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

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetLatestByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
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

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) GetPrices(
	ctx context.Context, menuItemIDs []kernel.UUID,
) (map[kernel.UUID]int64, error) {
	args := m.Called(ctx, menuItemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.UUID]int64), args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (ports.Restaurant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Restaurant), args.Error(1)
}

func (m *MockRestaurantRepository) WithinRadius(
	ctx context.Context, center kernel.GeoPoint, radiusMeters float64,
) ([]ports.Restaurant, error) {
	args := m.Called(ctx, center, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.Restaurant), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (ports.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.Customer), args.Error(1)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateCharge(
	ctx context.Context, amount int64, currency string, receipt string,
) (ports.Charge, error) {
	args := m.Called(ctx, amount, currency, receipt)
	return args.Get(0).(ports.Charge), args.Error(1)
}

func (m *MockPaymentGateway) VerifySignature(chargeRef, paymentRef, signature string) error {
	args := m.Called(chargeRef, paymentRef, signature)
	return args.Error(0)
}

func (m *MockPaymentGateway) Refund(ctx context.Context, paymentRef string, amount int64) error {
	args := m.Called(ctx, paymentRef, amount)
	return args.Error(0)
}

type MockSMSNotifier struct{ mock.Mock }

func (m *MockSMSNotifier) Send(ctx context.Context, phone string, message string) error {
	args := m.Called(ctx, phone, message)
	return args.Error(0)
}

type MockEventBroadcaster struct{ mock.Mock }

func (m *MockEventBroadcaster) Broadcast(ctx context.Context, event any) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// Shared fixture helpers.

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCustomerActor(id kernel.UUID) account.Actor {
	actor, _ := account.NewActor(id, account.RoleCustomer)
	return actor
}

func newOwnerActor(id kernel.UUID) account.Actor {
	actor, _ := account.NewActor(id, account.RoleOwner)
	return actor
}

func newDriverActor(id kernel.UUID) account.Actor {
	actor, _ := account.NewActor(id, account.RoleDriver)
	return actor
}

func customerFixture(id kernel.UUID) ports.Customer {
	return ports.Customer{ID: id, Name: "Asha", Phone: "+919876543210"}
}

func newStoredOrder(customerID, restaurantID kernel.UUID) *order.Order {
	item, _ := order.NewItem(kernel.NewUUID(), 1, 25000)
	o, _ := order.NewOrder(kernel.NewUUID(), customerID, restaurantID,
		[]order.Item{item}, "pay_ref", "42 Food Street", nil)
	return o
}

package cmd

import (
	"log/slog"

	"fooddelivery/internal/adapters/in/ws"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/customerrepo"
	"fooddelivery/internal/adapters/out/postgres/restaurantrepo"
	"fooddelivery/internal/adapters/out/razorpay"
	"fooddelivery/internal/adapters/out/twilio"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	restaurants ports.RestaurantRepository
	customers   ports.CustomerRepository
	menuItems   ports.MenuItemRepository
	gateway     ports.PaymentGateway
	notifier    ports.SMSNotifier
	hub         *ws.Hub
	logger      *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	gateway, err := razorpay.NewGateway(config.RazorpayKeyID, config.RazorpayKeySecret)
	if err != nil {
		return CompositionRoot{}, err
	}

	notifier, err := twilio.NewNotifier(
		config.TwilioAccountSID,
		config.TwilioAuthToken,
		config.TwilioFromNumber,
		config.SMSDefaultPrefix,
	)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		restaurants: restaurantrepo.NewGormRestaurantRepository(gormDB),
		customers:   customerrepo.NewGormCustomerRepository(gormDB),
		menuItems:   catalogrepo.NewGormMenuItemRepository(gormDB),
		gateway:     gateway,
		notifier:    notifier,
		hub:         ws.NewHub(logger),
		logger:      logger,
	}, nil
}

// Hub exposes the live event hub so main can mount the WebSocket endpoint.
func (c *CompositionRoot) Hub() *ws.Hub {
	return c.hub
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateInitiatePaymentCommandHandler() commands.InitiatePaymentCommandHandler {
	return commands.NewInitiatePaymentCommandHandler(c.menuItems, c.gateway)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	return commands.NewSettleOrderCommandHandler(c.orderUoWFactory(), c.menuItems, c.gateway, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(), c.restaurants, c.customers, c.hub, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateIssueDeliveryCodeCommandHandler() commands.IssueDeliveryCodeCommandHandler {
	return commands.NewIssueDeliveryCodeCommandHandler(
		c.orderUoWFactory(), c.restaurants, c.customers, c.hub, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(
		c.orderUoWFactory(), c.restaurants, c.customers, c.hub, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateReportDriverLocationCommandHandler() commands.ReportDriverLocationCommandHandler {
	return commands.NewReportDriverLocationCommandHandler(
		c.orderUoWFactory(), c.restaurants, c.customers, c.hub, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateHideOrderCommandHandler() commands.HideOrderCommandHandler {
	return commands.NewHideOrderCommandHandler(c.orderUoWFactory(), c.restaurants)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOwnerOrdersQueryHandler() queries.GetOwnerOrdersQueryHandler {
	return queries.NewGetOwnerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLatestOrderQueryHandler() queries.GetLatestOrderQueryHandler {
	return queries.NewGetLatestOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyRestaurantsQueryHandler() queries.GetNearbyRestaurantsQueryHandler {
	return queries.NewGetNearbyRestaurantsQueryHandler(c.restaurants)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

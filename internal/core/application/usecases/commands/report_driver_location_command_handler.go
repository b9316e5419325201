package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// ReportDriverLocationCommandHandler relays driver position reports to live
// subscribers. Nothing is persisted; the order is only loaded to confirm it
// exists before fanning out.
type ReportDriverLocationCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     notifications
}

// NewReportDriverLocationCommandHandler creates a handler for driver reports.
func NewReportDriverLocationCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	broadcaster ports.EventBroadcaster,
	notifier ports.SMSNotifier,
	logger *slog.Logger,
) ReportDriverLocationCommandHandler {
	return ReportDriverLocationCommandHandler{
		uowFactory: uowFactory,
		notify:     newNotifications(restaurants, customers, broadcaster, notifier, logger),
	}
}

// Handle authorizes the reporter, confirms the order exists, and pushes the
// update to subscribers plus an optional SMS relay of the driver's message.
// Only drivers and owners may report positions.
func (h *ReportDriverLocationCommandHandler) Handle(ctx context.Context, cmd ReportDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanReportLocation() {
		return errs.NewAuthorizationError("report driver location")
	}

	aggregate, err := h.loadOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	h.notify.driverUpdate(ctx, aggregate, ports.DriverUpdateEvent{
		Event:    ports.EventDriverUpdate,
		OrderID:  aggregate.ID().String(),
		Lat:      cmd.Position().Latitude(),
		Lng:      cmd.Position().Longitude(),
		Distance: cmd.Distance(),
		Time:     cmd.ETA(),
		Message:  cmd.Message(),
	})
	return nil
}

func (h *ReportDriverLocationCommandHandler) loadOrder(
	ctx context.Context, orderID kernel.UUID,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return aggregate, nil
}

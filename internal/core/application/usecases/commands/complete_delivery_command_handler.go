package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// CompleteDeliveryCommandHandler finishes the delivery handshake: on an exact
// code match the order becomes Delivered and the code is consumed, then the
// status broadcast and delivery SMS go out. A mismatch changes nothing.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     notifications
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	broadcaster ports.EventBroadcaster,
	notifier ports.SMSNotifier,
	logger *slog.Logger,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		notify:     newNotifications(restaurants, customers, broadcaster, notifier, logger),
	}
}

// Handle matches the submitted code against the stored one and commits the
// Delivered transition before notifying. Returns
// order.ErrInvalidDeliveryCode on mismatch or when no code is outstanding.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.complete(ctx, cmd)
	if err != nil {
		return err
	}

	h.notify.statusChanged(ctx, aggregate, order.StatusDelivered)
	return nil
}

func (h *CompleteDeliveryCommandHandler) complete(
	ctx context.Context, cmd CompleteDeliveryCommand,
) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.CompleteDelivery(cmd.Code()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

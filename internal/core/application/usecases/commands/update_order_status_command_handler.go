package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler drives owner-initiated status transitions.
//
// Ordering is strict: the transition is committed first, and only then do the
// live broadcast and the status SMS run. Subscribers can momentarily lag the
// database but never see a status it does not hold. Both side effects are
// best effort.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantRepository
	notify      notifications
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	broadcaster ports.EventBroadcaster,
	notifier ports.SMSNotifier,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		notify:      newNotifications(restaurants, customers, broadcaster, notifier, logger),
	}
}

// Handle authorizes the actor, applies the transition, and commits it before
// any notification goes out.
//
// Only owners may transition orders, and only for their own restaurant.
// Authorization failures surface as AuthorizationError; unknown orders as
// ObjectNotFoundError; transitions out of a terminal state as validation
// errors.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Actor().Role().CanManageOrders() {
		return errs.NewAuthorizationError("update order status")
	}

	aggregate, err := h.transition(ctx, cmd)
	if err != nil {
		return err
	}

	h.notify.statusChanged(ctx, aggregate, cmd.NewStatus())
	return nil
}

func (h *UpdateOrderStatusCommandHandler) transition(
	ctx context.Context, cmd UpdateOrderStatusCommand,
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

	restaurant, err := h.restaurants.Get(ctx, aggregate.RestaurantID())
	if err != nil {
		return nil, err
	}
	if !restaurant.OwnerID.IsEqual(cmd.Actor().ID()) {
		return nil, errs.NewAuthorizationError("update order status for another owner's restaurant")
	}

	if err = aggregate.ChangeStatus(cmd.NewStatus()); err != nil {
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

package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// HideOrderCommandHandler flips the requester's visibility flag on an order.
//
// Customers may hide only their own orders and only once the order reached a
// terminal state; owners may hide orders of their restaurant at any time.
// The other party's view is never affected.
type HideOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	restaurants ports.RestaurantRepository
}

// NewHideOrderCommandHandler creates a handler for order hiding.
func NewHideOrderCommandHandler(
	uowFactory OrderUoWFactory, restaurants ports.RestaurantRepository,
) HideOrderCommandHandler {
	return HideOrderCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
	}
}

// Handle authorizes the actor against the order and commits the flag change.
func (h *HideOrderCommandHandler) Handle(ctx context.Context, cmd HideOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.hide(ctx, cmd, aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *HideOrderCommandHandler) hide(ctx context.Context, cmd HideOrderCommand, aggregate *order.Order) error {
	switch cmd.Actor().Role() {
	case account.RoleCustomer:
		if !aggregate.CustomerID().IsEqual(cmd.Actor().ID()) {
			return errs.NewAuthorizationError("hide another customer's order")
		}
		return aggregate.HideFromCustomer()

	case account.RoleOwner:
		restaurant, err := h.restaurants.Get(ctx, aggregate.RestaurantID())
		if err != nil {
			return err
		}
		if !restaurant.OwnerID.IsEqual(cmd.Actor().ID()) {
			return errs.NewAuthorizationError("hide another owner's order")
		}
		aggregate.HideFromOwner()
		return nil

	default:
		return errs.NewAuthorizationError("hide order")
	}
}

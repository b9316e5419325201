package commands

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// SettleOrderCommandHandler turns a verified payment into a committed order.
//
// Preconditions, in order: the gateway signature must prove the payment, and
// the cart is repriced from the current catalog so the committed total never
// depends on anything the client sent. The order and its line items are
// written in one transaction. If that commit fails after the money already
// moved, the handler compensates by refunding the full charge; a failed
// refund is the one state the system cannot repair on its own, so it is
// logged for manual follow-up.
type SettleOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	menuItems  ports.MenuItemRepository
	gateway    ports.PaymentGateway
	calculator services.PriceCalculator
	logger     *slog.Logger
}

// NewSettleOrderCommandHandler creates a handler for order settlement.
func NewSettleOrderCommandHandler(
	uowFactory OrderUoWFactory,
	menuItems ports.MenuItemRepository,
	gateway ports.PaymentGateway,
	logger *slog.Logger,
) SettleOrderCommandHandler {
	return SettleOrderCommandHandler{
		uowFactory: uowFactory,
		menuItems:  menuItems,
		gateway:    gateway,
		calculator: services.NewPriceCalculator(),
		logger:     logger.With("component", "settle_order"),
	}
}

// Handle verifies the payment, reprices the cart, and commits the order
// atomically. Returns the new order's identifier.
func (h *SettleOrderCommandHandler) Handle(
	ctx context.Context, cmd SettleOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	if err := h.gateway.VerifySignature(cmd.ChargeRef(), cmd.PaymentRef(), cmd.Signature()); err != nil {
		return kernel.UUID{}, errs.NewPaymentFailedErrorWithCause("signature", err)
	}

	lines := cmd.Lines()
	menuItemIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		menuItemIDs = append(menuItemIDs, line.MenuItemID)
	}

	prices, err := h.menuItems.GetPrices(ctx, menuItemIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	items, total, err := h.calculator.PriceCart(lines, prices)
	if err != nil {
		return kernel.UUID{}, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().ID(),
		cmd.RestaurantID(),
		items,
		cmd.PaymentRef(),
		cmd.DeliveryAddress(),
		cmd.DeliveryPoint(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.commit(ctx, newOrder); err != nil {
		h.refund(ctx, cmd.PaymentRef(), total)
		return kernel.UUID{}, err
	}

	return newOrder.ID(), nil
}

func (h *SettleOrderCommandHandler) commit(ctx context.Context, aggregate *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// refund compensates a commit failure that happened after capture. A refund
// failure leaves captured money with no order behind it and needs a human.
func (h *SettleOrderCommandHandler) refund(ctx context.Context, paymentRef string, amount int64) {
	if err := h.gateway.Refund(ctx, paymentRef, amount); err != nil {
		h.logger.Error("CRITICAL: refund after failed commit did not go through, manual intervention required",
			"payment_ref", paymentRef, "amount", amount, "error", err)
		return
	}

	h.logger.Warn("order commit failed, payment refunded", "payment_ref", paymentRef, "amount", amount)
}

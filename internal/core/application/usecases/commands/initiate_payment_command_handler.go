package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// paymentCurrency is the currency every charge is created in. Amounts are
// minor units (paise).
const paymentCurrency = "INR"

// InitiatePaymentCommandHandler prices the cart from the current catalog and
// registers a charge for the total at the payment gateway. No order exists
// yet; the order is committed only at settlement.
type InitiatePaymentCommandHandler struct {
	menuItems  ports.MenuItemRepository
	gateway    ports.PaymentGateway
	calculator services.PriceCalculator
}

// NewInitiatePaymentCommandHandler creates a handler for payment initiation.
func NewInitiatePaymentCommandHandler(
	menuItems ports.MenuItemRepository,
	gateway ports.PaymentGateway,
) InitiatePaymentCommandHandler {
	return InitiatePaymentCommandHandler{
		menuItems:  menuItems,
		gateway:    gateway,
		calculator: services.NewPriceCalculator(),
	}
}

// Handle prices the cart server side and creates the gateway charge.
// Returns the charge the client pays against. Any amount the client may have
// displayed is ignored.
func (h *InitiatePaymentCommandHandler) Handle(
	ctx context.Context, cmd InitiatePaymentCommand,
) (ports.Charge, error) {
	if err := cmd.Validate(); err != nil {
		return ports.Charge{}, err
	}

	lines := cmd.Lines()
	menuItemIDs := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		menuItemIDs = append(menuItemIDs, line.MenuItemID)
	}

	prices, err := h.menuItems.GetPrices(ctx, menuItemIDs)
	if err != nil {
		return ports.Charge{}, err
	}

	_, total, err := h.calculator.PriceCart(lines, prices)
	if err != nil {
		return ports.Charge{}, err
	}

	charge, err := h.gateway.CreateCharge(ctx, total, paymentCurrency, cmd.Actor().ID().String())
	if err != nil {
		return ports.Charge{}, errs.NewPaymentFailedErrorWithCause("charge", err)
	}

	return charge, nil
}

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
)

// IssueDeliveryCodeCommandHandler generates a single-use delivery code,
// stores it on the order, and texts it to the customer after commit.
type IssueDeliveryCodeCommandHandler struct {
	uowFactory OrderUoWFactory
	notify     notifications
}

// NewIssueDeliveryCodeCommandHandler creates a handler for code issuance.
func NewIssueDeliveryCodeCommandHandler(
	uowFactory OrderUoWFactory,
	restaurants ports.RestaurantRepository,
	customers ports.CustomerRepository,
	broadcaster ports.EventBroadcaster,
	notifier ports.SMSNotifier,
	logger *slog.Logger,
) IssueDeliveryCodeCommandHandler {
	return IssueDeliveryCodeCommandHandler{
		uowFactory: uowFactory,
		notify:     newNotifications(restaurants, customers, broadcaster, notifier, logger),
	}
}

// Handle stores a fresh random code on the order and commits before the SMS
// goes out. The SMS is best effort; the committed code stands either way.
func (h *IssueDeliveryCodeCommandHandler) Handle(ctx context.Context, cmd IssueDeliveryCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code := newDeliveryCode()

	aggregate, err := h.store(ctx, cmd, code)
	if err != nil {
		return err
	}

	h.notify.deliveryCodeIssued(ctx, aggregate, code)
	return nil
}

func (h *IssueDeliveryCodeCommandHandler) store(
	ctx context.Context, cmd IssueDeliveryCodeCommand, code string,
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

	if err = aggregate.IssueDeliveryCode(code); err != nil {
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

// newDeliveryCode returns a uniformly random 4-digit code in [1000, 9999].
func newDeliveryCode() string {
	return fmt.Sprintf("%d", rand.Intn(9000)+1000)
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// ConfirmDelivery is the irrevocable event of the lifecycle: the buyer's
// scan moves the order to DELIVERED, triggers the escrow release and then
// sanitizes the record. Neither a ledger failure nor a sanitize failure can
// undo the status transition.
func (uc *DefaultOrderUsecase) ConfirmDelivery(ctx context.Context, orderID, scannedPayload string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if scannedPayload != order.VerificationCode {
		return nil, domain.ErrVerificationMismatch
	}
	if !order.InDelivery() {
		return nil, domain.NewTransitionError(orderID, "delivery confirmation", order.Status, domain.StatusInTransit, domain.StatusPickedUp)
	}

	now := time.Now()
	order, err = uc.OrderRepo.UpdateOrderFields(orderID, map[string]any{
		"status":       domain.StatusDelivered,
		"delivered_at": &now,
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersDeliveredTotal.Inc()
	}

	warn := uc.releaseEscrowOnce(ctx, order)
	uc.sanitizeDelivered(order)

	uc.publishOrderEvent(order, "delivered")
	uc.notifyCallback(order)

	return order, warn
}

// releaseEscrowOnce releases the held funds to the seller unless the escrow
// was already settled. SettledAmount doubles as the applied-marker, so a
// replayed confirmation never submits a second release.
func (uc *DefaultOrderUsecase) releaseEscrowOnce(ctx context.Context, order *domain.Order) error {
	if order.SettledAmount != "" {
		return nil
	}
	if order.EscrowAccount == "" {
		slog.Warn("no escrow account resolved yet, release deferred to reconciliation", "order_id", order.ID)
		return nil
	}

	txRef, err := uc.Escrow.ReleaseEscrow(ctx, order.EscrowAccount)
	if err != nil {
		slog.Error("escrow release failed, order stays DELIVERED", "order_id", order.ID, "error", err.Error())
		return err
	}

	updated, err := uc.OrderRepo.UpdateOrderFields(order.ID, map[string]any{
		"settled_amount": order.Price,
		"escrow_tx_ref":  txRef,
	})
	if err != nil {
		slog.Error("failed to record settlement", "order_id", order.ID, "error", err.Error())
		return nil
	}
	*order = *updated

	return nil
}

// sanitizeDelivered clears the photo reference and invalidates the
// personal-courier token. Failures are logged and never block the delivery.
func (uc *DefaultOrderUsecase) sanitizeDelivered(order *domain.Order) {
	updated, err := uc.OrderRepo.UpdateOrderFields(order.ID, map[string]any{
		"photo_ref":     "",
		"courier_token": "",
	})
	if err != nil {
		slog.Error("failed to sanitize delivered order", "order_id", order.ID, "error", err.Error())
		return
	}
	*order = *updated
}

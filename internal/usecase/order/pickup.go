package usecase

import (
	"context"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// ConfirmPickup validates the scanned code against the order and moves the
// order into transit. The scanned payload must equal the order id exactly.
func (uc *DefaultOrderUsecase) ConfirmPickup(ctx context.Context, orderID, courierID, scannedPayload string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if scannedPayload != order.VerificationCode {
		return nil, domain.ErrVerificationMismatch
	}
	if order.Status != domain.StatusPaid {
		return nil, domain.NewTransitionError(orderID, "pickup confirmation", order.Status, domain.StatusPaid)
	}
	if order.CourierID != courierID {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	order, err = uc.OrderRepo.UpdateOrderFields(orderID, map[string]any{
		"status":       domain.StatusInTransit,
		"picked_up_at": &now,
	})
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersPickedUpTotal.Inc()
	}
	uc.publishOrderEvent(order, "picked_up")

	return order, nil
}

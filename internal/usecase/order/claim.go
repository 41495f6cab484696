package usecase

import (
	"context"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// ClaimOrder binds a courier to a paid, unassigned order. Re-claiming an
// order the courier already owns is a no-op success. Losing the claim race
// returns ErrOrderUnavailable.
func (uc *DefaultOrderUsecase) ClaimOrder(ctx context.Context, orderID, courierID, token string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status == domain.StatusPaid && order.CourierID == courierID {
		return order, nil
	}
	if order.Status != domain.StatusPaid {
		return nil, domain.NewTransitionError(orderID, "claim", order.Status, domain.StatusPaid)
	}
	if order.CourierMode == domain.ModePersonal && token != order.CourierToken {
		return nil, domain.ErrUnauthorized
	}

	claimed, err := uc.OrderRepo.ClaimOrder(orderID, courierID)
	if err != nil {
		return nil, err
	}

	uc.publishOrderEvent(claimed, "claimed")

	return claimed, nil
}

// ReleaseOrder returns a not-yet-picked-up order to the pool. Only the bound
// courier may release.
func (uc *DefaultOrderUsecase) ReleaseOrder(ctx context.Context, orderID, courierID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusPaid {
		return nil, domain.NewTransitionError(orderID, "release", order.Status, domain.StatusPaid)
	}
	if order.CourierID != courierID {
		return nil, domain.ErrUnauthorized
	}

	released, err := uc.OrderRepo.ReleaseOrder(orderID, courierID)
	if err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersReleasedTotal.Inc()
	}
	uc.publishOrderEvent(released, "released")

	return released, nil
}

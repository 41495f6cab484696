package usecase

import (
	"context"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

// UpdateCourierLocation records the courier's live position while the goods
// are in their hands.
func (uc *DefaultOrderUsecase) UpdateCourierLocation(ctx context.Context, orderID, courierID string, lat, lng float64) (*domain.Order, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domain.ErrInvalidCoordinates
	}

	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if !order.InDelivery() {
		return nil, domain.NewTransitionError(orderID, "location update", order.Status,
			domain.StatusPickedUp, domain.StatusInTransit)
	}
	if order.CourierID != courierID {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	return uc.OrderRepo.UpdateOrderFields(orderID, map[string]any{
		"lat":         lat,
		"lng":         lng,
		"location_at": &now,
	})
}

package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	orderdto "github.com/Chidozie222/Hackathon-sub000/internal/usecase/dto/order"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error) {
	if input.ItemName == "" {
		return nil, fmt.Errorf("%w: item name is required", domain.ErrInvalidInput)
	}
	if price, err := strconv.ParseFloat(input.Price, 64); err != nil || price <= 0 {
		return nil, fmt.Errorf("%w: price must be a positive decimal, got %q", domain.ErrInvalidInput, input.Price)
	}
	if input.PickupAddress == "" || input.DeliveryAddress == "" {
		return nil, fmt.Errorf("%w: pickup and delivery addresses are required", domain.ErrInvalidInput)
	}

	mode := input.CourierMode
	if mode == "" {
		mode = domain.ModePlatform
	}
	if mode != domain.ModePlatform && mode != domain.ModePersonal {
		return nil, fmt.Errorf("%w: unknown courier mode %q", domain.ErrInvalidInput, input.CourierMode)
	}

	orderID := uuid.New().String()

	order := &domain.Order{
		ID:              orderID,
		SellerID:        input.SellerID,
		ItemName:        input.ItemName,
		Price:           input.Price,
		PickupAddress:   input.PickupAddress,
		DeliveryAddress: input.DeliveryAddress,
		BuyerContact:    input.BuyerContact,
		Agreement:       input.Agreement,
		PhotoRef:        input.PhotoRef,
		CallbackURL:     input.CallbackURL,
		CourierMode:     mode,
		// The QR payload proves possession by encoding the order id.
		VerificationCode: orderID,
		Status:           domain.StatusPendingPayment,
		CreatedAt:        time.Now(),
	}

	if mode == domain.ModePersonal {
		tokenGenerator, err := nanoid.Standard(15)
		if err != nil {
			return nil, err
		}
		order.CourierToken = tokenGenerator()
	}

	if err := uc.OrderRepo.CreateOrder(order); err != nil {
		return nil, err
	}

	if uc.Metrics != nil {
		uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(mode)).Inc()
	}
	uc.publishOrderEvent(order, "created")

	return order, nil
}

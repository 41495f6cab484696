package usecase

import (
	"context"
	"log/slog"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	publisher "github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/kafka"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/metrics"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/notifier"
	"github.com/Chidozie222/Hackathon-sub000/internal/usecase/dispute"
	orderdto "github.com/Chidozie222/Hackathon-sub000/internal/usecase/dto/order"
)

const (
	TopicOrderEvents   = "order-events"
	TopicDisputeEvents = "dispute-events"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID, paymentRef, sellerAddress string) (*domain.Order, error)

	ClaimOrder(ctx context.Context, orderID, courierID, token string) (*domain.Order, error)
	ReleaseOrder(ctx context.Context, orderID, courierID string) (*domain.Order, error)
	ConfirmPickup(ctx context.Context, orderID, courierID, scannedPayload string) (*domain.Order, error)
	ConfirmDelivery(ctx context.Context, orderID, scannedPayload string) (*domain.Order, error)
	UpdateCourierLocation(ctx context.Context, orderID, courierID string, lat, lng float64) (*domain.Order, error)

	RequestCancellation(ctx context.Context, orderID, reason string) (*domain.Order, error)
	ResolveDispute(ctx context.Context, orderID string) (*domain.Order, error)

	GetOrderByID(orderID string) (*domain.Order, error)
	GetOrdersBySellerID(sellerID string) ([]*domain.Order, error)
	GetOrdersByCourierID(courierID string) ([]*domain.Order, error)
	GetAvailableOrders() ([]*domain.Order, error)

	ReconcilePendingEscrows(ctx context.Context) error
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
	Escrow    domain.EscrowService
	Disputes  *dispute.Engine
	Publisher publisher.EventPublisher
	Metrics   *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	escrow domain.EscrowService,
	disputeEngine *dispute.Engine,
	eventPublisher publisher.EventPublisher,
	orderMetrics *metrics.OrderMetrics) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo: orderRepo,
		Escrow:    escrow,
		Disputes:  disputeEngine,
		Publisher: eventPublisher,
		Metrics:   orderMetrics,
	}
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, stage string) {
	if uc.Publisher == nil {
		return
	}
	go func(event publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrder(TopicOrderEvents, event); err != nil {
			slog.Error("failed to publish kafka order event", "stage", stage, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:   order.ID,
		SellerID:  order.SellerID,
		CourierID: order.CourierID,
		Status:    string(order.Status),
		Stage:     stage,
		Price:     order.Price,
	})
}

func (uc *DefaultOrderUsecase) publishDisputeEvent(order *domain.Order, status string) {
	if uc.Publisher == nil || order.Dispute == nil {
		return
	}
	go func(event publisher.DisputeEvent) {
		if err := uc.Publisher.PublishDispute(TopicDisputeEvents, event); err != nil {
			slog.Error("failed to publish kafka dispute event", "stage", status, "error", err.Error())
		}
	}(publisher.DisputeEvent{
		OrderID:     order.ID,
		SellerID:    order.SellerID,
		Reason:      order.Dispute.Reason,
		Decision:    string(order.Dispute.Decision),
		Explanation: order.Dispute.Explanation,
		Status:      status,
	})
}

func (uc *DefaultOrderUsecase) notifyCallback(order *domain.Order) {
	if order.CallbackURL == "" {
		return
	}
	notifier.SendCallback(order.CallbackURL, notifier.CallbackPayload{
		OrderID:       order.ID,
		Status:        string(order.Status),
		EscrowAccount: order.EscrowAccount,
		TxRef:         order.EscrowTxRef,
	})
}

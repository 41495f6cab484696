package mappers

import (
	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
	"github.com/Chidozie222/Hackathon-sub000/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	m := &models.OrderModel{
		ID:               order.ID,
		SellerID:         order.SellerID,
		ItemName:         order.ItemName,
		Price:            order.Price,
		PickupAddress:    order.PickupAddress,
		DeliveryAddress:  order.DeliveryAddress,
		BuyerContact:     order.BuyerContact,
		Agreement:        order.Agreement,
		PhotoRef:         order.PhotoRef,
		CallbackURL:      order.CallbackURL,
		CourierMode:      order.CourierMode,
		CourierID:        order.CourierID,
		CourierToken:     order.CourierToken,
		VerificationCode: order.VerificationCode,
		PaymentRef:       order.PaymentRef,
		SellerAddress:    order.SellerAddress,
		EscrowAccount:    order.EscrowAccount,
		EscrowTxRef:      order.EscrowTxRef,
		SettledAmount:    order.SettledAmount,
		Status:           order.Status,
		Lat:              order.Lat,
		Lng:              order.Lng,
		LocationAt:       order.LocationAt,
		CreatedAt:        order.CreatedAt,
		AcceptedAt:       order.AcceptedAt,
		PickedUpAt:       order.PickedUpAt,
		DeliveredAt:      order.DeliveredAt,
	}

	if order.Dispute != nil {
		m.DisputeRequested = order.Dispute.Requested
		m.DisputeReason = order.Dispute.Reason
		m.DisputeDecision = string(order.Dispute.Decision)
		m.DisputeExplanation = order.Dispute.Explanation
		m.DisputeResolvedAt = order.Dispute.ResolvedAt
	}

	return m
}

func ToDomainOrder(m *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:               m.ID,
		SellerID:         m.SellerID,
		ItemName:         m.ItemName,
		Price:            m.Price,
		PickupAddress:    m.PickupAddress,
		DeliveryAddress:  m.DeliveryAddress,
		BuyerContact:     m.BuyerContact,
		Agreement:        m.Agreement,
		PhotoRef:         m.PhotoRef,
		CallbackURL:      m.CallbackURL,
		CourierMode:      m.CourierMode,
		CourierID:        m.CourierID,
		CourierToken:     m.CourierToken,
		VerificationCode: m.VerificationCode,
		PaymentRef:       m.PaymentRef,
		SellerAddress:    m.SellerAddress,
		EscrowAccount:    m.EscrowAccount,
		EscrowTxRef:      m.EscrowTxRef,
		SettledAmount:    m.SettledAmount,
		Status:           m.Status,
		Lat:              m.Lat,
		Lng:              m.Lng,
		LocationAt:       m.LocationAt,
		CreatedAt:        m.CreatedAt,
		AcceptedAt:       m.AcceptedAt,
		PickedUpAt:       m.PickedUpAt,
		DeliveredAt:      m.DeliveredAt,
	}

	if m.DisputeRequested {
		order.Dispute = &domain.DisputeRecord{
			Requested:   m.DisputeRequested,
			Reason:      m.DisputeReason,
			Decision:    domain.Decision(m.DisputeDecision),
			Explanation: m.DisputeExplanation,
			ResolvedAt:  m.DisputeResolvedAt,
		}
	}

	return order
}

package response

import (
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

type DisputeResponse struct {
	Reason      string     `json:"reason"`
	Decision    string     `json:"decision,omitempty"`
	Explanation string     `json:"explanation,omitempty"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

type OrderResponse struct {
	ID              string `json:"id"`
	SellerID        string `json:"seller_id"`
	ItemName        string `json:"item_name"`
	Price           string `json:"price"`
	PickupAddress   string `json:"pickup_address"`
	DeliveryAddress string `json:"delivery_address"`
	BuyerContact    string `json:"buyer_contact,omitempty"`
	Agreement       string `json:"agreement,omitempty"`
	PhotoRef        string `json:"photo_ref,omitempty"`

	CourierMode      string `json:"courier_mode"`
	CourierID        string `json:"courier_id,omitempty"`
	CourierToken     string `json:"courier_token,omitempty"`
	VerificationCode string `json:"verification_code"`

	PaymentRef    string `json:"payment_ref,omitempty"`
	EscrowAccount string `json:"escrow_account,omitempty"`
	EscrowTxRef   string `json:"escrow_tx_ref,omitempty"`
	SettledAmount string `json:"settled_amount,omitempty"`

	Status  string           `json:"status"`
	Dispute *DisputeResponse `json:"dispute,omitempty"`

	Lat        float64    `json:"lat,omitempty"`
	Lng        float64    `json:"lng,omitempty"`
	LocationAt *time.Time `json:"location_at,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	PickedUpAt  *time.Time `json:"picked_up_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`

	Warning string `json:"warning,omitempty"`
}

func FromDomain(order *domain.Order, warning string) *OrderResponse {
	resp := &OrderResponse{
		ID:               order.ID,
		SellerID:         order.SellerID,
		ItemName:         order.ItemName,
		Price:            order.Price,
		PickupAddress:    order.PickupAddress,
		DeliveryAddress:  order.DeliveryAddress,
		BuyerContact:     order.BuyerContact,
		Agreement:        order.Agreement,
		PhotoRef:         order.PhotoRef,
		CourierMode:      string(order.CourierMode),
		CourierID:        order.CourierID,
		CourierToken:     order.CourierToken,
		VerificationCode: order.VerificationCode,
		PaymentRef:       order.PaymentRef,
		EscrowAccount:    order.EscrowAccount,
		EscrowTxRef:      order.EscrowTxRef,
		SettledAmount:    order.SettledAmount,
		Status:           string(order.Status),
		Lat:              order.Lat,
		Lng:              order.Lng,
		LocationAt:       order.LocationAt,
		CreatedAt:        order.CreatedAt,
		AcceptedAt:       order.AcceptedAt,
		PickedUpAt:       order.PickedUpAt,
		DeliveredAt:      order.DeliveredAt,
		Warning:          warning,
	}

	if order.Dispute != nil {
		resp.Dispute = &DisputeResponse{
			Reason:      order.Dispute.Reason,
			Decision:    string(order.Dispute.Decision),
			Explanation: order.Dispute.Explanation,
			ResolvedAt:  order.Dispute.ResolvedAt,
		}
	}

	return resp
}

type ErrorResponse struct {
	Error          string `json:"error"`
	CurrentStatus  string `json:"current_status,omitempty"`
	RequiredStatus string `json:"required_status,omitempty"`
}

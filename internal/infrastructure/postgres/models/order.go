package models

import (
	"time"

	"github.com/Chidozie222/Hackathon-sub000/internal/domain"
)

type OrderModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	SellerID        string `gorm:"index:idx_seller"`
	ItemName        string
	Price           string `gorm:"type:text"`
	PickupAddress   string
	DeliveryAddress string
	BuyerContact    string
	Agreement       string `gorm:"type:text"`
	PhotoRef        string
	CallbackURL     string

	CourierMode      domain.CourierMode
	CourierID        string `gorm:"index:idx_courier"`
	CourierToken     string
	VerificationCode string

	PaymentRef    string
	SellerAddress string
	EscrowAccount string
	EscrowTxRef   string
	SettledAmount string

	Status domain.OrderStatus `gorm:"index:idx_status"`

	DisputeRequested   bool
	DisputeReason      string `gorm:"type:text"`
	DisputeDecision    string
	DisputeExplanation string `gorm:"type:text"`
	DisputeResolvedAt  *time.Time

	Lat        float64
	Lng        float64
	LocationAt *time.Time

	CreatedAt   time.Time `gorm:"index:idx_created_at"`
	UpdatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

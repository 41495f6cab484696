package domain

import "time"

type OrderStatus string

const (
	StatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	StatusPaid           OrderStatus = "PAID"
	StatusPickedUp       OrderStatus = "PICKED_UP"
	StatusInTransit      OrderStatus = "IN_TRANSIT"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusDisputed       OrderStatus = "DISPUTED"
	StatusCompleted      OrderStatus = "COMPLETED"
)

type CourierMode string

const (
	ModePlatform CourierMode = "PLATFORM"
	ModePersonal CourierMode = "PERSONAL"
)

type Order struct {
	ID              string
	SellerID        string
	ItemName        string
	Price           string
	PickupAddress   string
	DeliveryAddress string
	BuyerContact    string
	Agreement       string
	PhotoRef        string
	CallbackURL     string

	CourierMode      CourierMode
	CourierID        string
	CourierToken     string
	VerificationCode string

	PaymentRef    string
	SellerAddress string
	EscrowAccount string
	EscrowTxRef   string
	SettledAmount string

	Status  OrderStatus
	Dispute *DisputeRecord

	Lat        float64
	Lng        float64
	LocationAt *time.Time

	CreatedAt   time.Time
	AcceptedAt  *time.Time
	PickedUpAt  *time.Time
	DeliveredAt *time.Time
}

// InDelivery reports whether the courier currently holds the goods.
func (o *Order) InDelivery() bool {
	return o.Status == StatusPickedUp || o.Status == StatusInTransit
}

// DeliveryStarted reports whether the pickup scan ever happened. A dispute
// resolution may only resume an order whose delivery has not started.
func (o *Order) DeliveryStarted() bool {
	return o.PickedUpAt != nil
}

func (o *Order) Terminal() bool {
	return o.Status == StatusDelivered || o.Status == StatusCompleted
}

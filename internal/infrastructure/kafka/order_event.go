package kafka

type OrderEvent struct {
	OrderID   string `json:"order_id"`
	SellerID  string `json:"seller_id"`
	CourierID string `json:"courier_id,omitempty"`
	Status    string `json:"status"`
	Stage     string `json:"stage"`
	Price     string `json:"price"`
}

package kafka

type DisputeEvent struct {
	OrderID     string `json:"order_id"`
	SellerID    string `json:"seller_id"`
	Reason      string `json:"reason"`
	Decision    string `json:"decision,omitempty"`
	Explanation string `json:"explanation,omitempty"`
	Status      string `json:"status"`
}

package domain

// OrderRepository is the durable order store. Updates to a single order must
// be atomic: UpdateOrderFields merges the given columns under a per-order
// lock, ClaimOrder and ReleaseOrder are conditional single-row writes so the
// courier-binding race has exactly one winner.
type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	UpdateOrderFields(orderID string, fields map[string]any) (*Order, error)

	ClaimOrder(orderID, courierID string) (*Order, error)
	ReleaseOrder(orderID, courierID string) (*Order, error)

	GetOrdersBySellerID(sellerID string) ([]*Order, error)
	GetOrdersByCourierID(courierID string) ([]*Order, error)
	GetAvailableOrders() ([]*Order, error)
	FindPendingEscrows() ([]*Order, error)
}

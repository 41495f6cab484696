package request

type CreateOrderRequest struct {
	SellerID        string `json:"seller_id" binding:"required"`
	ItemName        string `json:"item_name" binding:"required"`
	Price           string `json:"price" binding:"required"`
	PickupAddress   string `json:"pickup_address" binding:"required"`
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	BuyerContact    string `json:"buyer_contact"`
	Agreement       string `json:"agreement"`
	PhotoRef        string `json:"photo_ref"`
	CallbackURL     string `json:"callback_url"`
	CourierMode     string `json:"courier_mode"`
}

package orderdto

import "github.com/Chidozie222/Hackathon-sub000/internal/domain"

type CreateOrderInput struct {
	SellerID        string
	ItemName        string
	Price           string
	PickupAddress   string
	DeliveryAddress string
	BuyerContact    string
	Agreement       string
	PhotoRef        string
	CallbackURL     string
	CourierMode     domain.CourierMode
}

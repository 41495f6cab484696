package request

type ConfirmPaymentRequest struct {
	PaymentRef    string `json:"payment_ref" binding:"required"`
	SellerAddress string `json:"seller_address" binding:"required"`
}

type ClaimOrderRequest struct {
	CourierID string `json:"courier_id" binding:"required"`
	Token     string `json:"token"`
}

type ReleaseOrderRequest struct {
	CourierID string `json:"courier_id" binding:"required"`
}

type ConfirmPickupRequest struct {
	CourierID      string `json:"courier_id" binding:"required"`
	ScannedPayload string `json:"scanned_payload" binding:"required"`
}

type ConfirmDeliveryRequest struct {
	ScannedPayload string `json:"scanned_payload" binding:"required"`
}

type RequestCancellationRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type UpdateLocationRequest struct {
	CourierID string  `json:"courier_id" binding:"required"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

package notifier

type CallbackPayload struct {
	OrderID       string `json:"order_id"`
	Status        string `json:"status"`
	EscrowAccount string `json:"escrow_account,omitempty"`
	TxRef         string `json:"tx_ref,omitempty"`
}

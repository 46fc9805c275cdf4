package request

// OrderStatusRequest moves an order through its lifecycle.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package response

import (
	"time"

	"elo_drinks/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	OrderID     string    `json:"order_id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	CheckoutURL string    `json:"checkout_url,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Date:        p.Date,
		Status:      string(p.Status),
		CheckoutURL: p.CheckoutURL,
	}
}

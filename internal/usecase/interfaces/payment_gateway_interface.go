package interfaces

import "context"

// Checkout is the provider-side redirect created for an order. URL is opened
// by the storefront in a pop-up window; the order status is re-checked once
// the window closes.
type Checkout struct {
	PreferenceID string
	URL          string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The service uses it to create a hosted checkout for a firm order and to
// keep the provider response payload for traceability.
type IPaymentGateway interface {
	CreateCheckout(ctx context.Context, orderID, description string, amount float64) (Checkout, error)
}

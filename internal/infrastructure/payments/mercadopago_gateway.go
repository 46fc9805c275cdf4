package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"elo_drinks/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates hosted Checkout Pro preferences. The storefront
// opens the returned init point in a pop-up and re-checks the order when it
// closes.
type MercadoPagoGateway struct {
	client   preference.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: preference.NewClient(cfg)}, nil
}

// CreateCheckout registers a single-item preference for the order total.
// Amounts are carried in cents internally and converted to currency units at
// the provider boundary.
func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, orderID, description string, amount float64) (interfaces.Checkout, error) {
	if g != nil && g.mockMode {
		id := "mock-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock checkout created order_id=%s preference_id=%s", orderID, id)
		return interfaces.Checkout{
			PreferenceID: id,
			URL:          fmt.Sprintf("https://sandbox.mercadopago.test/checkout/%s", orderID),
		}, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.Checkout{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		ExternalReference: orderID,
		Items: []preference.ItemRequest{
			{
				ID:        orderID,
				Title:     description,
				Quantity:  1,
				UnitPrice: amount / 100,
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed order_id=%s err=%v", orderID, err)
		return interfaces.Checkout{}, err
	}
	log.Printf("[payment][gateway] checkout created order_id=%s preference_id=%s", orderID, resp.ID)

	return interfaces.Checkout{PreferenceID: resp.ID, URL: resp.InitPoint}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

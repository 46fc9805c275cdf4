package entities

import "time"

// OrderStatus represents the lifecycle of a submitted event order.
//
// Domain notes:
//   - "Orcado" is a saved quote, "Pendente" a firm order awaiting payment.
//   - Back-office transitions move orders to "Completado" or "Cancelado".

type OrderStatus string

const (
	OrderStatusOrcado     OrderStatus = "Orcado"
	OrderStatusPendente   OrderStatus = "Pendente"
	OrderStatusCompletado OrderStatus = "Completado"
	OrderStatusCancelado  OrderStatus = "Cancelado"
)

func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusOrcado, OrderStatusPendente, OrderStatusCompletado, OrderStatusCancelado:
		return true
	}
	return false
}

// OrderItem is one line of a submitted order. Quantity is always positive;
// zero-quantity selections never become line items.
type OrderItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// Order is the event order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (buyer_id-index): buyer_id
//
// Dates use yyyy-mm-dd, times HH:MM. Total is the price confirmed at
// submission time (cents, as float to tolerate the draft's NaN sentinel
// upstream; persisted orders always carry a concrete value).

type Order struct {
	ID           string      `json:"id"`
	BuyerID      string      `json:"buyer_id"`
	EventName    string      `json:"event_name"`
	EventType    string      `json:"event_type"`
	GuestCount   int         `json:"guest_count"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	EventDate    string      `json:"event_date"`
	PurchaseDate string      `json:"purchase_date"`
	Address      string      `json:"address"`
	Status       OrderStatus `json:"status"`
	Total        float64     `json:"total"`
	Items        []OrderItem `json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

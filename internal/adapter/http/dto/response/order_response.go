package response

import (
	"time"

	"elo_drinks/internal/domain/entities"
)

type OrderResponse struct {
	ID           string             `json:"id"`
	BuyerID      string             `json:"buyer_id"`
	EventName    string             `json:"event_name"`
	EventType    string             `json:"event_type"`
	GuestCount   int                `json:"guest_count"`
	StartTime    string             `json:"start_time"`
	EndTime      string             `json:"end_time"`
	EventDate    string             `json:"event_date"`
	PurchaseDate string             `json:"purchase_date"`
	Address      string             `json:"address"`
	Status       string             `json:"status"`
	Total        float64            `json:"total"`
	Items        []LineItemResponse `json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, line := range o.Items {
		items = append(items, LineItemResponse{ItemID: line.ItemID, Quantity: line.Quantity})
	}
	return OrderResponse{
		ID:           o.ID,
		BuyerID:      o.BuyerID,
		EventName:    o.EventName,
		EventType:    o.EventType,
		GuestCount:   o.GuestCount,
		StartTime:    o.StartTime,
		EndTime:      o.EndTime,
		EventDate:    o.EventDate,
		PurchaseDate: o.PurchaseDate,
		Address:      o.Address,
		Status:       string(o.Status),
		Total:        o.Total,
		Items:        items,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

package request

import (
	"errors"
	"strings"

	"elo_drinks/internal/domain/entities"
)

var ErrUnknownOrderStatus = errors.New("unknown order status")

// EventTypeRequest selects the kind of event on the first wizard step.
type EventTypeRequest struct {
	EventType string `json:"event_type" binding:"required"`
}

// EventInfoFieldRequest merges one field of the event-details form. Field is
// one of: name, date, start_time, guest_count, duration, address.
type EventInfoFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ToggleItemRequest flips a drink selection on or off.
type ToggleItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// QuantityRequest overwrites the quantity for an id. A pointer keeps
// "quantity": 0 (remove) bindable.
type QuantityRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

// StructureRequest picks the single structure. Re-sending the current id
// clears the selection.
type StructureRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

// NavigateRequest asks for a step transition. A pointer keeps "target": 0
// bindable.
type NavigateRequest struct {
	Target *int `json:"target" binding:"required"`
}

// SubmitRequest finalizes the draft. Status query parameter decides between a
// quote and a firm order; the body carries the buyer.
type SubmitRequest struct {
	BuyerID string `json:"buyer_id"`
}

func ResolveOrderStatus(raw string) (entities.OrderStatus, error) {
	status := entities.OrderStatus(strings.TrimSpace(raw))
	if !status.Known() {
		return "", ErrUnknownOrderStatus
	}
	return status, nil
}

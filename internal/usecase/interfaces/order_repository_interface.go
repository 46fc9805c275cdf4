package interfaces

import (
	"context"

	"elo_drinks/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for event orders.
//
// The service must be able to:
//   - create an order when a draft is submitted (quote or firm order)
//   - list orders for the back-office and per buyer
//   - update order status (back-office transitions and payment confirmations)

type IOrderRepository interface {
	Create(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context) ([]entities.Order, error)
	ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

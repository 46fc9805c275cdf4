package interfaces

import (
	"context"

	"elo_drinks/internal/domain/entities"
)

// IItemRepository abstracts DynamoDB persistence for catalog items.

type IItemRepository interface {
	Create(ctx context.Context, item entities.Item) (entities.Item, error)
	GetByID(ctx context.Context, id string) (entities.Item, error)
	List(ctx context.Context) ([]entities.Item, error)
	Update(ctx context.Context, item entities.Item) (entities.Item, error)
	SetAvailability(ctx context.Context, id string, available bool) (entities.Item, error)
}

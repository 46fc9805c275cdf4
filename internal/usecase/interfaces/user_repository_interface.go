package interfaces

import (
	"context"

	"elo_drinks/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for user accounts.

type IUserRepository interface {
	Create(ctx context.Context, user entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context) ([]entities.User, error)
	SetActive(ctx context.Context, id string, active bool) (entities.User, error)
}

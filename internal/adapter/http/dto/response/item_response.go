package response

import (
	"time"

	"elo_drinks/internal/domain/entities"
)

type ItemResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromItem(item entities.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Description: item.Description,
		Price:       item.Price,
		Category:    string(item.Category),
		ImageURL:    item.ImageURL,
		Available:   item.Available,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func FromItems(items []entities.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, FromItem(item))
	}
	return out
}

// FromGroupedItems keys the response by category name in render order.
func FromGroupedItems(grouped map[entities.ItemCategory][]entities.Item) map[string][]ItemResponse {
	out := make(map[string][]ItemResponse, len(grouped))
	for category, items := range grouped {
		out[string(category)] = FromItems(items)
	}
	return out
}

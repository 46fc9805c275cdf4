package request

import (
	"errors"
	"strings"

	"elo_drinks/internal/domain/entities"
)

var ErrUnknownCategory = errors.New("unknown item category")

// ItemRequest is the admin payload for creating or replacing a catalog item.
// Price is in integer cents.
type ItemRequest struct {
	Description string `json:"description" binding:"required"`
	Price       *int64 `json:"price" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"image_url"`
}

func (r ItemRequest) Resolve() (entities.Item, error) {
	category := entities.ItemCategory(strings.TrimSpace(r.Category))
	if !category.Known() {
		return entities.Item{}, ErrUnknownCategory
	}
	return entities.Item{
		Description: strings.TrimSpace(r.Description),
		Price:       *r.Price,
		Category:    category,
		ImageURL:    strings.TrimSpace(r.ImageURL),
	}, nil
}

// AvailabilityRequest toggles whether an item can be sold. A pointer keeps
// "available": false bindable.
type AvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

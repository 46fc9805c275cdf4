package entities

import "time"

// ItemCategory partitions the sellable catalog into the fixed buckets the
// customization flow knows how to render.

type ItemCategory string

const (
	CategoryAlcoolicos    ItemCategory = "alcoolicos"
	CategoryNaoAlcoolicos ItemCategory = "nao_alcoolicos"
	CategoryOutrasBebidas ItemCategory = "outras_bebidas"
	CategoryShots         ItemCategory = "shots"
	CategoryEstrutura     ItemCategory = "estrutura"
	CategoryFuncionarios  ItemCategory = "funcionarios"
)

// Categories lists the known buckets in render order.
var Categories = []ItemCategory{
	CategoryAlcoolicos,
	CategoryNaoAlcoolicos,
	CategoryOutrasBebidas,
	CategoryShots,
	CategoryEstrutura,
	CategoryFuncionarios,
}

func (c ItemCategory) Known() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Item is one sellable catalog entity (drink, structure or staff position).
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Price is in integer currency cents (centavos).

type Item struct {
	ID          string       `json:"id"`
	Description string       `json:"description"`
	Price       int64        `json:"price"`
	Category    ItemCategory `json:"category"`
	ImageURL    string       `json:"image_url,omitempty"`
	Available   bool         `json:"available"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// GroupByCategory partitions a flat catalog into the fixed buckets.
// Items with an unknown category are dropped.
func GroupByCategory(items []Item) map[ItemCategory][]Item {
	grouped := make(map[ItemCategory][]Item, len(Categories))
	for _, c := range Categories {
		grouped[c] = nil
	}
	for _, it := range items {
		if !it.Category.Known() {
			continue
		}
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped
}

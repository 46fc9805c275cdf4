package flow

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"elo_drinks/internal/domain/entities"
)

// DeriveLineItems projects the draft's five selection sources into a flat
// line-item list: toggled drinks become quantity-1 lines, every positive
// quantity entry becomes one line, and the structure id (if set) a quantity-1
// line. Ids that are not present in the catalog are dropped. The output order
// is deterministic for an unchanged draft.
func DeriveLineItems(d *entities.EventDraft, catalog []entities.Item) []entities.OrderItem {
	known := make(map[string]struct{}, len(catalog))
	for _, it := range catalog {
		known[it.ID] = struct{}{}
	}

	var items []entities.OrderItem
	appendLine := func(id string, quantity int) {
		if quantity <= 0 {
			return
		}
		if _, ok := known[id]; !ok {
			return
		}
		items = append(items, entities.OrderItem{ItemID: id, Quantity: quantity})
	}

	for _, id := range d.AlcoholicDrinkIDs {
		appendLine(id, 1)
	}
	for _, id := range d.NonAlcoholicDrinkIDs {
		appendLine(id, 1)
	}
	for _, id := range sortedKeys(d.OtherBeverageQuantities) {
		appendLine(id, d.OtherBeverageQuantities[id])
	}
	for _, id := range sortedKeys(d.ShotQuantities) {
		appendLine(id, d.ShotQuantities[id])
	}
	if d.StructureID != "" {
		appendLine(d.StructureID, 1)
	}
	for _, id := range sortedKeys(d.StaffQuantities) {
		appendLine(id, d.StaffQuantities[id])
	}
	return items
}

// EstimateLocal sums catalog price times quantity for each line item using the
// client-held catalog only. Lines whose id is missing from the catalog
// contribute nothing.
func EstimateLocal(lineItems []entities.OrderItem, catalog []entities.Item) float64 {
	prices := make(map[string]int64, len(catalog))
	for _, it := range catalog {
		prices[it.ID] = it.Price
	}
	total := 0.0
	for _, line := range lineItems {
		total += float64(prices[line.ItemID]) * float64(line.Quantity)
	}
	return total
}

// EndTime computes start + duration wrapping past midnight modulo 24h.
// Both arguments and the result are HH:MM.
func EndTime(start, duration string) (string, error) {
	startMin, err := parseHHMM(start)
	if err != nil {
		return "", err
	}
	durMin, err := parseHHMM(duration)
	if err != nil {
		return "", err
	}
	end := (startMin + durMin) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", end/60, end%60), nil
}

func parseHHMM(v string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(v), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid HH:MM value %q", v)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("invalid HH:MM value %q", v)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid HH:MM value %q", v)
	}
	return hours*60 + minutes, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

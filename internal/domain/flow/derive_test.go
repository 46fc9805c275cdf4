package flow

import (
	"reflect"
	"testing"

	"elo_drinks/internal/domain/entities"
)

func testCatalog() []entities.Item {
	return []entities.Item{
		{ID: "gin-tonica", Description: "Gin Tônica", Price: 1800, Category: entities.CategoryAlcoolicos},
		{ID: "limonada", Description: "Limonada Suíça", Price: 900, Category: entities.CategoryNaoAlcoolicos},
		{ID: "agua", Description: "Água Mineral", Price: 400, Category: entities.CategoryOutrasBebidas},
		{ID: "tequila", Description: "Shot de Tequila", Price: 1200, Category: entities.CategoryShots},
		{ID: "bar-premium", Description: "Bar Premium", Price: 250000, Category: entities.CategoryEstrutura},
		{ID: "bartender", Description: "Bartender", Price: 35000, Category: entities.CategoryFuncionarios},
	}
}

func TestDeriveLineItems(t *testing.T) {
	t.Run("one line per selection source", func(t *testing.T) {
		d := completeDraft()
		items := DeriveLineItems(&d, testCatalog())
		if len(items) != 6 {
			t.Fatalf("expected 6 line items, got %d: %v", len(items), items)
		}

		quantities := map[string]int{}
		for _, line := range items {
			quantities[line.ItemID] = line.Quantity
		}
		expected := map[string]int{
			"gin-tonica":  1,
			"limonada":    1,
			"agua":        10,
			"tequila":     5,
			"bar-premium": 1,
			"bartender":   2,
		}
		if !reflect.DeepEqual(quantities, expected) {
			t.Fatalf("expected %v, got %v", expected, quantities)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		d := completeDraft()
		first := DeriveLineItems(&d, testCatalog())
		second := DeriveLineItems(&d, testCatalog())
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("expected equal derivations, got %v vs %v", first, second)
		}
	})

	t.Run("unknown ids are dropped", func(t *testing.T) {
		d := completeDraft()
		d.ToggleAlcoholicDrink("descontinuado")
		d.SetShotQuantity("fantasma", 4)
		items := DeriveLineItems(&d, testCatalog())
		for _, line := range items {
			if line.ItemID == "descontinuado" || line.ItemID == "fantasma" {
				t.Fatalf("expected unresolvable ids dropped, got %v", items)
			}
		}
		if len(items) != 6 {
			t.Fatalf("expected 6 resolvable line items, got %d", len(items))
		}
	})

	t.Run("empty draft derives nothing", func(t *testing.T) {
		d := entities.NewEventDraft()
		if items := DeriveLineItems(&d, testCatalog()); len(items) != 0 {
			t.Fatalf("expected no line items, got %v", items)
		}
	})
}

func TestEstimateLocal(t *testing.T) {
	d := completeDraft()
	items := DeriveLineItems(&d, testCatalog())
	total := EstimateLocal(items, testCatalog())

	want := float64(1800 + 900 + 10*400 + 5*1200 + 250000 + 2*35000)
	if total != want {
		t.Fatalf("expected %v, got %v", want, total)
	}

	t.Run("missing catalog price contributes nothing", func(t *testing.T) {
		lines := []entities.OrderItem{{ItemID: "nao-existe", Quantity: 3}}
		if got := EstimateLocal(lines, testCatalog()); got != 0 {
			t.Fatalf("expected 0, got %v", got)
		}
	})
}

func TestEndTime(t *testing.T) {
	cases := []struct {
		start, duration, want string
	}{
		{"18:00", "06:00", "00:00"},
		{"18:00", "05:30", "23:30"},
		{"22:15", "04:00", "02:15"},
		{"00:00", "00:00", "00:00"},
		{"12:45", "26:30", "15:15"},
	}
	for _, tc := range cases {
		got, err := EndTime(tc.start, tc.duration)
		if err != nil {
			t.Fatalf("EndTime(%s,%s): unexpected error %v", tc.start, tc.duration, err)
		}
		if got != tc.want {
			t.Fatalf("EndTime(%s,%s): expected %s, got %s", tc.start, tc.duration, tc.want, got)
		}
	}

	if _, err := EndTime("18h00", "06:00"); err == nil {
		t.Fatalf("expected error for malformed start time")
	}
	if _, err := EndTime("18:00", ""); err == nil {
		t.Fatalf("expected error for empty duration")
	}
}

package entities

import "math"

// EventInfo holds the free-form fields captured on the event-details step.
// Date is yyyy-mm-dd, StartTime and Duration are HH:MM.
type EventInfo struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	GuestCount string `json:"guest_count"`
	Duration   string `json:"duration"`
	Address    string `json:"address"`
}

// EventDraft is the mutable working state of one customization session.
//
// Selections are keyed by item id throughout; display names are resolved only
// at render time. BackendPrice uses NaN as the "not yet computed" sentinel and
// is therefore persisted as a string by the repository layer.

type EventDraft struct {
	CurrentStep  int `json:"current_step"`
	AnimatedStep int `json:"animated_step"`
	Direction    int `json:"direction"`

	SelectedEventType string    `json:"selected_event_type"`
	EventInfo         EventInfo `json:"event_info"`

	AlcoholicDrinkIDs       []string       `json:"alcoholic_drink_ids"`
	NonAlcoholicDrinkIDs    []string       `json:"non_alcoholic_drink_ids"`
	OtherBeverageQuantities map[string]int `json:"other_beverage_quantities"`
	ShotQuantities          map[string]int `json:"shot_quantities"`
	StructureID             string         `json:"structure_id"`
	StaffQuantities         map[string]int `json:"staff_quantities"`

	BackendPrice     float64 `json:"-"`
	CalculatingPrice bool    `json:"calculating_price"`
}

// NewEventDraft returns the all-empty default draft.
func NewEventDraft() EventDraft {
	return EventDraft{
		Direction:               1,
		OtherBeverageQuantities: map[string]int{},
		ShotQuantities:          map[string]int{},
		StaffQuantities:         map[string]int{},
		BackendPrice:            math.NaN(),
	}
}

// Normalize fills nil collections after a partial rehydration so mutators can
// assume maps exist. Missing fields keep their zero defaults.
func (d *EventDraft) Normalize() {
	if d.OtherBeverageQuantities == nil {
		d.OtherBeverageQuantities = map[string]int{}
	}
	if d.ShotQuantities == nil {
		d.ShotQuantities = map[string]int{}
	}
	if d.StaffQuantities == nil {
		d.StaffQuantities = map[string]int{}
	}
	if d.Direction == 0 {
		d.Direction = 1
	}
}

// ToggleAlcoholicDrink adds the id if absent and removes it if present.
func (d *EventDraft) ToggleAlcoholicDrink(id string) {
	d.AlcoholicDrinkIDs = toggleID(d.AlcoholicDrinkIDs, id)
}

func (d *EventDraft) ToggleNonAlcoholicDrink(id string) {
	d.NonAlcoholicDrinkIDs = toggleID(d.NonAlcoholicDrinkIDs, id)
}

func (d *EventDraft) HasAlcoholicDrink(id string) bool {
	return containsID(d.AlcoholicDrinkIDs, id)
}

func (d *EventDraft) HasNonAlcoholicDrink(id string) bool {
	return containsID(d.NonAlcoholicDrinkIDs, id)
}

// SetOtherBeverageQuantity overwrites the quantity for an id. Negative values
// are a no-op; zero removes the entry.
func (d *EventDraft) SetOtherBeverageQuantity(id string, quantity int) {
	setQuantity(d.OtherBeverageQuantities, id, quantity)
}

func (d *EventDraft) SetShotQuantity(id string, quantity int) {
	setQuantity(d.ShotQuantities, id, quantity)
}

func (d *EventDraft) SetStaffQuantity(id string, quantity int) {
	setQuantity(d.StaffQuantities, id, quantity)
}

// SelectStructure picks the single structure id. Re-selecting the current id
// clears the selection.
func (d *EventDraft) SelectStructure(id string) {
	if d.StructureID == id {
		d.StructureID = ""
		return
	}
	d.StructureID = id
}

// Clone returns a deep copy safe to hand out while the original keeps mutating.
func (d EventDraft) Clone() EventDraft {
	out := d
	out.AlcoholicDrinkIDs = append([]string(nil), d.AlcoholicDrinkIDs...)
	out.NonAlcoholicDrinkIDs = append([]string(nil), d.NonAlcoholicDrinkIDs...)
	out.OtherBeverageQuantities = cloneQuantities(d.OtherBeverageQuantities)
	out.ShotQuantities = cloneQuantities(d.ShotQuantities)
	out.StaffQuantities = cloneQuantities(d.StaffQuantities)
	return out
}

func toggleID(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func setQuantity(quantities map[string]int, id string, quantity int) {
	if quantity < 0 {
		return
	}
	if quantity == 0 {
		delete(quantities, id)
		return
	}
	quantities[id] = quantity
}

func cloneQuantities(in map[string]int) map[string]int {
	out := make(map[string]int, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

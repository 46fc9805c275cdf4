package response

import (
	"math"

	"elo_drinks/internal/usecase"
)

type EventInfoResponse struct {
	Name       string `json:"name"`
	Date       string `json:"date"`
	StartTime  string `json:"start_time"`
	GuestCount string `json:"guest_count"`
	Duration   string `json:"duration"`
	Address    string `json:"address"`
}

type LineItemResponse struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// DraftViewResponse is the wizard snapshot. BackendPrice is null until the
// authoritative price has been confirmed (the NaN sentinel never reaches the
// wire).
type DraftViewResponse struct {
	SessionID string `json:"session_id"`

	CurrentStep  int `json:"current_step"`
	AnimatedStep int `json:"animated_step"`
	Direction    int `json:"direction"`

	SelectedEventType string            `json:"selected_event_type"`
	EventInfo         EventInfoResponse `json:"event_info"`

	AlcoholicDrinkIDs       []string       `json:"alcoholic_drink_ids"`
	NonAlcoholicDrinkIDs    []string       `json:"non_alcoholic_drink_ids"`
	OtherBeverageQuantities map[string]int `json:"other_beverage_quantities"`
	ShotQuantities          map[string]int `json:"shot_quantities"`
	StructureID             string         `json:"structure_id"`
	StaffQuantities         map[string]int `json:"staff_quantities"`

	StepValidity     []bool             `json:"step_validity"`
	LineItems        []LineItemResponse `json:"line_items"`
	LocalEstimate    float64            `json:"local_estimate"`
	BackendPrice     *float64           `json:"backend_price"`
	CalculatingPrice bool               `json:"calculating_price"`
}

func FromDraftView(view usecase.DraftView) DraftViewResponse {
	d := view.Draft

	lines := make([]LineItemResponse, 0, len(view.LineItems))
	for _, line := range view.LineItems {
		lines = append(lines, LineItemResponse{ItemID: line.ItemID, Quantity: line.Quantity})
	}

	var backendPrice *float64
	if !math.IsNaN(view.BackendPrice) {
		price := view.BackendPrice
		backendPrice = &price
	}

	return DraftViewResponse{
		SessionID: view.SessionID,

		CurrentStep:  d.CurrentStep,
		AnimatedStep: d.AnimatedStep,
		Direction:    d.Direction,

		SelectedEventType: d.SelectedEventType,
		EventInfo: EventInfoResponse{
			Name:       d.EventInfo.Name,
			Date:       d.EventInfo.Date,
			StartTime:  d.EventInfo.StartTime,
			GuestCount: d.EventInfo.GuestCount,
			Duration:   d.EventInfo.Duration,
			Address:    d.EventInfo.Address,
		},

		AlcoholicDrinkIDs:       emptyIfNil(d.AlcoholicDrinkIDs),
		NonAlcoholicDrinkIDs:    emptyIfNil(d.NonAlcoholicDrinkIDs),
		OtherBeverageQuantities: d.OtherBeverageQuantities,
		ShotQuantities:          d.ShotQuantities,
		StructureID:             d.StructureID,
		StaffQuantities:         d.StaffQuantities,

		StepValidity:     view.StepValidity[:],
		LineItems:        lines,
		LocalEstimate:    view.LocalEstimate,
		BackendPrice:     backendPrice,
		CalculatingPrice: view.CalculatingPrice,
	}
}

func emptyIfNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

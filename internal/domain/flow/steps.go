package flow

import (
	"regexp"
	"strings"

	"elo_drinks/internal/domain/entities"
)

// The customization flow walks nine ordered steps. Summary is terminal and
// always valid once reached.

const (
	StepEventType = iota
	StepEventInfo
	StepAlcoholicDrinks
	StepNonAlcoholicDrinks
	StepOtherBeverages
	StepShots
	StepStructure
	StepStaff
	StepSummary

	StepCount
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// IsStepValid reports whether the draft satisfies the completion rule for one
// step. Pure function of the draft, no side effects.
func IsStepValid(d *entities.EventDraft, step int) bool {
	switch step {
	case StepEventType:
		return strings.TrimSpace(d.SelectedEventType) != ""
	case StepEventInfo:
		return eventInfoValid(d.EventInfo)
	case StepAlcoholicDrinks:
		return len(d.AlcoholicDrinkIDs) > 0
	case StepNonAlcoholicDrinks:
		return len(d.NonAlcoholicDrinkIDs) > 0
	case StepOtherBeverages:
		return anyPositive(d.OtherBeverageQuantities)
	case StepShots:
		return anyPositive(d.ShotQuantities)
	case StepStructure:
		return d.StructureID != ""
	case StepStaff:
		return anyPositive(d.StaffQuantities)
	case StepSummary:
		return true
	}
	return false
}

// AllPreviousStepsValid gates jump navigation: reaching step target requires
// every step before it to be valid. Vacuously true for target 0.
func AllPreviousStepsValid(d *entities.EventDraft, target int) bool {
	for step := 0; step < target; step++ {
		if !IsStepValid(d, step) {
			return false
		}
	}
	return true
}

// FirstInvalidStep returns the lowest invalid step before target, or -1 when
// all of them pass. Used to tell the user which step blocks a jump.
func FirstInvalidStep(d *entities.EventDraft, target int) int {
	for step := 0; step < target; step++ {
		if !IsStepValid(d, step) {
			return step
		}
	}
	return -1
}

func eventInfoValid(info entities.EventInfo) bool {
	if strings.TrimSpace(info.Name) == "" {
		return false
	}
	if !dateRe.MatchString(info.Date) {
		return false
	}
	if !timeRe.MatchString(info.StartTime) {
		return false
	}
	if strings.TrimSpace(info.GuestCount) == "" {
		return false
	}
	// A zero duration ("00:00") is treated as not filled in.
	minutes, err := parseHHMM(info.Duration)
	if err != nil || minutes == 0 {
		return false
	}
	return strings.TrimSpace(info.Address) != ""
}

func anyPositive(quantities map[string]int) bool {
	for _, q := range quantities {
		if q > 0 {
			return true
		}
	}
	return false
}

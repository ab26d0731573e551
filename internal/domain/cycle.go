package domain

import (
	"cloud.google.com/go/civil"
)

// PhaseName is the label of a menstrual-cycle phase.
// @Description Name of the cycle phase the target date falls into.
type PhaseName string

const (
	PhaseMenstruation  PhaseName = "Menstruation"
	PhaseFollicular    PhaseName = "Follicular Phase"
	PhaseFertileWindow PhaseName = "Fertile Window"
	PhaseLuteal        PhaseName = "Luteal Phase"
)

// CycleInput is the validated input of the phase calculator.
// Both lengths are in days and are positive.
type CycleInput struct {
	LastPeriodStartDate   civil.Date
	AverageCycleLength    int
	AveragePeriodDuration int
}

// PhaseInfo is the classified phase for a target date.
// @Description Phase the target date falls into, with the phase boundaries.
type PhaseInfo struct {
	// Phase name
	PhaseName PhaseName `json:"phase_name" example:"Fertile Window" enums:"Menstruation,Follicular Phase,Fertile Window,Luteal Phase"`
	// First day of the phase (YYYY-MM-DD)
	PhaseStartDate civil.Date `json:"phase_start_date" swaggertype:"string" format:"date" example:"2025-06-09"`
	// Last day of the phase (YYYY-MM-DD)
	PhaseEndDate civil.Date `json:"phase_end_date" swaggertype:"string" format:"date" example:"2025-06-14"`
	// User-facing description of the phase
	Message string `json:"message" example:"You are at your most fertile. Ovulation is likely occurring now."`
}

// Interval is an inclusive range of calendar dates. Start may be after End
// when the cycle parameters are too short to fit the phase.
// @Description Inclusive calendar date range.
type Interval struct {
	StartDate civil.Date `json:"start_date" swaggertype:"string" format:"date" example:"2025-06-01"`
	EndDate   civil.Date `json:"end_date" swaggertype:"string" format:"date" example:"2025-06-05"`
}

// Contains reports whether d lies within [StartDate, EndDate].
func (i Interval) Contains(d civil.Date) bool {
	return !d.Before(i.StartDate) && !d.After(i.EndDate)
}

// Days returns the number of days in the interval, or zero if it is inverted.
func (i Interval) Days() int {
	n := i.EndDate.DaysSince(i.StartDate) + 1
	if n < 0 {
		return 0
	}
	return n
}

// CycleForecast lists every derived interval of the current cycle.
// @Description Derived phase boundaries for the cycle starting at last_period_start_date.
type CycleForecast struct {
	Menstruation    Interval `json:"menstruation"`
	FollicularPhase Interval `json:"follicular_phase"`
	FertileWindow   Interval `json:"fertile_window"`
	LutealPhase     Interval `json:"luteal_phase"`
	// Estimated ovulation day
	OvulationDate civil.Date `json:"ovulation_date" swaggertype:"string" format:"date" example:"2025-06-14"`
	// Expected first day of the next period
	NextPeriodStartDate civil.Date `json:"next_period_start_date" swaggertype:"string" format:"date" example:"2025-06-29"`
}

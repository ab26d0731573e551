package domain

import (
	"strconv"

	"cloud.google.com/go/civil"
)

// MaxCycleDays caps both day counts, so every derived date lies within
// MaxCycleDays of the period start.
const MaxCycleDays = 366

var (
	minDate = civil.Date{Year: 1, Month: 1, Day: 1}
	maxDate = civil.Date{Year: 9999, Month: 12, Day: 31}
)

// CycleInputRequest is the request body carrying the user's cycle data.
// @Description Cycle data used to derive phase boundaries.
type CycleInputRequest struct {
	// First day of the last period (YYYY-MM-DD)
	LastPeriodStartDate string `json:"last_period_start_date" validate:"required,calendar_date" example:"2025-06-01" format:"date"`
	// Average cycle length in days
	AverageCycleLength int `json:"average_cycle_length" validate:"gt=0,max=366" example:"28" minimum:"1" maximum:"366"`
	// Average period duration in days
	AveragePeriodDuration int `json:"average_period_duration" validate:"gt=0,max=366" example:"5" minimum:"1" maximum:"366"`
}

// ToCycleInput converts the request into a CycleInput. Callers validate the
// request first; a date that still fails to parse yields an *InvalidFieldError.
func (r CycleInputRequest) ToCycleInput() (CycleInput, error) {
	start, err := civil.ParseDate(r.LastPeriodStartDate)
	if err != nil {
		return CycleInput{}, &InvalidFieldError{Field: "last_period_start_date", Reason: "must be a calendar date in YYYY-MM-DD format"}
	}
	if err := checkDays("average_cycle_length", r.AverageCycleLength); err != nil {
		return CycleInput{}, err
	}
	if err := checkDays("average_period_duration", r.AveragePeriodDuration); err != nil {
		return CycleInput{}, err
	}
	// Derived dates must stay in the four-digit years of the wire format.
	earliest, latest := minDate.AddDays(MaxCycleDays), maxDate.AddDays(-MaxCycleDays)
	if start.Before(earliest) || start.After(latest) {
		return CycleInput{}, &InvalidFieldError{
			Field:  "last_period_start_date",
			Reason: "must be between " + earliest.String() + " and " + latest.String(),
		}
	}
	return CycleInput{
		LastPeriodStartDate:   start,
		AverageCycleLength:    r.AverageCycleLength,
		AveragePeriodDuration: r.AveragePeriodDuration,
	}, nil
}

func checkDays(field string, days int) error {
	if days <= 0 {
		return &InvalidFieldError{Field: field, Reason: "must be greater than 0"}
	}
	if days > MaxCycleDays {
		return &InvalidFieldError{Field: field, Reason: "must be at most " + strconv.Itoa(MaxCycleDays)}
	}
	return nil
}

// CalculatePhaseRequest is the request body for phase classification.
// @Description Cycle data plus an optional date to classify (defaults to today).
type CalculatePhaseRequest struct {
	CycleInputRequest
	// Date to classify (YYYY-MM-DD); today when omitted
	TargetDate *string `json:"target_date,omitempty" validate:"omitempty,calendar_date" example:"2025-06-14" format:"date"`
}

// Target returns the parsed target date, or nil when the request leaves it to
// the server's current date.
func (r CalculatePhaseRequest) Target() (*civil.Date, error) {
	if r.TargetDate == nil {
		return nil, nil
	}
	d, err := civil.ParseDate(*r.TargetDate)
	if err != nil {
		return nil, &InvalidFieldError{Field: "target_date", Reason: "must be a calendar date in YYYY-MM-DD format"}
	}
	return &d, nil
}

// Package phase derives menstrual-cycle phase boundaries from a period start
// date and average lengths, and classifies calendar dates against them.
//
// All functions are pure: they hold no state and read no clock. Callers pass
// the date to classify explicitly.
package phase

import (
	"cloud.google.com/go/civil"

	"github.com/blaisecz/cycle-phase/internal/domain"
)

const (
	// LutealPhaseDays is the assumed length of the luteal phase. Ovulation is
	// estimated one day before the luteal phase would start counting back from
	// the next period.
	LutealPhaseDays = 14

	// FertileWindowLeadDays is how many days before ovulation the fertile
	// window opens.
	FertileWindowLeadDays = 5
)

const (
	MessageMenstruation  = "This is the start of your cycle, characterized by bleeding."
	MessageFollicular    = "Your body is preparing for ovulation. Estrogen levels are rising."
	MessageFertileWindow = "You are at your most fertile. Ovulation is likely occurring now."
	MessageLuteal        = "Your body is preparing for the next period. Progesterone levels are high."

	// MessageOutOfDate accompanies the fallback result returned when the
	// target date lies outside every derived interval.
	MessageOutOfDate = "Cycle data may be out of date."
)

// Forecast derives the phase intervals of the cycle that starts on
// input.LastPeriodStartDate.
//
// The arithmetic is deliberately unguarded: when AverageCycleLength is
// shorter than LutealPhaseDays+1 the ovulation date precedes the period start
// and the follicular interval comes out inverted.
func Forecast(input domain.CycleInput) domain.CycleForecast {
	start := input.LastPeriodStartDate

	periodEnd := start.AddDays(input.AveragePeriodDuration - 1)
	ovulation := start.AddDays(input.AverageCycleLength - LutealPhaseDays - 1)
	fertileStart := ovulation.AddDays(-FertileWindowLeadDays)
	nextPeriod := start.AddDays(input.AverageCycleLength)

	return domain.CycleForecast{
		Menstruation: domain.Interval{
			StartDate: start,
			EndDate:   periodEnd,
		},
		FollicularPhase: domain.Interval{
			StartDate: periodEnd.AddDays(1),
			EndDate:   fertileStart.AddDays(-1),
		},
		FertileWindow: domain.Interval{
			StartDate: fertileStart,
			EndDate:   ovulation,
		},
		LutealPhase: domain.Interval{
			StartDate: ovulation.AddDays(1),
			EndDate:   nextPeriod.AddDays(-1),
		},
		OvulationDate:       ovulation,
		NextPeriodStartDate: nextPeriod,
	}
}

// Classify returns the phase that target falls into.
//
// Phases are tested in cycle order and the first match wins, so when
// intervals overlap for extreme inputs Menstruation takes precedence over the
// later phases. A target outside every interval yields the luteal interval
// with MessageOutOfDate; Classify never fails.
func Classify(input domain.CycleInput, target civil.Date) domain.PhaseInfo {
	f := Forecast(input)
	for _, r := range rules(f) {
		if r.matches(target) {
			return r.result()
		}
	}
	return fallback(f)
}

// rule pairs a membership test with the result it produces.
type rule struct {
	phase   domain.PhaseName
	matches func(target civil.Date) bool
	result  func() domain.PhaseInfo
}

// rules lists the classification rules in evaluation order.
func rules(f domain.CycleForecast) []rule {
	return []rule{
		{
			phase:   domain.PhaseMenstruation,
			matches: f.Menstruation.Contains,
			result:  info(domain.PhaseMenstruation, f.Menstruation, MessageMenstruation),
		},
		{
			phase: domain.PhaseFollicular,
			// End is exclusive against the fertile window start.
			matches: func(target civil.Date) bool {
				return !target.Before(f.FollicularPhase.StartDate) && target.Before(f.FertileWindow.StartDate)
			},
			result: info(domain.PhaseFollicular, f.FollicularPhase, MessageFollicular),
		},
		{
			phase:   domain.PhaseFertileWindow,
			matches: f.FertileWindow.Contains,
			result:  info(domain.PhaseFertileWindow, f.FertileWindow, MessageFertileWindow),
		},
		{
			phase:   domain.PhaseLuteal,
			matches: f.LutealPhase.Contains,
			result:  info(domain.PhaseLuteal, f.LutealPhase, MessageLuteal),
		},
	}
}

func fallback(f domain.CycleForecast) domain.PhaseInfo {
	return info(domain.PhaseLuteal, f.LutealPhase, MessageOutOfDate)()
}

func info(name domain.PhaseName, interval domain.Interval, message string) func() domain.PhaseInfo {
	return func() domain.PhaseInfo {
		return domain.PhaseInfo{
			PhaseName:      name,
			PhaseStartDate: interval.StartDate,
			PhaseEndDate:   interval.EndDate,
			Message:        message,
		}
	}
}

// IsFallback reports whether info is the out-of-range result of Classify.
func IsFallback(info domain.PhaseInfo) bool {
	return info.Message == MessageOutOfDate
}

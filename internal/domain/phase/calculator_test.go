package phase

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/cycle-phase/internal/domain"
)

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func regularInput(t *testing.T) domain.CycleInput {
	return domain.CycleInput{
		LastPeriodStartDate:   mustDate(t, "2025-06-01"),
		AverageCycleLength:    28,
		AveragePeriodDuration: 5,
	}
}

func TestForecast_RegularCycle(t *testing.T) {
	t.Parallel()

	f := Forecast(regularInput(t))

	assert.Equal(t, "2025-06-01", f.Menstruation.StartDate.String())
	assert.Equal(t, "2025-06-05", f.Menstruation.EndDate.String())
	assert.Equal(t, "2025-06-06", f.FollicularPhase.StartDate.String())
	assert.Equal(t, "2025-06-08", f.FollicularPhase.EndDate.String())
	assert.Equal(t, "2025-06-09", f.FertileWindow.StartDate.String())
	assert.Equal(t, "2025-06-14", f.FertileWindow.EndDate.String())
	assert.Equal(t, "2025-06-15", f.LutealPhase.StartDate.String())
	assert.Equal(t, "2025-06-28", f.LutealPhase.EndDate.String())
	assert.Equal(t, "2025-06-14", f.OvulationDate.String())
	assert.Equal(t, "2025-06-29", f.NextPeriodStartDate.String())
}

func TestClassify_Scenarios(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		target    string
		wantPhase domain.PhaseName
		wantStart string
		wantEnd   string
		wantMsg   string
	}{
		{
			name:      "first day of period",
			target:    "2025-06-01",
			wantPhase: domain.PhaseMenstruation,
			wantStart: "2025-06-01",
			wantEnd:   "2025-06-05",
			wantMsg:   MessageMenstruation,
		},
		{
			name:      "last day of period",
			target:    "2025-06-05",
			wantPhase: domain.PhaseMenstruation,
			wantStart: "2025-06-01",
			wantEnd:   "2025-06-05",
			wantMsg:   MessageMenstruation,
		},
		{
			name:      "day after period ends",
			target:    "2025-06-06",
			wantPhase: domain.PhaseFollicular,
			wantStart: "2025-06-06",
			wantEnd:   "2025-06-08",
			wantMsg:   MessageFollicular,
		},
		{
			name:      "day before fertile window",
			target:    "2025-06-08",
			wantPhase: domain.PhaseFollicular,
			wantStart: "2025-06-06",
			wantEnd:   "2025-06-08",
			wantMsg:   MessageFollicular,
		},
		{
			name:      "fertile window opens",
			target:    "2025-06-09",
			wantPhase: domain.PhaseFertileWindow,
			wantStart: "2025-06-09",
			wantEnd:   "2025-06-14",
			wantMsg:   MessageFertileWindow,
		},
		{
			name:      "ovulation day",
			target:    "2025-06-14",
			wantPhase: domain.PhaseFertileWindow,
			wantStart: "2025-06-09",
			wantEnd:   "2025-06-14",
			wantMsg:   MessageFertileWindow,
		},
		{
			name:      "mid luteal phase",
			target:    "2025-06-20",
			wantPhase: domain.PhaseLuteal,
			wantStart: "2025-06-15",
			wantEnd:   "2025-06-28",
			wantMsg:   MessageLuteal,
		},
		{
			name:      "last day of cycle",
			target:    "2025-06-28",
			wantPhase: domain.PhaseLuteal,
			wantStart: "2025-06-15",
			wantEnd:   "2025-06-28",
			wantMsg:   MessageLuteal,
		},
		{
			name:      "next period start falls back",
			target:    "2025-06-29",
			wantPhase: domain.PhaseLuteal,
			wantStart: "2025-06-15",
			wantEnd:   "2025-06-28",
			wantMsg:   MessageOutOfDate,
		},
		{
			name:      "far outside cycle falls back",
			target:    "2025-07-15",
			wantPhase: domain.PhaseLuteal,
			wantStart: "2025-06-15",
			wantEnd:   "2025-06-28",
			wantMsg:   MessageOutOfDate,
		},
		{
			name:      "before period start falls back",
			target:    "2025-05-31",
			wantPhase: domain.PhaseLuteal,
			wantStart: "2025-06-15",
			wantEnd:   "2025-06-28",
			wantMsg:   MessageOutOfDate,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(regularInput(t), mustDate(t, tc.target))

			assert.Equal(t, tc.wantPhase, got.PhaseName)
			assert.Equal(t, tc.wantStart, got.PhaseStartDate.String())
			assert.Equal(t, tc.wantEnd, got.PhaseEndDate.String())
			assert.Equal(t, tc.wantMsg, got.Message)
		})
	}
}

func TestClassify_ShortCycleKeepsUnguardedArithmetic(t *testing.T) {
	t.Parallel()

	input := domain.CycleInput{
		LastPeriodStartDate:   mustDate(t, "2025-06-01"),
		AverageCycleLength:    10,
		AveragePeriodDuration: 5,
	}

	f := Forecast(input)
	assert.Equal(t, "2025-05-27", f.OvulationDate.String(), "ovulation precedes the period start")
	assert.Equal(t, "2025-05-22", f.FertileWindow.StartDate.String())
	assert.True(t, f.FollicularPhase.StartDate.After(f.FollicularPhase.EndDate), "follicular interval is inverted")
	assert.Zero(t, f.FollicularPhase.Days())

	// Menstruation overlaps the luteal interval and wins on order.
	got := Classify(input, mustDate(t, "2025-06-01"))
	assert.Equal(t, domain.PhaseMenstruation, got.PhaseName)

	got = Classify(input, mustDate(t, "2025-06-07"))
	assert.Equal(t, domain.PhaseLuteal, got.PhaseName)
	assert.Equal(t, MessageLuteal, got.Message)
	assert.Equal(t, "2025-05-28", got.PhaseStartDate.String())
	assert.Equal(t, "2025-06-10", got.PhaseEndDate.String())

	// Fertile window before the cycle began is still reported as such.
	got = Classify(input, mustDate(t, "2025-05-25"))
	assert.Equal(t, domain.PhaseFertileWindow, got.PhaseName)
	assert.Equal(t, "2025-05-22", got.PhaseStartDate.String())
	assert.Equal(t, "2025-05-27", got.PhaseEndDate.String())
}

func TestClassify_LongPeriodOverlapsFertileWindow(t *testing.T) {
	t.Parallel()

	// Period covers days 1-12 while the fertile window opens on day 9.
	input := domain.CycleInput{
		LastPeriodStartDate:   mustDate(t, "2025-06-01"),
		AverageCycleLength:    28,
		AveragePeriodDuration: 12,
	}

	got := Classify(input, mustDate(t, "2025-06-10"))
	assert.Equal(t, domain.PhaseMenstruation, got.PhaseName)
	assert.Equal(t, "2025-06-12", got.PhaseEndDate.String())

	got = Classify(input, mustDate(t, "2025-06-13"))
	assert.Equal(t, domain.PhaseFertileWindow, got.PhaseName)
}

func TestClassify_StartNeverAfterEnd(t *testing.T) {
	t.Parallel()

	start := mustDate(t, "2024-02-20")
	for cycle := 1; cycle <= 60; cycle++ {
		for period := 1; period <= 15; period++ {
			input := domain.CycleInput{
				LastPeriodStartDate:   start,
				AverageCycleLength:    cycle,
				AveragePeriodDuration: period,
			}
			for offset := -40; offset <= 90; offset++ {
				got := Classify(input, start.AddDays(offset))
				require.Falsef(t, got.PhaseStartDate.After(got.PhaseEndDate),
					"cycle=%d period=%d offset=%d: start %s after end %s",
					cycle, period, offset, got.PhaseStartDate, got.PhaseEndDate)
				require.Contains(t, []domain.PhaseName{
					domain.PhaseMenstruation,
					domain.PhaseFollicular,
					domain.PhaseFertileWindow,
					domain.PhaseLuteal,
				}, got.PhaseName)
			}
		}
	}
}

func TestClassify_PartitionsRegularCycles(t *testing.T) {
	t.Parallel()

	start := mustDate(t, "2025-01-30")
	for period := 1; period <= 10; period++ {
		// The follicular phase is non-empty once the cycle leaves room after
		// the period for the fertile and luteal phases.
		for cycle := period + LutealPhaseDays + FertileWindowLeadDays + 2; cycle <= 45; cycle++ {
			input := domain.CycleInput{
				LastPeriodStartDate:   start,
				AverageCycleLength:    cycle,
				AveragePeriodDuration: period,
			}
			f := Forecast(input)
			intervals := []domain.Interval{f.Menstruation, f.FollicularPhase, f.FertileWindow, f.LutealPhase}

			total := 0
			for _, in := range intervals {
				total += in.Days()
			}
			require.Equalf(t, cycle, total, "cycle=%d period=%d", cycle, period)

			for offset := 0; offset < cycle; offset++ {
				day := start.AddDays(offset)
				matches := 0
				for _, in := range intervals {
					if in.Contains(day) {
						matches++
					}
				}
				require.Equalf(t, 1, matches, "cycle=%d period=%d day=%s", cycle, period, day)
				require.Falsef(t, IsFallback(Classify(input, day)), "cycle=%d period=%d day=%s", cycle, period, day)
			}

			assert.True(t, IsFallback(Classify(input, f.NextPeriodStartDate)))
			assert.True(t, IsFallback(Classify(input, start.AddDays(-1))))
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	t.Parallel()

	input := regularInput(t)
	target := mustDate(t, "2025-06-11")

	first := Classify(input, target)
	second := Classify(input, target)
	assert.Equal(t, first, second)
}

func TestClassify_BoundaryAfterMenstruation(t *testing.T) {
	t.Parallel()

	input := domain.CycleInput{
		LastPeriodStartDate:   mustDate(t, "2025-03-10"),
		AverageCycleLength:    32,
		AveragePeriodDuration: 6,
	}

	assert.Equal(t, domain.PhaseMenstruation, Classify(input, input.LastPeriodStartDate).PhaseName)
	got := Classify(input, input.LastPeriodStartDate.AddDays(input.AveragePeriodDuration))
	assert.Equal(t, domain.PhaseFollicular, got.PhaseName)
}

func TestRules_Order(t *testing.T) {
	t.Parallel()

	got := rules(Forecast(regularInput(t)))
	require.Len(t, got, 4)

	want := []domain.PhaseName{
		domain.PhaseMenstruation,
		domain.PhaseFollicular,
		domain.PhaseFertileWindow,
		domain.PhaseLuteal,
	}
	for i, r := range got {
		assert.Equal(t, want[i], r.phase)
		assert.Equal(t, want[i], r.result().PhaseName)
	}
}

package service

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"github.com/blaisecz/cycle-phase/internal/domain"
	"github.com/blaisecz/cycle-phase/internal/domain/phase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Clock returns the current time. The service reads it on every call.
type Clock func() time.Time

// PhaseService classifies cycle phases for API requests.
type PhaseService interface {
	// Calculate classifies target, or today when target is nil.
	Calculate(ctx context.Context, input domain.CycleInput, target *civil.Date) domain.PhaseInfo
	// Forecast returns every derived interval of the input cycle.
	Forecast(ctx context.Context, input domain.CycleInput) domain.CycleForecast
}

type phaseService struct {
	now    Clock
	logger *slog.Logger
	tracer trace.Tracer
}

// NewPhaseService creates a new PhaseService. A nil clock uses time.Now and a
// nil logger uses slog.Default.
func NewPhaseService(now Clock, logger *slog.Logger) PhaseService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &phaseService{
		now:    now,
		logger: logger,
		tracer: otel.Tracer("cycle-phase-api/service"),
	}
}

func (s *phaseService) Calculate(ctx context.Context, input domain.CycleInput, target *civil.Date) domain.PhaseInfo {
	ctx, span := s.tracer.Start(ctx, "phase.calculate", trace.WithAttributes(cycleAttributes(input)...))
	defer span.End()

	day := s.today()
	if target != nil {
		day = *target
	}

	info := phase.Classify(input, day)

	span.SetAttributes(
		attribute.String("phase.target_date", day.String()),
		attribute.String("phase.name", string(info.PhaseName)),
		attribute.Bool("phase.fallback", phase.IsFallback(info)),
	)

	if phase.IsFallback(info) {
		s.logger.WarnContext(ctx, "target date outside current cycle",
			"last_period_start_date", input.LastPeriodStartDate.String(),
			"target_date", day.String(),
			"average_cycle_length", input.AverageCycleLength)
	}

	return info
}

func (s *phaseService) Forecast(ctx context.Context, input domain.CycleInput) domain.CycleForecast {
	_, span := s.tracer.Start(ctx, "phase.forecast", trace.WithAttributes(cycleAttributes(input)...))
	defer span.End()

	f := phase.Forecast(input)
	span.SetAttributes(attribute.String("phase.next_period_start_date", f.NextPeriodStartDate.String()))
	return f
}

// today is the calendar date of the clock reading in its own location.
func (s *phaseService) today() civil.Date {
	return civil.DateOf(s.now())
}

func cycleAttributes(input domain.CycleInput) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("cycle.average_length", input.AverageCycleLength),
		attribute.Int("cycle.average_period_duration", input.AveragePeriodDuration),
	}
}

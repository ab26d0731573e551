package handler

import (
	"context"

	"cloud.google.com/go/civil"
	"github.com/blaisecz/cycle-phase/internal/domain"
	"github.com/blaisecz/cycle-phase/internal/domain/phase"
)

// MockPhaseService is a mock implementation of PhaseService
type MockPhaseService struct {
	calculateFunc func(ctx context.Context, input domain.CycleInput, target *civil.Date) domain.PhaseInfo
	forecastFunc  func(ctx context.Context, input domain.CycleInput) domain.CycleForecast

	calls int
}

func (m *MockPhaseService) Calculate(ctx context.Context, input domain.CycleInput, target *civil.Date) domain.PhaseInfo {
	m.calls++
	if m.calculateFunc != nil {
		return m.calculateFunc(ctx, input, target)
	}
	day := input.LastPeriodStartDate
	if target != nil {
		day = *target
	}
	return phase.Classify(input, day)
}

func (m *MockPhaseService) Forecast(ctx context.Context, input domain.CycleInput) domain.CycleForecast {
	m.calls++
	if m.forecastFunc != nil {
		return m.forecastFunc(ctx, input)
	}
	return phase.Forecast(input)
}

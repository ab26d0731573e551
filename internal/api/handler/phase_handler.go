package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/blaisecz/cycle-phase/internal/api/validation"
	"github.com/blaisecz/cycle-phase/internal/domain"
	"github.com/blaisecz/cycle-phase/internal/service"
	"github.com/blaisecz/cycle-phase/pkg/problem"
)

// maxBodyBytes bounds request bodies; the payloads are a few dozen bytes.
const maxBodyBytes = 1 << 16

type PhaseHandler struct {
	service service.PhaseService
}

func NewPhaseHandler(service service.PhaseService) *PhaseHandler {
	return &PhaseHandler{service: service}
}

// Calculate handles POST /v1/calculate-phase
// @Summary Calculate cycle phase
// @Description Classify a date (today by default) into Menstruation, Follicular Phase, Fertile Window or Luteal Phase. Dates outside the current cycle return the luteal phase with an out-of-date message.
// @Tags cycle-calculator
// @Accept json
// @Produce json
// @Param request body domain.CalculatePhaseRequest true "Cycle data"
// @Success 200 {object} domain.PhaseInfo "Phase containing the target date"
// @Failure 400 {object} problem.Problem "Malformed JSON body"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /calculate-phase [post]
func (h *PhaseHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req domain.CalculatePhaseRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	input, err := req.ToCycleInput()
	if err != nil {
		writeInputError(w, r, err)
		return
	}
	target, err := req.Target()
	if err != nil {
		writeInputError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Calculate(r.Context(), input, target))
}

// Forecast handles POST /v1/cycle-forecast
// @Summary Forecast cycle phases
// @Description Return every derived phase interval of the cycle starting at last_period_start_date, plus the estimated ovulation date and next period start.
// @Tags cycle-calculator
// @Accept json
// @Produce json
// @Param request body domain.CycleInputRequest true "Cycle data"
// @Success 200 {object} domain.CycleForecast "Derived phase intervals"
// @Failure 400 {object} problem.Problem "Malformed JSON body"
// @Failure 422 {object} problem.Problem "Invalid field values"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /cycle-forecast [post]
func (h *PhaseHandler) Forecast(w http.ResponseWriter, r *http.Request) {
	var req domain.CycleInputRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	input, err := req.ToCycleInput()
	if err != nil {
		writeInputError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.service.Forecast(r.Context(), input))
}

// decodeAndValidate reads the JSON body into dst and runs struct validation,
// writing the problem response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		problem.BadRequest("Invalid JSON body").WithInstance(r.URL.Path).Write(w)
		return false
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		problem.BadRequest("Request body must contain a single JSON object").WithInstance(r.URL.Path).Write(w)
		return false
	}

	if fieldErrors := validation.Validate(dst); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r.URL.Path).Write(w)
		return false
	}
	return true
}

// writeInputError reports a conversion failure from the request DTOs, which
// are always *domain.InvalidFieldError.
func writeInputError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrors []problem.FieldError
	var fieldErr *domain.InvalidFieldError
	if errors.As(err, &fieldErr) {
		fieldErrors = []problem.FieldError{{Field: fieldErr.Field, Message: fieldErr.Reason}}
	}
	problem.ValidationError("Request body contains invalid fields", fieldErrors).WithInstance(r.URL.Path).Write(w)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

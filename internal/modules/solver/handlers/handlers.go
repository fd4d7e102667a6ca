// Package handlers provides HTTP handlers for the puzzle solver.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/aristath/deptnumbers/internal/combinations"
	"github.com/aristath/deptnumbers/internal/modules/solver"
)

// ContentTypeMsgpack selects MessagePack responses when present in Accept.
const ContentTypeMsgpack = "application/msgpack"

// noValidNumbersMessage is shown to the user when the input holds nothing usable.
const noValidNumbersMessage = "Please enter valid numbers between 1-7"

// Handler handles solver HTTP requests
type Handler struct {
	service *solver.Service
	log     zerolog.Logger
}

// NewHandler creates a new solver handler
func NewHandler(service *solver.Service, log zerolog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With().Str("handler", "solver").Logger(),
	}
}

// CodeResponse is returned by GET /api/solver/code
type CodeResponse struct {
	Strategy combinations.Strategy `json:"strategy" msgpack:"strategy"`
	Code     string                `json:"code" msgpack:"code"`
}

// StrategiesResponse is returned by GET /api/solver/strategies
type StrategiesResponse struct {
	Default    combinations.Strategy   `json:"default" msgpack:"default"`
	Strategies []combinations.Strategy `json:"strategies" msgpack:"strategies"`
}

// HandleSolve handles POST /api/solver/solve
func (h *Handler) HandleSolve(w http.ResponseWriter, r *http.Request) {
	var request solver.Request
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.solve(w, r, request)
}

// HandleSolveQuery handles GET /api/solver/solve?numbers=1,2,3&target=6
func (h *Handler) HandleSolveQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	target := solver.DefaultTarget
	if raw := strings.TrimSpace(query.Get("target")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, "Invalid target: "+err.Error())
			return
		}
		target = parsed
	}

	h.solve(w, r, solver.Request{
		Numbers:  query.Get("numbers"),
		Target:   target,
		Strategy: query.Get("strategy"),
	})
}

func (h *Handler) solve(w http.ResponseWriter, r *http.Request, request solver.Request) {
	result, err := h.service.Solve(r.Context(), request)
	switch {
	case errors.Is(err, solver.ErrNoValidNumbers):
		h.writeError(w, r, http.StatusBadRequest, noValidNumbersMessage)
		return
	case errors.Is(err, combinations.ErrUnknownStrategy):
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		h.log.Error().Err(err).Msg("Failed to solve puzzle")
		h.writeError(w, r, http.StatusInternalServerError, "Failed to solve puzzle")
		return
	}

	h.log.Info().
		Str("id", result.ID).
		Int("target", result.Target).
		Int("combinations", result.Stats.Total).
		Msg("Solve request completed")

	h.writeResponse(w, r, http.StatusOK, result)
}

// HandleRandom handles GET /api/solver/random?strategy=indexed
func (h *Handler) HandleRandom(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Random(r.Context(), r.URL.Query().Get("strategy"))
	if errors.Is(err, combinations.ErrUnknownStrategy) {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to solve random puzzle")
		h.writeError(w, r, http.StatusInternalServerError, "Failed to solve random puzzle")
		return
	}

	h.writeResponse(w, r, http.StatusOK, result)
}

// HandleCode handles GET /api/solver/code
func (h *Handler) HandleCode(w http.ResponseWriter, r *http.Request) {
	strategy := h.service.Strategy()
	if name := r.URL.Query().Get("strategy"); name != "" {
		parsed, err := combinations.ParseStrategy(name)
		if err != nil {
			h.writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		strategy = parsed
	}

	h.writeResponse(w, r, http.StatusOK, CodeResponse{
		Strategy: strategy,
		Code:     solver.CodeSnippet(strategy),
	})
}

// HandleStrategies handles GET /api/solver/strategies
func (h *Handler) HandleStrategies(w http.ResponseWriter, r *http.Request) {
	h.writeResponse(w, r, http.StatusOK, StrategiesResponse{
		Default:    h.service.Strategy(),
		Strategies: combinations.Strategies(),
	})
}

// Helper methods

func wantsMsgpack(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), ContentTypeMsgpack)
}

// writeResponse writes data as MessagePack or JSON depending on Accept
func (h *Handler) writeResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if !wantsMsgpack(r) {
		h.writeJSON(w, status, data)
		return
	}

	body, err := msgpack.Marshal(data)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to encode MessagePack response")
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to encode response"})
		return
	}

	w.Header().Set("Content-Type", ContentTypeMsgpack)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.log.Error().Err(err).Msg("Failed to write MessagePack response")
	}
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.writeResponse(w, r, status, map[string]string{
		"error": message,
	})
}

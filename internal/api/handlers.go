package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/yegors/takeoff/internal/config"
	"github.com/yegors/takeoff/internal/takeoff"
	"github.com/yegors/takeoff/pkg/logger"
)

// maxRequestBytes bounds the body of a take-off request.
const maxRequestBytes = 64 << 10

// Handler serves take-off calculations over HTTP
type Handler struct {
	config *config.Config
	logger *logger.Logger
}

// NewHandler creates a new API handler
func NewHandler(config *config.Config, logger *logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: logger.Named("api-handler"),
	}
}

// TakeOffRequest is the body of POST /api/v1/takeoff
type TakeOffRequest struct {
	ObstacleHeight *float64              `json:"obstacle_height_ft"`
	Configuration  takeoff.Configuration `json:"configuration"`
}

// SweepResponse lists the evaluations of one aircraft profile
type SweepResponse struct {
	Aircraft string              `json:"aircraft"`
	Results  []takeoff.Breakdown `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// GetHealth returns the service health
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetAllAircraft returns the configured aircraft profiles
func (h *Handler) GetAllAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft := h.config.Aircraft
	if aircraft == nil {
		aircraft = []config.AircraftConfig{}
	}
	writeJSON(w, http.StatusOK, aircraft)
}

// GetAircraftTakeOff evaluates a configured profile. The optional obstacle
// query parameter takes a comma-separated list of heights in feet; without it
// the profile's own heights are used.
func (h *Handler) GetAircraftTakeOff(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	aircraft, ok := h.config.FindAircraft(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown aircraft: "+name)
		return
	}

	heights := aircraft.ObstacleHeights
	if raw := r.URL.Query().Get("obstacle"); raw != "" {
		parsed, err := parseHeights(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		heights = parsed
	}
	if len(heights) == 0 {
		writeError(w, http.StatusBadRequest, "no obstacle height given and none configured for "+name)
		return
	}

	results, err := takeoff.Sweep(heights, aircraft.Performance)
	if err != nil {
		h.writeCalculationError(w, err, logger.String("aircraft", name))
		return
	}

	writeJSON(w, http.StatusOK, SweepResponse{Aircraft: name, Results: results})
}

// ComputeTakeOff evaluates an ad-hoc configuration given in the request body
func (h *Handler) ComputeTakeOff(w http.ResponseWriter, r *http.Request) {
	var req TakeOffRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.ObstacleHeight == nil {
		writeError(w, http.StatusBadRequest, "obstacle_height_ft is required")
		return
	}

	result, err := takeoff.Evaluate(*req.ObstacleHeight, req.Configuration)
	if err != nil {
		h.writeCalculationError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) writeCalculationError(w http.ResponseWriter, err error, fields ...logger.Field) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, takeoff.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, takeoff.ErrDomain):
		status = http.StatusUnprocessableEntity
	default:
		h.logger.Error("Take-off calculation failed", append(fields, logger.Error(err))...)
	}
	writeError(w, status, err.Error())
}

func parseHeights(raw string) ([]float64, error) {
	parts := strings.Split(raw, ",")
	heights := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errors.New("invalid obstacle height: " + p)
		}
		heights = append(heights, v)
	}
	return heights, nil
}

// writeJSON encodes v before touching the response so an unencodable value
// becomes a 500 instead of an empty success.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		buf.Reset()
		status = http.StatusInternalServerError
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: "failed to encode response: " + err.Error()})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

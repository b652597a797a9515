package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vanshika/campusdraw/internal/domain"
	"github.com/vanshika/campusdraw/internal/lines"
	"github.com/vanshika/campusdraw/internal/pathclient"
	"github.com/vanshika/campusdraw/internal/repository"
	"github.com/vanshika/campusdraw/internal/service"
)

const maxRequestBytes = 1 << 20

// APIHandlers exposes the JSON endpoints.
type APIHandlers struct {
	logger *slog.Logger
	source service.PathSource
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, source service.PathSource) *APIHandlers {
	return &APIHandlers{
		logger: logger,
		source: source,
	}
}

type parseLinesRequest struct {
	Input string `json:"input"`
}

type parseLinesResponse struct {
	// Input is the accepted text in normalized form. It echoes the request
	// unchanged when validation fails.
	Input    string           `json:"input"`
	Segments []domain.Segment `json:"segments"`
	Alerts   []string         `json:"alerts"`
}

func (h *APIHandlers) handleParseLines(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req parseLinesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	segments, err := lines.Validate(req.Input)
	if err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, parseLinesResponse{
			Input:    req.Input,
			Segments: []domain.Segment{},
			Alerts:   []string{err.Error()},
		})
		return
	}
	respondJSON(w, http.StatusOK, parseLinesResponse{
		Input:    lines.Format(segments),
		Segments: segments,
		Alerts:   []string{},
	})
}

func (h *APIHandlers) handleBuildings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	buildings, err := h.source.BuildingNames(r.Context())
	if err != nil {
		h.upstreamError(w, "failed to fetch building names", err)
		return
	}
	respondJSON(w, http.StatusOK, buildings)
}

func (h *APIHandlers) handlePath(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if start == "" || end == "" {
		writeError(w, http.StatusBadRequest, "must have start and end")
		return
	}

	path, err := h.source.FindPath(r.Context(), start, end)
	if err != nil {
		h.upstreamError(w, "failed to find path", err)
		return
	}
	respondJSON(w, http.StatusOK, path)
}

func (h *APIHandlers) upstreamError(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, "error", err)

	var statusErr *pathclient.HTTPStatusError
	switch {
	case errors.Is(err, repository.ErrUnknownBuilding):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &statusErr):
		writeError(w, http.StatusBadGateway, statusErr.Error())
	default:
		writeError(w, http.StatusBadGateway, msg)
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/couchcryptid/uninsured-dashboard/internal/dashboard"
)

const maxEventBody = 1 << 10

// eventRequest is the body of POST /api/events/{event}.
type eventRequest struct {
	Value *int `json:"value"`
}

// renderResponse is what the page applies after every event.
type renderResponse struct {
	Status string                 `json:"status"`
	Figure dashboard.PlotlyFigure `json:"figure"`
}

func newRenderResponse(out dashboard.Output) renderResponse {
	return renderResponse{Status: out.Status, Figure: out.Figure.Plotly()}
}

func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	event := r.PathValue("event")

	var req eventRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid event body")
		return
	}
	if req.Value == nil {
		writeError(w, http.StatusBadRequest, "missing value")
		return
	}

	out, err := s.dashboard.Dispatch(r.Context(), event, *req.Value)
	if errors.Is(err, dashboard.ErrUnknownEvent) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		s.logger.Error("dispatch failed", "error", err, "event", event)
		writeError(w, http.StatusInternalServerError, "dispatch failed")
		return
	}

	writeJSON(w, http.StatusOK, newRenderResponse(out))
}

func (s *Server) handleFigure(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing year")
		return
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid year")
		return
	}

	writeJSON(w, http.StatusOK, newRenderResponse(s.dashboard.Render(year)))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeJSON marshals before writing the header so an unencodable value
// becomes a 500 rather than a 200 with an empty body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"error":"encode response failed"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(append(data, '\n')) //nolint:errcheck // best-effort response
}

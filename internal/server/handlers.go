package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/junkd0g/kuposhan/internal/dataset"
	"github.com/junkd0g/kuposhan/internal/diagram"
	"github.com/junkd0g/kuposhan/internal/view"
)

const maxBodyBytes = 64 << 10

// ErrorResponse is the body of every non-2xx API reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// ReduceRequest carries the client's current state and one selector event.
type ReduceRequest struct {
	State view.State `json:"state"`
	Event struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"event"`
}

// ReduceResponse is the next state and the age panel rendered for it.
type ReduceResponse struct {
	State view.State    `json:"state"`
	Panel view.AgePanel `json:"panel"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Code: status})
}

// stateFromQuery reads ?metric=, defaulting to the initial state.
func stateFromQuery(r *http.Request) (view.State, error) {
	s := view.Initial()
	if v := r.URL.Query().Get("metric"); v != "" {
		m, err := dataset.ParseMetric(v)
		if err != nil {
			return s, err
		}
		s.SelectedMetric = m
	}
	return s, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := s.html
	if theme := r.URL.Query().Get("theme"); theme != "" {
		if theme != "light" && theme != "dark" {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid theme %q (must be light or dark)", theme))
			return
		}
		cfg.Theme = theme
	}

	key := fmt.Sprintf("html:%s:%s", state.Metric(), cfg.Theme)
	if page, ok := s.cache.Get(key); ok {
		writeHTML(w, page.([]byte))
		return
	}

	var buf bytes.Buffer
	if err := diagram.RenderHTML(r.Context(), &buf, state, cfg); err != nil {
		slog.Error("failed to render dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, errors.New("failed to render dashboard"))
		return
	}
	s.cache.SetDefault(key, buf.Bytes())
	writeHTML(w, buf.Bytes())
}

func writeHTML(w http.ResponseWriter, page []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDataset(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dataset.Load())
}

func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	state, err := stateFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, view.Render(state))
}

func (s *Server) handleReduce(w http.ResponseWriter, r *http.Request) {
	var req ReduceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if req.State.SelectedMetric == "" {
		req.State.SelectedMetric = view.Initial().SelectedMetric
	}
	m, err := dataset.ParseMetric(string(req.State.SelectedMetric))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("state: %w", err))
		return
	}
	req.State.SelectedMetric = m

	ev, err := view.ParseEvent(req.Event.Type, req.Event.Value)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	next, err := view.Reduce(req.State, ev)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	slog.Debug("reduced", "from", req.State.SelectedMetric, "to", next.SelectedMetric, "event", req.Event.Type)
	writeJSON(w, http.StatusOK, ReduceResponse{State: next, Panel: view.RenderAgePanel(next)})
}

func (s *Server) handleFactorMap(w http.ResponseWriter, r *http.Request) {
	const key = "factor-map.svg"

	svg, ok := s.cache.Get(key)
	if !ok {
		out, err := diagram.RenderFactorMap(r.Context(), diagram.FormatSVG)
		if err != nil {
			slog.Error("failed to render factor map", "error", err)
			writeError(w, http.StatusInternalServerError, errors.New("failed to render factor map"))
			return
		}
		s.cache.SetDefault(key, out)
		svg = out
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(svg.([]byte))
}

package server

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MichaelHallik/python-docstring-generator/internal/docstring"

	"go.uber.org/zap"
)

//go:embed assets/index.html
var indexHTML []byte

// generateRequest is the POST /api/v1/docstring payload. A zero
// max_line_length means "use the configured or style default".
type generateRequest struct {
	Summary       string            `json:"summary"`
	Description   string            `json:"description"`
	Style         string            `json:"style"`
	MaxLineLength int               `json:"max_line_length"`
	Args          []docstring.Entry `json:"args"`
	Returns       string            `json:"returns"`
	Raises        []docstring.Entry `json:"raises"`
	TripleQuotes  bool              `json:"triple_quotes"`
}

type generateResponse struct {
	Docstring string `json:"docstring"`
}

type styleInfo struct {
	Name              string `json:"name"`
	Label             string `json:"label"`
	DefaultLineLength int    `json:"default_line_length"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.limits.MaxBodyBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := validateRequestBytes(body); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req generateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	style, err := docstring.ParseStyle(req.Style)
	if err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	out, err := docstring.Format(docstring.Request{
		Summary:       req.Summary,
		Description:   req.Description,
		Style:         style,
		MaxLineLength: s.cfg.ResolveLineLength(style, req.MaxLineLength),
		Args:          req.Args,
		Returns:       req.Returns,
		Raises:        req.Raises,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, docstring.ErrUnsupportedStyle) || errors.Is(err, docstring.ErrInvalidLineLength) {
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err.Error())
		return
	}
	if req.TripleQuotes {
		out = docstring.TripleQuoted(out)
	}

	docstringsGenerated.WithLabelValues(string(style)).Inc()
	s.writeJSON(w, http.StatusOK, generateResponse{Docstring: out})
}

func (s *Server) handleStyles(w http.ResponseWriter, _ *http.Request) {
	styles := make([]styleInfo, 0, 3)
	for _, st := range docstring.Styles() {
		styles = append(styles, styleInfo{
			Name:              string(st),
			Label:             st.Label(),
			DefaultLineLength: st.DefaultLineLength(),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"styles":  styles,
		"presets": docstring.LineLengthPresets,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexHTML)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

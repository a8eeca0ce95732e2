package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jusunglee/hangulsearch/internal/analysis"
	"github.com/jusunglee/hangulsearch/internal/metrics"
)

type AnalyzeHandler struct {
	log *slog.Logger
}

func NewAnalyzeHandler(log *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{log: log}
}

type analyzeRequest struct {
	Text    string   `json:"text"`
	Filters []string `json:"filters"`
}

type analyzeResponse struct {
	Tokens []string `json:"tokens"`
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	analyzer, err := analysis.NewAnalyzer(req.Filters...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for _, name := range req.Filters {
		metrics.AnalyzeCallsTotal.WithLabelValues(name).Inc()
	}

	tokens := analyzer.Analyze(req.Text)
	if tokens == nil {
		tokens = []string{}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{Tokens: tokens})
}

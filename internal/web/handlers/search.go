package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jusunglee/hangulsearch/internal/index"
)

type SearchHandler struct {
	log     *slog.Logger
	indexer *index.Indexer
}

func NewSearchHandler(log *slog.Logger, indexer *index.Indexer) *SearchHandler {
	return &SearchHandler{log: log, indexer: indexer}
}

type searchResponse struct {
	Query string             `json:"query"`
	Mode  string             `json:"mode"`
	Data  []documentResponse `json:"data"`
}

func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	mode := q.Get("mode")
	if mode == "" {
		mode = index.ModeJamo
	}

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 25
	}
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	docs, err := h.indexer.Search(r.Context(), query, mode, int32(limit), int32(offset))
	if err != nil {
		if errors.Is(err, index.ErrUnknownMode) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.ErrorContext(r.Context(), "searching", "query", query, "mode", mode, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		data = append(data, toDocumentResponse(d))
	}

	writeJSON(w, http.StatusOK, searchResponse{Query: query, Mode: mode, Data: data})
}

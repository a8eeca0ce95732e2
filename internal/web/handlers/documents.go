package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/hangulsearch/internal/db"
	"github.com/jusunglee/hangulsearch/internal/index"
)

type DocumentHandler struct {
	repo    db.Repository
	log     *slog.Logger
	indexer *index.Indexer
}

func NewDocumentHandler(repo db.Repository, log *slog.Logger, indexer *index.Indexer) *DocumentHandler {
	return &DocumentHandler{repo: repo, log: log, indexer: indexer}
}

type documentResponse struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	CreatedAt string `json:"created_at"`
}

type paginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type listResponse struct {
	Data       []documentResponse `json:"data"`
	Pagination paginationMeta     `json:"pagination"`
}

func toDocumentResponse(d db.Document) documentResponse {
	return documentResponse{
		ID:        d.ID,
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}

type createDocumentRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (h *DocumentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	doc, err := h.repo.CreateDocument(r.Context(), db.CreateDocumentParams{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "creating document", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	if err := h.indexer.Index(r.Context(), doc); err != nil {
		h.log.ErrorContext(r.Context(), "indexing document", "id", doc.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toDocumentResponse(doc))
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	doc, err := h.repo.GetDocument(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "document not found")
			return
		}
		h.log.ErrorContext(r.Context(), "getting document", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toDocumentResponse(doc))
}

func (h *DocumentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 25
	}
	offset := (page - 1) * limit

	total, err := h.repo.CountDocuments(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting documents", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	docs, err := h.repo.ListDocuments(r.Context(), db.ListDocumentsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing documents", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := make([]documentResponse, 0, len(docs))
	for _, d := range docs {
		data = append(data, toDocumentResponse(d))
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data: data,
		Pagination: paginationMeta{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	deleted, err := h.repo.DeleteDocument(r.Context(), id)
	if err != nil {
		h.log.ErrorContext(r.Context(), "deleting document", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if deleted == 0 {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

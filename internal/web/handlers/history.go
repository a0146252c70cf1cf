package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/samber/lo"

	"github.com/crackalamoo/futhorc/internal/db"
)

type HistoryHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewHistoryHandler(repo db.Repository, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

type historyItem struct {
	ID        int64  `json:"id"`
	Source    string `json:"source"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	CreatedAt string `json:"created_at"`
}

type historyResponse struct {
	Data []historyItem `json:"data"`
}

func toHistoryItem(t db.Translation) historyItem {
	return historyItem{
		ID:        t.ID,
		Source:    t.Source,
		Input:     t.Input,
		Output:    t.Output,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 25
	}

	translations, err := h.repo.ListTranslations(r.Context(), limit)
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing translations", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	data := lo.Map(translations, func(t db.Translation, _ int) historyItem {
		return toHistoryItem(t)
	})
	if data == nil {
		data = []historyItem{}
	}

	writeJSON(w, http.StatusOK, historyResponse{Data: data})
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	t, err := h.repo.GetTranslation(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "translation not found")
			return
		}
		h.log.ErrorContext(r.Context(), "getting translation", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toHistoryItem(t))
}

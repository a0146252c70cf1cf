package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/crackalamoo/futhorc/internal/db"
	"github.com/crackalamoo/futhorc/internal/metrics"
	"github.com/crackalamoo/futhorc/internal/runic"
)

// maxInputLength bounds a single translation request, in runes.
const maxInputLength = 4096

type TranslateHandler struct {
	repo       db.Repository
	log        *slog.Logger
	translator *runic.Translator
}

func NewTranslateHandler(repo db.Repository, log *slog.Logger, translator *runic.Translator) *TranslateHandler {
	return &TranslateHandler{repo: repo, log: log, translator: translator}
}

type translateRequest struct {
	Text string `json:"text"`
}

type translateResponse struct {
	ID     int64  `json:"id,omitempty"`
	Input  string `json:"input"`
	Output string `json:"output"`
}

func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}
	if utf8.RuneCountInString(req.Text) > maxInputLength {
		writeError(w, http.StatusBadRequest, "text too long")
		return
	}

	start := time.Now()
	output := h.translator.Translate(req.Text)
	metrics.TranslationDuration.Observe(time.Since(start).Seconds())
	metrics.TranslationsTotal.WithLabelValues("web").Inc()
	metrics.TranslationInputBytes.Observe(float64(len(req.Text)))

	resp := translateResponse{Input: req.Text, Output: output}

	stored, err := h.repo.CreateTranslation(r.Context(), db.CreateTranslationParams{
		Source: "web",
		Input:  req.Text,
		Output: output,
	})
	if err != nil {
		// History is best-effort: the translation itself succeeded.
		h.log.ErrorContext(r.Context(), "recording translation", "error", err)
		metrics.HistoryWrites.WithLabelValues("error").Inc()
	} else {
		metrics.HistoryWrites.WithLabelValues("ok").Inc()
		resp.ID = stored.ID
	}

	writeJSON(w, http.StatusOK, resp)
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

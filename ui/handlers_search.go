package ui

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"econhub/internal/errors"
)

type searchRequest struct {
	Query string `json:"query"`
}

type searchResponse struct {
	Summary string `json:"summary"`
}

// handleSearch answers POST /api/search with a summary of the query. Other
// methods get 405 with an Allow header.
func (a *App) handleSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = io.WriteString(w, errors.MethodNotAllowed(r.Method).Error())
		return
	}

	var req searchRequest
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !stderrors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body", "code": errors.CodeInvalidInput})
		return
	}

	summary, err := a.summarizer.Summarize(r.Context(), req.Query)
	if err != nil {
		a.logger.Error("[Search] summarize failed: %v", err)
		writeJSON(w, errors.HTTPStatus(err), map[string]string{"error": "summary unavailable", "code": errors.GetCode(err)})
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Summary: summary})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

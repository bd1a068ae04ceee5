package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/craftfolio/craftfolio/pkg/models"
	"github.com/craftfolio/craftfolio/pkg/repository"
)

// LegacyHandler serves the old portfolio endpoints. No schema enforcement on
// this path: the blob is stored verbatim and returned unchanged, and the GET
// response is unwrapped (the old client predates the envelope).
type LegacyHandler struct {
	store repository.LegacyPortfolioRepo
}

func NewLegacyHandler(store repository.LegacyPortfolioRepo) *LegacyHandler {
	return &LegacyHandler{store: store}
}

func (h *LegacyHandler) Save(w http.ResponseWriter, r *http.Request) {
	var data models.PortfolioData
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&data); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	saved, err := h.store.SavePortfolio(r.Context(), data)
	if err != nil {
		writeError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// the legacy contract answered 200 on save, not 201
	writeData(w, saved, http.StatusOK)
}

func (h *LegacyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, err := h.store.GetLegacyPortfolio(r.Context(), id)
	if err != nil {
		storeError(w, "portfolio", "legacy get", err)
		return
	}
	if data == nil {
		writeJSON(w, map[string]string{"message": "Portfolio not found"}, http.StatusNotFound)
		return
	}

	writeJSON(w, data, http.StatusOK)
}

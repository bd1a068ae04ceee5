package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gorilla/mux"
)

// maxBodySize bounds every request body read.
const maxBodySize = 1 << 20

// envelope is the uniform response wrapper for the /api surface.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

func writeData(w http.ResponseWriter, data any, status int) {
	writeJSON(w, envelope{Success: true, Data: data}, status)
}

func writeMessage(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, envelope{Success: true, Message: msg}, status)
}

func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, envelope{Success: false, Message: msg}, status)
}

// storeError logs a store failure on the db-error channel and answers 503.
// Infrastructure failures are deliberately kept distinct from not-found.
func storeError(w http.ResponseWriter, entity, op string, err error) {
	logger.Error("store failure",
		slog.String("channel", "db-error"),
		slog.String("entity", entity),
		slog.String("op", op),
		slog.Any("err", err),
	)
	writeError(w, "store unavailable", http.StatusServiceUnavailable)
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

func queryID(r *http.Request, param string) (int64, error) {
	v := r.URL.Query().Get(param)
	if v == "" {
		return 0, fmt.Errorf("%s is required", param)
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", param)
	}
	return id, nil
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"log/slog"

	"github.com/craftfolio/craftfolio/internal/schema"
	"github.com/gorilla/mux"
)

// resource wires the uniform CRUD surface for one entity type. R is the row
// type, I the insert shape checked by the validation gateway. One instance
// per entity replaces six hand-duplicated handler sets.
type resource[R any, I any] struct {
	entity     string // singular name, doubles as the schema key
	ownerParam string // query parameter scoping read-many
	schemas    *schema.Registry

	list   func(context.Context, int64) ([]R, error)
	get    func(context.Context, int64) (*R, error)
	create func(context.Context, *I) (*R, error)
	patch  func(context.Context, int64, map[string]any) (*R, error)
	remove func(context.Context, int64) (bool, error)

	// stripPatch lists fields silently dropped from patch payloads before
	// they reach the store (the user handler strips password here).
	stripPatch []string
}

func newResource[R any, I any](
	entity, ownerParam string,
	schemas *schema.Registry,
	list func(context.Context, int64) ([]R, error),
	get func(context.Context, int64) (*R, error),
	create func(context.Context, *I) (*R, error),
	patch func(context.Context, int64, map[string]any) (*R, error),
	remove func(context.Context, int64) (bool, error),
) *resource[R, I] {
	return &resource[R, I]{
		entity:     entity,
		ownerParam: ownerParam,
		schemas:    schemas,
		list:       list,
		get:        get,
		create:     create,
		patch:      patch,
		remove:     remove,
	}
}

// mountResource registers the uniform route set for one entity collection.
func mountResource[R any, I any](r *mux.Router, path string, res *resource[R, I]) {
	r.HandleFunc(path, res.List).Methods("GET")
	r.HandleFunc(path, res.Create).Methods("POST")
	r.HandleFunc(path+"/{id}", res.Get).Methods("GET")
	r.HandleFunc(path+"/{id}", res.Patch).Methods("PATCH")
	r.HandleFunc(path+"/{id}", res.Delete).Methods("DELETE")
}

func (res *resource[R, I]) List(w http.ResponseWriter, r *http.Request) {
	owner, err := queryID(r, res.ownerParam)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows, err := res.list(r.Context(), owner)
	if err != nil {
		storeError(w, res.entity, "list", err)
		return
	}
	if rows == nil {
		rows = []R{}
	}

	writeData(w, rows, http.StatusOK)
}

func (res *resource[R, I]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	row, err := res.get(r.Context(), id)
	if err != nil {
		storeError(w, res.entity, "get", err)
		return
	}
	if row == nil {
		writeError(w, res.entity+" not found", http.StatusNotFound)
		return
	}

	writeData(w, row, http.StatusOK)
}

func (res *resource[R, I]) Create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, "read body failed", http.StatusBadRequest)
		return
	}

	if err := res.schemas.ValidateInsert(r.Context(), res.entity, body); err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			writeError(w, verr.Error(), http.StatusBadRequest)
			return
		}
		writeError(w, "invalid json", http.StatusBadRequest)
		return
	}

	var in I
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}

	row, err := res.create(r.Context(), &in)
	if err != nil {
		// creation failures are not swallowed: the caller must know the
		// write did not happen
		logger.Error("create failed",
			slog.String("channel", "db-error"),
			slog.String("entity", res.entity),
			slog.Any("err", err),
		)
		writeError(w, fmt.Sprintf("failed to create %s: %v", res.entity, err), http.StatusInternalServerError)
		return
	}

	writeData(w, row, http.StatusCreated)
}

func (res *resource[R, I]) Patch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(&fields); err != nil {
		writeError(w, "invalid request", http.StatusBadRequest)
		return
	}
	for _, f := range res.stripPatch {
		delete(fields, f)
	}

	row, err := res.patch(r.Context(), id, fields)
	if err != nil {
		storeError(w, res.entity, "patch", err)
		return
	}
	if row == nil {
		writeError(w, res.entity+" not found", http.StatusNotFound)
		return
	}

	writeData(w, row, http.StatusOK)
}

func (res *resource[R, I]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	removed, err := res.remove(r.Context(), id)
	if err != nil {
		storeError(w, res.entity, "delete", err)
		return
	}
	if !removed {
		writeError(w, res.entity+" not found", http.StatusNotFound)
		return
	}

	writeMessage(w, res.entity+" deleted", http.StatusOK)
}

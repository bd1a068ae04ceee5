// Package schema is the validation gateway: it checks untyped request
// payloads against per-entity insert schemas before anything touches the
// store. Validation is all-or-nothing; a failing payload produces one
// aggregated error listing every offending field.
package schema

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/qri-io/jsonschema"
)

//go:embed schemas/*.json
var schemaFiles embed.FS

// Registry holds the compiled insert schemas, keyed by entity name
// (the schema filename without extension).
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// Load compiles every embedded schema. Called once at startup.
func Load() (*Registry, error) {
	entries, err := fs.ReadDir(schemaFiles, "schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas dir: %w", err)
	}

	reg := &Registry{schemas: make(map[string]*jsonschema.Schema, len(entries))}
	for _, e := range entries {
		name := e.Name()
		b, err := fs.ReadFile(schemaFiles, path.Join("schemas", name))
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", name, err)
		}

		rs := &jsonschema.Schema{}
		if err := json.Unmarshal(b, rs); err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", name, err)
		}
		reg.schemas[strings.TrimSuffix(name, path.Ext(name))] = rs
	}

	return reg, nil
}

// ValidateInsert checks payload against the named entity's insert schema.
// It returns nil on success, *ValidationError when the payload violates the
// schema, and a plain error for unknown entities or malformed JSON.
func (r *Registry) ValidateInsert(ctx context.Context, entity string, payload []byte) error {
	rs, ok := r.schemas[entity]
	if !ok {
		return fmt.Errorf("no schema registered for entity %q", entity)
	}

	keyErrs, err := rs.ValidateBytes(ctx, payload)
	if err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	if len(keyErrs) == 0 {
		return nil
	}

	fields := make([]string, 0, len(keyErrs))
	for _, ke := range keyErrs {
		p := strings.TrimPrefix(ke.PropertyPath, "/")
		if p == "" {
			p = "payload"
		}
		fields = append(fields, p+": "+ke.Message)
	}
	sort.Strings(fields)

	return &ValidationError{Fields: fields}
}

// ValidationError aggregates every field failure of one payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Fields, "; ")
}

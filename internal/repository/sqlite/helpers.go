package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/craftfolio/craftfolio/internal/db"
)

// rowScanner lets one scan function serve both sql.Row and sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// getRow fetches a single row; a miss is (nil, nil), never an error.
func getRow[R any](ctx context.Context, d *db.DB, query string, scan func(rowScanner) (R, error), args ...any) (*R, error) {
	row := d.QueryRow(ctx, query, args...)
	r, err := scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &r, nil
}

// listRows fetches every matching row with scan.
func listRows[R any](ctx context.Context, d *db.DB, query string, scan func(rowScanner) (R, error), args ...any) ([]R, error) {
	rows, err := d.QueryRows(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []R
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// jsonCols maps JSON-text columns to their empty encoding. Patch values for
// these columns must decode as the matching composite type; null resets the
// column to its empty encoding. Anything else would poison every later read
// of the row.
var jsonCols = map[string]string{
	"technologies": "[]",
	"settings":     "{}",
}

// patchRow applies a partial field set to one row. allowed maps JSON field
// names to column names; fields outside the whitelist are dropped, as are
// values of the wrong shape for a JSON-text column. An empty effective patch
// leaves the row untouched. The updated_at bump comes from the table trigger,
// not from here.
func (r *SQLiteRepo) patchRow(ctx context.Context, table string, id int64, fields map[string]any, allowed map[string]string) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	sets := make([]string, 0, len(names))
	args := make([]any, 0, len(names)+1)
	for _, name := range names {
		col, ok := allowed[name]
		if !ok {
			continue
		}
		var v any
		if empty, isJSON := jsonCols[col]; isJSON {
			s, ok, err := bindJSONValue(fields[name], empty)
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			if !ok {
				continue
			}
			v = s
		} else {
			bv, err := bindValue(fields[name])
			if err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			v = bv
		}
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.conn.Exec(ctx, `UPDATE `+table+` SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	return err
}

func (r *SQLiteRepo) deleteFrom(ctx context.Context, table string, id int64) (bool, error) {
	res, err := r.conn.Exec(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// bindJSONValue encodes a patch value destined for a JSON-text column.
// null maps to the column's empty encoding; a value of the wrong composite
// shape reports ok=false and the caller drops the field.
func bindJSONValue(v any, empty string) (string, bool, error) {
	switch t := v.(type) {
	case nil:
		return empty, true, nil
	case []any:
		if empty != "[]" {
			return "", false, nil
		}
		b, err := json.Marshal(t)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	case []string:
		if empty != "[]" {
			return "", false, nil
		}
		b, err := json.Marshal(t)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	case map[string]any:
		if empty != "{}" {
			return "", false, nil
		}
		b, err := json.Marshal(t)
		if err != nil {
			return "", false, err
		}
		return string(b), true, nil
	default:
		return "", false, nil
	}
}

// bindValue converts a decoded JSON value into a driver-friendly binding.
// Arrays and objects are stored as JSON text columns.
func bindValue(v any) (any, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case bool:
		return b2i(t), nil
	case float64:
		if t == math.Trunc(t) {
			return int64(t), nil
		}
		return t, nil
	case string:
		return t, nil
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case []any, map[string]any, []string:
		b, err := json.Marshal(t)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

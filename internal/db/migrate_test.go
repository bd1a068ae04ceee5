package db_test

import (
	"context"
	"testing"

	dbfs "github.com/craftfolio/craftfolio/db"
	"github.com/craftfolio/craftfolio/internal/db"
)

func openTestDB(t *testing.T) *db.DB {
	t.Helper()
	d, err := db.New(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}
	t.Cleanup(func() { d.Close() })
	return d
}

func TestMigrateCreatesSchema(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	// every table the repositories touch must exist
	for _, table := range []string{
		"users", "portfolios", "portfolio_sections", "skills",
		"projects", "experiences", "educations", "certifications",
	} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("table %s missing after migrate: %v", table, err)
		}
	}

	var applied int
	row := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`)
	if err := row.Scan(&applied); err != nil {
		t.Fatalf("scan schema_migrations: %v", err)
	}
	if applied == 0 {
		t.Fatalf("expected at least one recorded migration")
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("first Migrate error: %v", err)
	}

	var before int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&before); err != nil {
		t.Fatalf("scan schema_migrations: %v", err)
	}

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}

	var after int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&after); err != nil {
		t.Fatalf("scan schema_migrations: %v", err)
	}
	if before != after {
		t.Fatalf("re-running migrations changed the ledger: %d -> %d", before, after)
	}
}

func TestUpdateTriggerTouchesTimestamp(t *testing.T) {
	d := openTestDB(t)
	ctx := context.Background()

	if err := db.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	res, err := d.Exec(ctx, `INSERT INTO users (username, password, email) VALUES ('sam', 'h', 'sam@example.com')`)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}

	var created, updated int64
	if err := d.QueryRow(ctx, `SELECT created_at, updated_at FROM users WHERE id = ?`, id).Scan(&created, &updated); err != nil {
		t.Fatalf("scan timestamps: %v", err)
	}
	if created == 0 || updated == 0 {
		t.Fatalf("expected defaulted timestamps, got created=%d updated=%d", created, updated)
	}

	if _, err := d.Exec(ctx, `UPDATE users SET bio = 'hello' WHERE id = ?`, id); err != nil {
		t.Fatalf("update user: %v", err)
	}

	var after int64
	if err := d.QueryRow(ctx, `SELECT updated_at FROM users WHERE id = ?`, id).Scan(&after); err != nil {
		t.Fatalf("scan updated_at: %v", err)
	}
	if after < updated {
		t.Fatalf("updated_at went backwards: %d -> %d", updated, after)
	}
}

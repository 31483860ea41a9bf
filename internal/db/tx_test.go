package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE terms (id INTEGER PRIMARY KEY, term TEXT)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	return db
}

func count(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM terms`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithTx_Commits(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO terms (term) VALUES (?)`, "abba")
		return err
	})
	if err != nil {
		t.Fatalf("WithTx() error = %v", err)
	}
	if n := count(t, db); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestWithTx_RollsBack(t *testing.T) {
	db := setupTestDB(t)
	boom := errors.New("boom")

	err := WithTx(context.Background(), db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO terms (term) VALUES (?)`, "abba"); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithTx() error = %v, want boom", err)
	}
	if n := count(t, db); n != 0 {
		t.Errorf("count = %d, want 0 after rollback", n)
	}
}

func TestWithTx_CanceledContext(t *testing.T) {
	db := setupTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := WithTx(ctx, db, func(*sql.Tx) error {
		called = true
		return nil
	})
	if err == nil {
		t.Error("WithTx() on canceled context should fail")
	}
	if called {
		t.Error("fn ran on canceled context")
	}
}

func TestNullStringValue(t *testing.T) {
	if got := NullStringValue(sql.NullString{}); got != "" {
		t.Errorf("invalid = %q, want empty", got)
	}
	if got := NullStringValue(sql.NullString{String: "x", Valid: true}); got != "x" {
		t.Errorf("valid = %q, want x", got)
	}
}

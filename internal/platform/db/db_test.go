package db

import (
	"path/filepath"
	"testing"
)

func TestRebind(t *testing.T) {
	q := "SELECT * FROM pois WHERE location_id = ? AND category = ?"

	if got := SQLite.Rebind(q); got != q {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}

	want := "SELECT * FROM pois WHERE location_id = $1 AND category = $2"
	if got := Postgres.Rebind(q); got != want {
		t.Fatalf("postgres rebind = %q, want %q", got, want)
	}
}

func TestParseDialect(t *testing.T) {
	if d, err := ParseDialect(" Postgres "); err != nil || d != Postgres {
		t.Fatalf("ParseDialect(Postgres) = %q, %v", d, err)
	}
	if _, err := ParseDialect("mysql"); err == nil {
		t.Fatalf("expected error for mysql")
	}
}

func TestOpenSQLite(t *testing.T) {
	conn, err := Open(SQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer conn.Close()

	var one int
	if err := conn.QueryRow("SELECT 1").Scan(&one); err != nil || one != 1 {
		t.Fatalf("select 1: %d, %v", one, err)
	}
}

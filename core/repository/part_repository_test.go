package repository

import (
	"database/sql"
	"errors"
	"strings"
	"testing"
)

func TestBuildListPartsQuery(t *testing.T) {
	query, args := buildListPartsQuery("")
	if strings.Contains(query, "WHERE") {
		t.Fatalf("unscoped query should not filter: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
	if !strings.HasSuffix(query, "ORDER BY created_at DESC") {
		t.Fatalf("expected newest-first ordering: %s", query)
	}

	query, args = buildListPartsQuery("plant-1")
	if !strings.Contains(query, "WHERE plant_id = $1") {
		t.Fatalf("expected plant filter: %s", query)
	}
	if len(args) != 1 || args[0] != "plant-1" {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestNewDBOpenFailure(t *testing.T) {
	orig := sqlOpen
	defer func() { sqlOpen = orig }()

	boom := errors.New("boom")
	sqlOpen = func(driver, dsn string) (*sql.DB, error) {
		if driver != "postgres" {
			t.Fatalf("unexpected driver %q", driver)
		}
		return nil, boom
	}

	if _, err := NewDB("postgres://example"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped open error, got %v", err)
	}
}

func TestSchemaConstrainsStatuses(t *testing.T) {
	var parts string
	for _, stmt := range schema {
		if strings.Contains(stmt, "CREATE TABLE IF NOT EXISTS parts") {
			parts = stmt
		}
	}
	if parts == "" {
		t.Fatal("parts table missing from schema")
	}
	for _, status := range []string{"initiated", "pending", "approved", "completed", "rejected", "on_hold"} {
		if !strings.Contains(parts, "'"+status+"'") {
			t.Fatalf("status %q missing from parts check constraint", status)
		}
	}
}

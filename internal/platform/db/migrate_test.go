package db

import (
	"io/fs"
	"strings"
	"testing"
)

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		t.Fatalf("read embedded migrations: %v", err)
	}
	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".up.sql"):
			ups[strings.TrimSuffix(name, ".up.sql")] = true
		case strings.HasSuffix(name, ".down.sql"):
			downs[strings.TrimSuffix(name, ".down.sql")] = true
		default:
			t.Fatalf("unexpected migration file %s", name)
		}
	}
	if len(ups) == 0 {
		t.Fatalf("expected embedded migrations")
	}
	for version := range ups {
		if !downs[version] {
			t.Fatalf("migration %s has no down file", version)
		}
	}
}

func TestApplicationsMigrationDeclaresPairUniqueness(t *testing.T) {
	raw, err := fs.ReadFile(migrationFiles, "migrations/000003_applications.up.sql")
	if err != nil {
		t.Fatalf("read applications migration: %v", err)
	}
	if !strings.Contains(string(raw), "UNIQUE INDEX IF NOT EXISTS applications_scholarship_user_key") ||
		!strings.Contains(string(raw), "(scholarship_id, user_id)") {
		t.Fatalf("applications migration must enforce one row per scholarship and user")
	}
}

func TestMigratorRequiresDSN(t *testing.T) {
	if err := MigrateUp("", nil); err == nil {
		t.Fatalf("expected error for empty dsn")
	}
	if err := MigrateDown("postgres://x", 0, nil); err == nil {
		t.Fatalf("expected error for non-positive steps")
	}
}

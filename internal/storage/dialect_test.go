package storage

import (
	"strings"
	"testing"
)

func TestRewritePlaceholdersToNumbered(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "single placeholder",
			query: "SELECT entry_value FROM app_storage WHERE entry_key = ?",
			want:  "SELECT entry_value FROM app_storage WHERE entry_key = $1",
		},
		{
			name:  "multiple placeholders",
			query: "INSERT INTO app_storage (entry_key, entry_value) VALUES (?, ?)",
			want:  "INSERT INTO app_storage (entry_key, entry_value) VALUES ($1, $2)",
		},
		{
			name:  "no placeholders",
			query: "DELETE FROM app_storage",
			want:  "DELETE FROM app_storage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rewritePlaceholdersToNumbered(tt.query)
			if got != tt.want {
				t.Errorf("rewritePlaceholdersToNumbered() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDialectQueries(t *testing.T) {
	dialects := []struct {
		name    string
		dialect Dialect
	}{
		{name: "sqlite", dialect: NewSQLiteDialect()},
		{name: "mysql", dialect: NewMySQLDialect()},
		{name: "postgres", dialect: NewPostgresDialect()},
	}

	for _, tt := range dialects {
		t.Run(tt.name, func(t *testing.T) {
			if tt.dialect.DriverName() == "" {
				t.Error("DriverName() is empty")
			}
			if !strings.Contains(tt.dialect.CreateStorageTableQuery(), "app_storage") {
				t.Error("CreateStorageTableQuery() does not target app_storage")
			}
			upsert := tt.dialect.UpsertEntryQuery()
			if !strings.Contains(upsert, "INSERT INTO app_storage") {
				t.Errorf("UpsertEntryQuery() = %q, want an INSERT into app_storage", upsert)
			}
		})
	}
}

func TestPostgresRewrite(t *testing.T) {
	d := NewPostgresDialect()
	got := d.RewriteQuery("SELECT entry_value FROM app_storage WHERE entry_key = ?")
	if !strings.Contains(got, "$1") {
		t.Errorf("RewriteQuery() = %q, want numbered placeholders", got)
	}
}

func TestEscapeLike(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{
			name:   "plain prefix",
			prefix: "drsparkle:",
			want:   "drsparkle:",
		},
		{
			name:   "underscore escaped",
			prefix: "dr_sparkle",
			want:   `dr\_sparkle`,
		},
		{
			name:   "percent escaped",
			prefix: "100%",
			want:   `100\%`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeLike(tt.prefix); got != tt.want {
				t.Errorf("escapeLike(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

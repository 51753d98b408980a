package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"drsparkle/internal/config"
)

// SQLStore implements Store over a single key/value table in a relational
// database, with dialect support for sqlite, mysql and postgres.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// Initialize creates and configures a SQLite-backed store (backwards compatible)
func Initialize(path string) (*SQLStore, error) {
	return open(NewSQLiteDialect(), DialectConfig{Path: path})
}

// InitializeWithConfig creates and configures the store based on config
func InitializeWithConfig(cfg *config.Config) (*SQLStore, error) {
	switch strings.ToLower(cfg.StoreType) {
	case "postgres", "postgresql":
		return open(NewPostgresDialect(), DialectConfig{URL: cfg.StoreURL})
	case "mysql":
		return open(NewMySQLDialect(), DialectConfig{URL: cfg.StoreURL})
	case "sqlite", "sqlite3", "":
		return open(NewSQLiteDialect(), DialectConfig{Path: cfg.StorePath})
	default:
		return nil, fmt.Errorf("unsupported store type: %s", cfg.StoreType)
	}
}

func open(dialect Dialect, dialectConfig DialectConfig) (*SQLStore, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping store: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	// Ensure the storage table exists
	if _, err := db.Exec(dialect.CreateStorageTableQuery()); err != nil {
		return nil, fmt.Errorf("failed to create storage table: %w", err)
	}

	return &SQLStore{db: db, dialect: dialect}, nil
}

// Close closes the underlying database connection
func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Get(key string) ([]byte, bool, error) {
	query := s.dialect.RewriteQuery("SELECT entry_value FROM app_storage WHERE entry_key = ?")

	var value string
	err := s.db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return []byte(value), true, nil
}

func (s *SQLStore) Set(key string, value []byte) error {
	query := s.dialect.RewriteQuery(s.dialect.UpsertEntryQuery())
	if _, err := s.db.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Delete(key string) error {
	query := s.dialect.RewriteQuery("DELETE FROM app_storage WHERE entry_key = ?")
	if _, err := s.db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Keys(prefix string) ([]string, error) {
	query := s.dialect.RewriteQuery("SELECT entry_key FROM app_storage WHERE entry_key LIKE ? ESCAPE '\\' ORDER BY entry_key")

	rows, err := s.db.Query(query, escapeLike(prefix)+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan key: %w", err)
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// escapeLike escapes LIKE wildcard characters in a literal prefix.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

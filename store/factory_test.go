package store

import (
	"path/filepath"
	"testing"
)

func TestNewFromEnvDefaultsToMemory(t *testing.T) {
	t.Setenv("HOLDEM_STORE_DRIVER", "")
	s, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*MemoryStore); !ok {
		t.Fatalf("default driver should be memory, got %T", s)
	}
}

func TestNewFromEnvSQLite(t *testing.T) {
	t.Setenv("HOLDEM_STORE_DRIVER", "sqlite")
	t.Setenv("HOLDEM_SQLITE_PATH", filepath.Join(t.TempDir(), "holdem.db"))
	s, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv failed: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Fatalf("expected sqlite store, got %T", s)
	}
}

func TestNewFromEnvUnknownDriver(t *testing.T) {
	t.Setenv("HOLDEM_STORE_DRIVER", "scrolls")
	if _, err := NewFromEnv(); err == nil {
		t.Fatalf("unknown driver should fail")
	}
}

func TestNewFromEnvPostgresNeedsDSN(t *testing.T) {
	t.Setenv("HOLDEM_STORE_DRIVER", "postgres")
	t.Setenv("HOLDEM_POSTGRES_DSN", "")
	if _, err := NewFromEnv(); err == nil {
		t.Fatalf("postgres without a DSN should fail")
	}
}

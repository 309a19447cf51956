package store

import (
	"fmt"
	"log"
	"os"
)

// NewFromEnv selects a backend from the environment:
//
//	HOLDEM_STORE_DRIVER   memory (default) | sqlite | postgres
//	HOLDEM_SQLITE_PATH    sqlite file path (default holdem.db)
//	HOLDEM_POSTGRES_DSN   lib/pq connection string
func NewFromEnv() (Store, error) {
	driver := os.Getenv("HOLDEM_STORE_DRIVER")
	switch driver {
	case "", "memory":
		log.Printf("[Store] using in-memory snapshot store")
		return NewMemoryStore(), nil
	case "sqlite":
		path := os.Getenv("HOLDEM_SQLITE_PATH")
		if path == "" {
			path = "holdem.db"
		}
		log.Printf("[Store] using sqlite snapshot store at %s", path)
		return NewSQLiteStore(path)
	case "postgres":
		dsn := os.Getenv("HOLDEM_POSTGRES_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("HOLDEM_POSTGRES_DSN is required for the postgres driver")
		}
		log.Printf("[Store] using postgres snapshot store")
		return NewPostgresStore(dsn)
	}
	return nil, fmt.Errorf("unknown store driver %q", driver)
}

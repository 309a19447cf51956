package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"texas-lite/holdem"
	"texas-lite/internal/gateway"
	"texas-lite/store"
)

func envInt64(name string, fallback int64) int64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("[Server] bad %s=%q: %v", name, raw, err)
	}
	return v
}

func main() {
	addr := os.Getenv("HOLDEM_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cfg := holdem.DefaultConfig()
	cfg.SmallBlind = envInt64("HOLDEM_SMALL_BLIND", cfg.SmallBlind)
	cfg.BigBlind = envInt64("HOLDEM_BIG_BLIND", cfg.BigBlind)
	cfg.StartingStack = envInt64("HOLDEM_STARTING_STACK", cfg.StartingStack)

	st, err := store.NewFromEnv()
	if err != nil {
		log.Fatalf("[Server] store init failed: %v", err)
	}
	defer st.Close()

	gw := gateway.New(cfg, st)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", gw.HandleWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	log.Printf("[Server] listening on %s (blinds %d/%d, stack %d)",
		addr, cfg.SmallBlind, cfg.BigBlind, cfg.StartingStack)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("[Server] %v", err)
	}
}

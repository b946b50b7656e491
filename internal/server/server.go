// Package server exposes the analysis core as a small JSON API for a
// browser front end. The server is stateless; every request carries
// the full beam definition.
package server

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

// Config holds the server settings, read from the environment.
type Config struct {
	Addr string
}

// LoadConfig reads an optional .env file and the GOCLT_ADDR variable.
func LoadConfig() Config {
	// Missing .env is fine; env vars may come from the process.
	godotenv.Load()

	addr := os.Getenv("GOCLT_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{Addr: addr}
}

func newRouter() http.Handler {
	r := mux.NewRouter()
	limiter := NewIPRateLimiter(5, 10)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.HandleFunc("/analyze", handleAnalyze).Methods("POST")
	api.HandleFunc("/materials", handleMaterials).Methods("GET")

	return cors(r)
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// New builds the configured HTTP server.
func New(cfg Config) *http.Server {
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
}

// Run starts the server and blocks until it exits.
func Run(cfg Config) error {
	srv := New(cfg)
	log.Printf("goclt API listening on %s", cfg.Addr)
	return srv.ListenAndServe()
}

// Package server provides the HTTP REST API for the resume builder wizard.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/creation"
	"github.com/jonathan/resume-builder/internal/credits"
	"github.com/jonathan/resume-builder/internal/extraction"
	"github.com/jonathan/resume-builder/internal/generate"
	"github.com/jonathan/resume-builder/internal/notify"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/version"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	rateLimiter *ratelimit.Limiter
	sessions    *sessionRegistry
	versions    *version.Manager
	store       version.Store
	balance     *credits.BalanceClient
	gateway     *credits.Gateway
	generator   generate.Generator
	extractor   extraction.Extractor
	creator     wizard.Creator
	notifier    notify.Notifier
	ownerID     uuid.UUID
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string // empty means in-memory snapshot storage
	ParserURL    string
	GeneratorURL string
	BillingURL   string
	DocumentsURL string
	OwnerID      string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	ownerID, err := uuid.Parse(cfg.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID %q: %w", cfg.OwnerID, err)
	}

	var store version.Store
	if cfg.DatabaseURL != "" {
		pgStore, err := version.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store = pgStore
	} else {
		log.Println("No database configured; snapshots are held in memory")
		store = version.NewMemoryStore()
	}

	s := &Server{
		sessions:  newSessionRegistry(),
		versions:  version.NewManager(store),
		store:     store,
		balance:   credits.NewBalanceClient(cfg.BillingURL),
		gateway:   credits.NewGateway(),
		generator: generate.NewHTTPGenerator(cfg.GeneratorURL, cfg.OwnerID),
		extractor: extraction.NewHTTPExtractor(cfg.ParserURL),
		creator:   creation.NewClient(cfg.DocumentsURL, cfg.OwnerID),
		notifier:  notify.Logger{},
		ownerID:   ownerID,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Setup router
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /steps", s.handleListSteps)

	// Session lifecycle and navigation
	mux.HandleFunc("POST /sessions", s.handleCreateSession)
	mux.HandleFunc("GET /sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /sessions/{id}/next", s.handleNext)
	mux.HandleFunc("POST /sessions/{id}/previous", s.handlePrevious)
	mux.HandleFunc("POST /sessions/{id}/jump", s.handleJump)

	// Document editing
	mux.HandleFunc("PUT /sessions/{id}/sections/{section}", s.handleApplySection)
	mux.HandleFunc("GET /sessions/{id}/document", s.handleGetDocument)
	mux.HandleFunc("GET /sessions/{id}/score", s.handleScore)
	mux.HandleFunc("GET /sessions/{id}/completeness", s.handleCompleteness)

	// AI-assisted operations
	mux.HandleFunc("POST /sessions/{id}/extract", s.handleExtract)
	mux.HandleFunc("POST /sessions/{id}/generate-summary", s.handleGenerateSummary)

	// Finalization
	mux.HandleFunc("POST /sessions/{id}/finalize", s.handleFinalize)

	// Version snapshots
	mux.HandleFunc("POST /sessions/{id}/versions", s.handleCreateVersion)
	mux.HandleFunc("GET /sessions/{id}/versions", s.handleListVersions)
	mux.HandleFunc("POST /sessions/{id}/versions/{version_id}/restore", s.handleRestoreVersion)

	// Sidebar aggregate (versions + balance)
	mux.HandleFunc("GET /sessions/{id}/sidebar", s.handleSidebar)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for LLM-backed operations
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	if pgStore, ok := s.store.(*version.PostgresStore); ok {
		pgStore.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleListSteps returns the fixed wizard step sequence
func (s *Server) handleListSteps(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, wizard.Steps)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// This uses the IP address from RemoteAddr; X-Forwarded-For would only be
// trustworthy behind a known proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// Package server provides the HTTP API for assessment scoring and report
// generation.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/anchor-insight/internal/llm"
	"github.com/jonathan/anchor-insight/internal/prompts"
	"github.com/jonathan/anchor-insight/internal/questionbank"
	"github.com/jonathan/anchor-insight/internal/report"
	"github.com/jonathan/anchor-insight/internal/types"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	bank       *types.QuestionBank
	orch       *report.Orchestrator
	now        func() time.Time
}

// Config holds server configuration
type Config struct {
	Port      int    `validate:"required,min=1,max=65535"`
	PromptDir string `validate:"required"`
	LLM       *llm.Config
}

// DefaultConfig returns a config wired from the environment.
func DefaultConfig(port int) Config {
	return Config{
		Port:      port,
		PromptDir: prompts.Dir(),
		LLM:       llm.ConfigFromEnv(),
	}
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}

	bank, err := questionbank.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	s := &Server{
		bank: bank,
		orch: report.New(cfg.LLM, report.WithPromptDir(cfg.PromptDir)),
		now:  time.Now,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // generation spans up to three provider round-trips
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler builds the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /assessments/score", s.handleScore)
	mux.HandleFunc("POST /reports/generate", s.handleGenerateReport)
	mux.HandleFunc("GET /question-bank", s.handleQuestionBank)
	mux.HandleFunc("GET /health", s.handleHealth)

	return s.withLogging(s.withCORS(mux))
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

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging with a per-request trace id.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Request-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", traceID)

		start := time.Now()
		log.Printf("[%s] %s %s trace=%s", r.Method, r.URL.Path, r.RemoteAddr, traceID)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v trace=%s", r.Method, r.URL.Path, time.Since(start), traceID)
	})
}

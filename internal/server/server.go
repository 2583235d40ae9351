// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uptoskills/resume-builder/internal/config"
	"github.com/uptoskills/resume-builder/internal/db"
	"github.com/uptoskills/resume-builder/internal/enhance"
	"github.com/uptoskills/resume-builder/internal/pdf"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      Store
	enhancer   enhance.Enhancer
	renderer   PDFRenderer

	shareBaseURL string
	staticDir    string
	production   bool
}

// New creates a new server instance from the runtime configuration.
// A missing AI credential is not an error: enhancement degrades to a
// graceful 503 while the rest of the API keeps working.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	enhancer, err := enhance.New(ctx, enhance.Config{APIKey: cfg.GeminiAPIKey})
	if err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to create enhancement gateway: %w", err)
	}
	if !enhancer.Configured() {
		log.Println("[ai] no valid credential configured; enhancement endpoints will return 503")
	}

	s := &Server{
		store:        database,
		enhancer:     enhancer,
		renderer:     pdf.NewRenderer(),
		shareBaseURL: cfg.ShareBaseURL,
		staticDir:    cfg.StaticDir,
		production:   cfg.Production(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering and whole-document enhancement are slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	// AI enhancement
	mux.HandleFunc("POST /api/enhance-section", s.handleEnhanceSection)
	mux.HandleFunc("POST /api/auto-enhance-resume", s.handleAutoEnhanceResume)

	// Resume persistence
	mux.HandleFunc("POST /api/save-resume", s.handleSaveResume)
	mux.HandleFunc("GET /api/get-resume/{userId}", s.handleGetResume)

	// Sharing
	mux.HandleFunc("GET /api/generate-share-link/{userId}", s.handleGenerateShareLink)
	mux.HandleFunc("GET /api/shared-resume/{token}", s.handleSharedResume)

	// PDF export
	mux.HandleFunc("POST /api/generate-pdf", s.handleGeneratePDF)

	mux.HandleFunc("GET /api/health", s.handleHealth)

	// Built client assets, production only
	if s.production {
		mux.Handle("/", spaHandler(s.staticDir))
	}

	return mux
}

// Start begins listening and blocks until shutdown completes.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	err := g.Wait()

	if s.enhancer != nil {
		_ = s.enhancer.Close()
	}
	s.store.Close()
	log.Println("Server stopped")
	return err
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

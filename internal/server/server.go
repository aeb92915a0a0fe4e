// Package server provides the local JSON API used by the skillsync presentation layer.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/skillsync/internal/mentorship"
	"github.com/jonathan/skillsync/internal/portfolio"
	"github.com/jonathan/skillsync/internal/skills"
	"github.com/jonathan/skillsync/internal/types"
	"github.com/rs/cors"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long in-flight requests get on shutdown
const shutdownTimeout = 30 * time.Second

// Server represents the HTTP server. It owns one student session.
type Server struct {
	httpServer *http.Server
	sessionID  string

	mu      sync.Mutex
	session *session
}

// session is the state a single student builds up while using the app.
// profile is nil until onboarding is submitted.
type session struct {
	profile  *types.Profile
	mentors  []types.Mentor
	skills   []types.Skill
	projects []types.ProjectTemplate
	results  []types.SimulationResult
}

// Config holds server configuration
type Config struct {
	Addr           string
	AllowedOrigins []string
	// Profile, when set, starts the session already onboarded.
	Profile *types.Profile
}

func newSession(p *types.Profile) *session {
	var profileSkills []string
	if p != nil {
		profileSkills = p.Skills
	}
	return &session{
		profile:  p,
		mentors:  mentorship.Directory(),
		skills:   skills.Seed(profileSkills),
		projects: portfolio.Templates(),
		results:  []types.SimulationResult{},
	}
}

// New creates a new server instance
func New(cfg Config) *Server {
	s := &Server{
		sessionID: uuid.New().String(),
		session:   newSession(cfg.Profile),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Onboarding and profile
	mux.HandleFunc("GET /onboarding/options", s.handleOnboardingOptions)
	mux.HandleFunc("POST /onboarding", s.handleOnboarding)
	mux.HandleFunc("GET /profile", s.handleGetProfile)
	mux.HandleFunc("POST /resume", s.handleResumeUpload)

	// Psychometric assessment
	mux.HandleFunc("GET /assessment/questions", s.handleListQuestions)
	mux.HandleFunc("POST /assessment", s.handleSubmitAssessment)

	// Learning views
	mux.HandleFunc("GET /courses", s.handleListCourses)
	mux.HandleFunc("GET /mentors", s.handleListMentors)
	mux.HandleFunc("POST /mentors/{id}/connect", s.handleConnectMentor)
	mux.HandleFunc("GET /skills", s.handleGetPathway)
	mux.HandleFunc("POST /skills/toggle", s.handleToggleSkill)
	mux.HandleFunc("GET /projects", s.handleGetPortfolio)
	mux.HandleFunc("GET /projects/{id}/steps", s.handleGetProjectSteps)
	mux.HandleFunc("POST /projects/{id}/toggle", s.handleToggleProject)

	// Career simulator
	mux.HandleFunc("GET /scenarios", s.handleListScenarios)
	mux.HandleFunc("POST /scenarios/{id}/attempts", s.handleSubmitAttempt)

	// Dashboards
	mux.HandleFunc("GET /dashboard", s.handleDashboard)
	mux.HandleFunc("GET /institutional", s.handleInstitutional)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	})

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(c.Handler(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the fully wrapped request handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SessionID identifies the session this server owns.
func (s *Server) SessionID() string {
	return s.sessionID
}

// Start serves requests until ctx is cancelled or the process receives
// SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s (session %s)", s.httpServer.Addr, s.sessionID)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		log.Println("Server stopped")
		return nil
	})

	return g.Wait()
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
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok", "session_id": s.sessionID})
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

// handleError writes err with the status HTTPStatus picks for it.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		s.errorResponse(w, status, "internal server error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Field: "body", Message: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return nil
}

// Package httpapi serves the Morse translation engine over a small JSON
// REST surface: translate endpoints, a health check, and a listing of the
// supported alphabet. The engine itself stays a plain string-in,
// string(s)-out collaborator; everything transport-shaped lives here.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"

	"github.com/telegraphy/morse"
)

// Version is reported by the root and health endpoints.
const Version = "1.0.0"

// Server is the translation HTTP server.
type Server struct {
	translator *morse.Translator
	validate   *validator.Validate
	router     chi.Router
	addr       string
}

// ServerConfig holds the configuration for the translation server.
type ServerConfig struct {
	Addr           string            // listen address (default: "0.0.0.0:8000")
	AllowedOrigins []string          // CORS origins allowed by browsers (default: localhost dev servers)
	Translator     *morse.Translator // nil selects the default ITU translator
}

// NewServer creates a new Server with the given configuration and sets up
// routing.
func NewServer(cfg ServerConfig) *Server {
	if cfg.Addr == "" {
		cfg.Addr = "0.0.0.0:8000"
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:3001",
			"http://127.0.0.1:3001",
		}
	}
	if cfg.Translator == nil {
		cfg.Translator = morse.NewTranslator(nil)
	}

	s := &Server{
		translator: cfg.Translator,
		validate:   validator.New(),
		addr:       cfg.Addr,
	}
	s.router = s.buildRouter(cfg.AllowedOrigins)
	return s
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the HTTP server on the configured address with
// appropriate timeouts to prevent resource exhaustion from slow clients.
func (s *Server) ListenAndServe() error {
	return s.httpServer().ListenAndServe()
}

// Run starts the server and shuts it down gracefully when ctx is cancelled,
// giving in-flight requests a short drain window.
func (s *Server) Run(ctx context.Context) error {
	srv := s.httpServer()
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) httpServer() *http.Server {
	return &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter(allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	// Top-level routes
	r.Get("/", s.handleRoot)
	r.Get("/ping", s.handlePing)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/supported-characters", s.handleSupportedCharacters)
		r.Post("/translate/english-to-morse", s.handleEnglishToMorse)
		r.Post("/translate/morse-to-english", s.handleMorseToEnglish)
	})

	return r
}

// Package httpapi exposes the planning pipeline over HTTP.
package httpapi

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/wayfarer-dev/wayfarer/internal/costing"
	"github.com/wayfarer-dev/wayfarer/internal/repository"
	"github.com/wayfarer-dev/wayfarer/internal/service"
)

// Server hosts the trip planning API.
type Server struct {
	orchestrator service.Orchestrator
	trips        repository.TripRepo
	estimator    *costing.Model
	http         *http.Server
}

// NewServer builds the router and middleware chain.
func NewServer(addr string, orchestrator service.Orchestrator, trips repository.TripRepo, estimator *costing.Model) *Server {
	s := &Server{
		orchestrator: orchestrator,
		trips:        trips,
		estimator:    estimator,
	}

	limiter := NewRateLimiter(rate.Limit(2), 5)

	router := httprouter.New()
	router.GET("/health", s.handleHealth)
	router.GET("/api/estimate", s.handleEstimate)
	router.POST("/api/trips/plan", limiter.Limit(s.handlePlanTrip))
	router.GET("/api/trips", s.handleListTrips)
	router.GET("/api/trips/:id", s.handleGetTrip)
	router.GET("/api/trips/:id/pdf", s.handleTripPDF)
	router.DELETE("/api/trips/:id", s.handleDeleteTrip)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	s.http = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second, // planning calls can be slow with a live LLM
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	return s
}

// Handler exposes the middleware-wrapped handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// ListenAndServe starts the server and blocks until the context is
// canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.http.Shutdown(shutdownCtx)
}

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

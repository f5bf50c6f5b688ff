package server

import (
	"net/http"

	"resumelens/internal/observability"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	// Add middleware layers with observability
	rateLimitHandler := s.createRateLimitMiddleware(om)
	requestLimitHandler := s.requestSizeLimitMiddleware()

	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/stats", s.statsHandler)
	mux.HandleFunc("/score",
		rateLimitHandler(
			requestLimitHandler(s.createScoreHandler(om)),
		),
	)
	mux.HandleFunc("/quality",
		rateLimitHandler(
			requestLimitHandler(s.createQualityHandler(om)),
		),
	)
	mux.HandleFunc("/suggest/keywords",
		rateLimitHandler(
			requestLimitHandler(s.createKeywordsHandler(om)),
		),
	)
	mux.HandleFunc("/suggest/summary",
		rateLimitHandler(
			requestLimitHandler(s.createSummaryHandler(om)),
		),
	)
	mux.HandleFunc("/suggest/bullets",
		rateLimitHandler(
			requestLimitHandler(s.createBulletsHandler(om)),
		),
	)
	mux.HandleFunc("/suggest/skills",
		rateLimitHandler(
			requestLimitHandler(s.createSkillsHandler(om)),
		),
	)

	return mux
}

// requestSizeLimitMiddleware limits the size of incoming requests
func (s *Server) requestSizeLimitMiddleware() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if s.MaxRequestSize > 0 {
				// Limit the request body size
				r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
			}

			next(w, r)
		}
	}
}

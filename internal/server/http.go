package server

import (
	"time"

	"resumelens/internal/config"
	lensErrors "resumelens/internal/errors"
	"resumelens/internal/types"
)

// ScoreRequest represents the request body for the score endpoint
type ScoreRequest struct {
	Resume types.ResumeSnapshot `json:"resume"`
}

// QualityRequest represents the request body for the quality endpoint.
// Either a single text or a list of texts can be submitted; a list is
// evaluated as one combined corpus.
type QualityRequest struct {
	Text  string   `json:"text,omitempty"`
	Texts []string `json:"texts,omitempty"`
}

// KeywordsRequest represents the request body for keyword extraction
type KeywordsRequest struct {
	JobDescription string `json:"jobDescription"`
}

// SummaryRequest represents the request body for summary suggestions
type SummaryRequest struct {
	JobDescription string   `json:"jobDescription"`
	Experience     string   `json:"experience,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

// BulletsRequest represents the request body for bullet point suggestions
type BulletsRequest struct {
	JobDescription  string   `json:"jobDescription"`
	JobTitle        string   `json:"jobTitle"`
	Company         string   `json:"company,omitempty"`
	ExistingBullets []string `json:"existingBullets,omitempty"`
}

// SkillsRequest represents the request body for skill suggestions
type SkillsRequest struct {
	JobDescription string   `json:"jobDescription"`
	CurrentSkills  []string `json:"currentSkills,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP server
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *lensErrors.Logger
}

// ServerConfig holds configuration for creating a Server instance
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
}

// NewServer creates a new Server instance from a ServerConfig struct
func NewServer(appCfg *config.Config, cfg ServerConfig, logger *lensErrors.Logger) *Server {
	var rateLimiter *RateLimiter
	if cfg.RateLimit != nil && cfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			cfg.RateLimit.RequestsPerMin,
			cfg.RateLimit.Window,
			cfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           cfg.Host,
		Port:           cfg.Port,
		Version:        cfg.Version,
		AppConfig:      appCfg,
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxRequestSize: cfg.MaxRequestSize,
		RateLimit:      cfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}

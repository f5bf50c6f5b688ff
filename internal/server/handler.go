package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"resumelens/internal/ai"
	"resumelens/internal/observability"
	"resumelens/internal/quality"
	"resumelens/internal/scoring"
	"resumelens/internal/types"

	"go.opentelemetry.io/otel/attribute"
)

// createScoreHandler wraps the score handler with observability
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.score")
		defer span.End()

		var req ScoreRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.experience_entries", len(req.Resume.Experience)),
			attribute.Int("request.skills", len(req.Resume.Skills)),
			attribute.String("operation", "score"),
		)

		metrics := om.GetMetrics()
		var result types.ATSScore
		err := metrics.TrackScoring(ctx, "score", func(ctx context.Context) (int, error) {
			result = scoring.Calculate(req.Resume)
			return result.TotalScore, nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "resume_scored", false, om)
			writeErrorResponse(w, "Failed to score resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_scored", true, om,
			attribute.Int("score.total", result.TotalScore),
			attribute.String("score.grade", result.Grade))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("score.total", result.TotalScore),
			attribute.String("score.grade", result.Grade),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createQualityHandler wraps the quality handler with observability
func (s *Server) createQualityHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.quality")
		defer span.End()

		var req QualityRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Text) == "" && len(req.Texts) == 0 {
			err := fmt.Errorf("missing text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing text", "text or texts field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.text_length", len(req.Text)),
			attribute.Int("request.texts", len(req.Texts)),
			attribute.String("operation", "quality"),
		)

		metrics := om.GetMetrics()
		var result types.QualityScore
		err := metrics.TrackScoring(ctx, "quality", func(ctx context.Context) (int, error) {
			if len(req.Texts) > 0 {
				result = quality.EvaluateAll(req.Texts)
			} else {
				result = quality.Evaluate(req.Text)
			}
			return result.TotalScore, nil
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "quality_evaluated", false, om)
			writeErrorResponse(w, "Failed to evaluate content quality", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "quality_evaluated", true, om,
			attribute.Int("quality.total", result.TotalScore))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("quality.total", result.TotalScore),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createKeywordsHandler wraps the keyword extraction handler with observability
func (s *Server) createKeywordsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.suggest.keywords")
		defer span.End()

		var req KeywordsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "keywords"),
		)

		keywordsConfig := s.AppConfig.GetKeywordsConfig()
		aiService, err := ai.NewService(&keywordsConfig, "keywords", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		input := types.ExtractKeywordsInput{JobDescription: req.JobDescription}

		metrics := om.GetMetrics()
		var result types.KeywordExtraction
		err = metrics.TrackAIOperationWithTokens(ctx, "keywords", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.ExtractKeywords(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "suggestion_generated", false, om,
				attribute.String("suggestion.kind", "keywords"))
			writeErrorResponse(w, "Failed to extract keywords", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "suggestion_generated", true, om,
			attribute.String("suggestion.kind", "keywords"),
			attribute.Int("keywords.skills", len(result.Skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("keywords.skills", len(result.Skills)),
			attribute.Int("keywords.total", len(result.Keywords)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createSummaryHandler wraps the summary suggestion handler with observability
func (s *Server) createSummaryHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.suggest.summary")
		defer span.End()

		var req SummaryRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.String("operation", "summary"),
		)

		summaryConfig := s.AppConfig.GetSummaryConfig()
		aiService, err := ai.NewService(&summaryConfig, "summary", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		input := types.SuggestSummaryInput{
			JobDescription: req.JobDescription,
			Experience:     req.Experience,
			Skills:         req.Skills,
		}

		metrics := om.GetMetrics()
		var result types.SummarySuggestions
		err = metrics.TrackAIOperationWithTokens(ctx, "summary", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.SuggestSummaries(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "suggestion_generated", false, om,
				attribute.String("suggestion.kind", "summary"))
			writeErrorResponse(w, "Failed to suggest summaries", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "suggestion_generated", true, om,
			attribute.String("suggestion.kind", "summary"),
			attribute.Int("summary.options", len(result.Summaries)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("summary.options", len(result.Summaries)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createBulletsHandler wraps the bullet suggestion handler with observability
func (s *Server) createBulletsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.suggest.bullets")
		defer span.End()

		var req BulletsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.JobTitle) == "" {
			err := fmt.Errorf("missing job title")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job title", "jobTitle field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.Int("request.existing_bullets", len(req.ExistingBullets)),
			attribute.String("operation", "bullets"),
		)

		bulletsConfig := s.AppConfig.GetBulletsConfig()
		aiService, err := ai.NewService(&bulletsConfig, "bullets", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		input := types.SuggestBulletsInput{
			JobDescription:  req.JobDescription,
			JobTitle:        req.JobTitle,
			Company:         req.Company,
			ExistingBullets: req.ExistingBullets,
		}

		metrics := om.GetMetrics()
		var result types.BulletSuggestions
		err = metrics.TrackAIOperationWithTokens(ctx, "bullets", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.SuggestBullets(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "suggestion_generated", false, om,
				attribute.String("suggestion.kind", "bullets"))
			writeErrorResponse(w, "Failed to suggest bullet points", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "suggestion_generated", true, om,
			attribute.String("suggestion.kind", "bullets"),
			attribute.Int("bullets.count", len(result.BulletPoints)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("bullets.count", len(result.BulletPoints)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createSkillsHandler wraps the skill suggestion handler with observability
func (s *Server) createSkillsHandler(om *observability.ObservabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("resumelens.api")
		ctx, span := tracer.Start(ctx, "api.suggest.skills")
		defer span.End()

		var req SkillsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.JobDescription) == "" {
			err := fmt.Errorf("missing job description")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing job description", "jobDescription field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.job_length", len(req.JobDescription)),
			attribute.Int("request.current_skills", len(req.CurrentSkills)),
			attribute.String("operation", "skills"),
		)

		skillsConfig := s.AppConfig.GetSkillsConfig()
		aiService, err := ai.NewService(&skillsConfig, "skills", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		input := types.SuggestSkillsInput{
			JobDescription: req.JobDescription,
			CurrentSkills:  req.CurrentSkills,
		}

		metrics := om.GetMetrics()
		var result types.SkillSuggestions
		err = metrics.TrackAIOperationWithTokens(ctx, "skills", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.SuggestSkills(ctx, input)
			result = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		}, om)

		if err != nil {
			span.RecordError(err)
			metrics.RecordBusinessMetric(ctx, "suggestion_generated", false, om,
				attribute.String("suggestion.kind", "skills"))
			writeErrorResponse(w, "Failed to suggest skills", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "suggestion_generated", true, om,
			attribute.String("suggestion.kind", "skills"),
			attribute.Int("skills.count", len(result.Skills)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("skills.count", len(result.Skills)),
		)

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			span.RecordError(err)
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// createRateLimitMiddleware adds observability to rate limiting
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(http.HandlerFunc) http.HandlerFunc {
	originalMiddleware := s.rateLimitMiddleware()

	return func(next http.HandlerFunc) http.HandlerFunc {
		limited := originalMiddleware(next)
		return func(w http.ResponseWriter, r *http.Request) {
			// Wrap the ResponseWriter to detect rate limit responses
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: 200}

			limited(wrapper, r)

			// If rate limited, record metric
			if wrapper.statusCode == http.StatusTooManyRequests {
				metrics := om.GetMetrics()
				metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", true, om,
					attribute.String("endpoint", r.URL.Path),
					attribute.String("method", r.Method))
			}
		}
	}
}

// responseWrapper wraps http.ResponseWriter to capture status code
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

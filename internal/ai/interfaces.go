package ai

import (
	"context"

	"resumelens/internal/types"
)

// AIProvider interface for different AI implementations
// All methods return token usage information - callers can ignore it if not needed
type AIProvider interface {
	ExtractKeywords(ctx context.Context, input types.ExtractKeywordsInput) (types.KeywordExtraction, *TokenUsage, error)
	SuggestSummaries(ctx context.Context, input types.SuggestSummaryInput) (types.SummarySuggestions, *TokenUsage, error)
	SuggestBullets(ctx context.Context, input types.SuggestBulletsInput) (types.BulletSuggestions, *TokenUsage, error)
	SuggestSkills(ctx context.Context, input types.SuggestSkillsInput) (types.SkillSuggestions, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}

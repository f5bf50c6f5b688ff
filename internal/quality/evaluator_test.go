package quality

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestEvaluateEmptyInput(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "spaces only", text: "   "},
		{name: "tabs and newlines", text: "\t\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.text)
			if score != (types.QualityScore{}) {
				t.Errorf("expected zero score, got %+v", score)
			}
		})
	}
}

func TestEvaluateActionVerbs(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedFound int
		expectedScore int
	}{
		{
			name:          "no verbs",
			text:          "worked on various things at the company",
			expectedFound: 0,
			expectedScore: 0,
		},
		{
			name:          "single verb",
			text:          "Led the platform team",
			expectedFound: 1,
			expectedScore: 2,
		},
		{
			name:          "two verbs",
			text:          "Led the team and managed the budget",
			expectedFound: 2,
			expectedScore: 4,
		},
		{
			name:          "three verbs",
			text:          "Designed built and deployed the service",
			expectedFound: 3,
			expectedScore: 6,
		},
		{
			name:          "five distinct verbs",
			text:          "Led managed designed built and deployed everything",
			expectedFound: 5,
			expectedScore: 8,
		},
		{
			name:          "trailing punctuation blocks the word match",
			text:          "Designed, the service",
			expectedFound: 0,
			expectedScore: 0,
		},
		{
			name:          "repeated verb counts once",
			text:          "managed projects, managed people, managed budgets",
			expectedFound: 1,
			expectedScore: 2,
		},
		{
			name:          "uppercase text",
			text:          "LED AND MANAGED THE TEAM",
			expectedFound: 2,
			expectedScore: 4,
		},
		{
			name:          "verb embedded in a larger word does not match",
			text:          "misled the audit committee",
			expectedFound: 0,
			expectedScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.text)
			if score.Details.ActionVerbsFound != tt.expectedFound {
				t.Errorf("expected %d verbs found, got %d", tt.expectedFound, score.Details.ActionVerbsFound)
			}
			if score.ActionVerbsScore != tt.expectedScore {
				t.Errorf("expected verb score %d, got %d", tt.expectedScore, score.ActionVerbsScore)
			}
		})
	}
}

func TestEvaluateMetrics(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedFound int
		expectedScore int
	}{
		{
			name:          "no metrics",
			text:          "improved performance across the board",
			expectedFound: 0,
			expectedScore: 0,
		},
		{
			name:          "single percentage",
			text:          "increased throughput by 40%",
			expectedFound: 1,
			expectedScore: 2,
		},
		{
			name:          "every occurrence counts",
			text:          "cut latency by 20% and costs by 30%",
			expectedFound: 2,
			expectedScore: 4,
		},
		{
			name:          "multiplier is case-insensitive",
			text:          "achieved a 10X speedup",
			expectedFound: 1,
			expectedScore: 2,
		},
		{
			name:          "money and open-ended counts",
			text:          "saved $200 per month and onboarded 50+ customers",
			expectedFound: 2, // $200 and 50+
			expectedScore: 4,
		},
		{
			name:          "units of scale and time",
			text:          "served 3 million users over 2 years",
			expectedFound: 2, // 3 million and 2 years
			expectedScore: 4,
		},
		{
			name:          "counts of people",
			text:          "supported 40 customers and 12 employees",
			expectedFound: 2,
			expectedScore: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.text)
			if score.Details.MetricsFound != tt.expectedFound {
				t.Errorf("expected %d metrics found, got %d", tt.expectedFound, score.Details.MetricsFound)
			}
			if score.MetricsScore != tt.expectedScore {
				t.Errorf("expected metrics score %d, got %d", tt.expectedScore, score.MetricsScore)
			}
		})
	}
}

func TestEvaluateTechnicalDepth(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedFound int
		expectedScore int
	}{
		{
			name:          "no technical terms",
			text:          "great communicator and leader",
			expectedFound: 0,
			expectedScore: 0,
		},
		{
			name:          "single term",
			text:          "maintained the docker images",
			expectedFound: 1,
			expectedScore: 2,
		},
		{
			name:          "three terms",
			text:          "ran docker and kubernetes in the cloud",
			expectedFound: 3,
			expectedScore: 4,
		},
		{
			name:          "five terms",
			text:          "owned the api architecture, caching, database and ci/cd setup",
			expectedFound: 5,
			expectedScore: 6,
		},
		{
			name:          "two terms stay in the low band",
			text:          "wrote scalable microservices",
			expectedFound: 2,
			expectedScore: 2,
		},
		{
			name:          "terms match inside larger words",
			text:          "spent a year reshaping the team roadmap",
			expectedFound: 1,
			expectedScore: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.text)
			if score.Details.TechnicalTermsFound != tt.expectedFound {
				t.Errorf("expected %d technical terms, got %d", tt.expectedFound, score.Details.TechnicalTermsFound)
			}
			if score.TechnicalDepthScore != tt.expectedScore {
				t.Errorf("expected technical score %d, got %d", tt.expectedScore, score.TechnicalDepthScore)
			}
		})
	}
}

func TestEvaluateProfessionalTone(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectGeneric bool
		expectedScore int
	}{
		{
			name:          "clean text gets full tone score",
			text:          "delivered the migration ahead of schedule",
			expectGeneric: false,
			expectedScore: 3,
		},
		{
			name:          "responsible for",
			text:          "Responsible for the nightly batch jobs",
			expectGeneric: true,
			expectedScore: 0,
		},
		{
			name:          "team player",
			text:          "A true Team Player who delivers",
			expectGeneric: true,
			expectedScore: 0,
		},
		{
			name:          "helped with",
			text:          "helped with customer onboarding",
			expectGeneric: true,
			expectedScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Evaluate(tt.text)
			if score.Details.HasGenericPhrases != tt.expectGeneric {
				t.Errorf("expected hasGenericPhrases=%v, got %v", tt.expectGeneric, score.Details.HasGenericPhrases)
			}
			if score.ProfessionalToneScore != tt.expectedScore {
				t.Errorf("expected tone score %d, got %d", tt.expectedScore, score.ProfessionalToneScore)
			}
		})
	}
}

func TestEvaluateTotalScore(t *testing.T) {
	score := Evaluate("Led a team of 5 engineers, increased throughput by 40%")

	if score.ActionVerbsScore != 4 {
		t.Errorf("expected verb score 4, got %d", score.ActionVerbsScore)
	}
	if score.MetricsScore != 2 {
		t.Errorf("expected metrics score 2, got %d", score.MetricsScore)
	}
	if score.ProfessionalToneScore != 3 {
		t.Errorf("expected tone score 3, got %d", score.ProfessionalToneScore)
	}

	expectedTotal := score.ActionVerbsScore + score.MetricsScore + score.TechnicalDepthScore + score.ProfessionalToneScore
	if score.TotalScore != expectedTotal {
		t.Errorf("total %d does not equal sum of components %d", score.TotalScore, expectedTotal)
	}
	if score.TotalScore < 0 || score.TotalScore > 25 {
		t.Errorf("total score %d out of range [0,25]", score.TotalScore)
	}
}

func TestEvaluateAll(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{
			name:  "blanks are skipped",
			texts: []string{"Led the rollout", "", "   ", "reduced costs by 15%"},
		},
		{
			name:  "single entry",
			texts: []string{"Built the deployment pipeline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := make([]string, 0, len(tt.texts))
			for _, text := range tt.texts {
				if strings.TrimSpace(text) != "" {
					parts = append(parts, text)
				}
			}
			expected := Evaluate(strings.Join(parts, " "))

			got := EvaluateAll(tt.texts)
			if got != expected {
				t.Errorf("expected %+v, got %+v", expected, got)
			}
		})
	}

	t.Run("all blank entries", func(t *testing.T) {
		got := EvaluateAll([]string{"", "  ", "\n"})
		if got.TotalScore != 0 {
			t.Errorf("expected total score 0, got %d", got.TotalScore)
		}
	})

	t.Run("nil slice", func(t *testing.T) {
		got := EvaluateAll(nil)
		if got.TotalScore != 0 {
			t.Errorf("expected total score 0, got %d", got.TotalScore)
		}
	})
}

func TestFeedback(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected string
	}{
		{name: "excellent", score: 22, expected: "Excellent! Strong action verbs and quantifiable achievements."},
		{name: "excellent boundary", score: 20, expected: "Excellent! Strong action verbs and quantifiable achievements."},
		{name: "good boundary", score: 15, expected: "Good! Consider adding more metrics and specific achievements."},
		{name: "fair boundary", score: 10, expected: "Fair. Add more action verbs and quantify your impact."},
		{name: "needs improvement boundary", score: 5, expected: "Needs improvement. Focus on action verbs and measurable results."},
		{name: "weak", score: 2, expected: "Weak content. Use strong action verbs and include specific metrics."},
		{name: "zero", score: 0, expected: "Weak content. Use strong action verbs and include specific metrics."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Feedback(tt.score); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func BenchmarkEvaluate(b *testing.B) {
	text := strings.Repeat("Led a team of 5 engineers, designed the api architecture and increased throughput by 40%. ", 20)
	for b.Loop() {
		Evaluate(text)
	}
}

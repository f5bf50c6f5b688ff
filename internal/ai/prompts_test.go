package ai

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func TestSystemPromptFor(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		expected   string
	}{
		{
			name:       "empty config uses the built-in prompt",
			configured: "",
			expected:   DefaultSystemPrompts.ExtractKeywords,
		},
		{
			name:       "whitespace-only config uses the built-in prompt",
			configured: "  \n\t",
			expected:   DefaultSystemPrompts.ExtractKeywords,
		},
		{
			name:       "configured prompt wins",
			configured: "You extract keywords in French.",
			expected:   "You extract keywords in French.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := systemPromptFor(tt.configured, DefaultSystemPrompts.ExtractKeywords)
			if got != tt.expected {
				t.Errorf("systemPromptFor(%q) = %q, want %q", tt.configured, got, tt.expected)
			}
		})
	}
}

func TestBuildKeywordsPrompt(t *testing.T) {
	prompt := buildKeywordsPrompt(types.ExtractKeywordsInput{
		JobDescription: "Senior Go engineer building distributed systems",
	})

	for _, want := range []string{
		"skills:",
		"responsibilities:",
		"qualifications:",
		"actionVerbs:",
		"keywords:",
		"Senior Go engineer building distributed systems",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("Expected prompt to contain %q", want)
		}
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	tests := []struct {
		name        string
		input       types.SuggestSummaryInput
		mustContain []string
		mustOmit    []string
	}{
		{
			name: "job description only",
			input: types.SuggestSummaryInput{
				JobDescription: "Platform engineer role",
			},
			mustContain: []string{"3 professional resume summary options", "Platform engineer role"},
			mustOmit:    []string{"experience in:", "skills include:"},
		},
		{
			name: "with experience and skills",
			input: types.SuggestSummaryInput{
				JobDescription: "Platform engineer role",
				Experience:     "5 years of backend development",
				Skills:         []string{"Go", "Kubernetes"},
			},
			mustContain: []string{
				"experience in: 5 years of backend development",
				"skills include: Go, Kubernetes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildSummaryPrompt(tt.input)

			for _, want := range tt.mustContain {
				if !strings.Contains(prompt, want) {
					t.Errorf("Expected prompt to contain %q", want)
				}
			}
			for _, unwanted := range tt.mustOmit {
				if strings.Contains(prompt, unwanted) {
					t.Errorf("Expected prompt to omit %q", unwanted)
				}
			}
		})
	}
}

func TestBuildBulletsPrompt(t *testing.T) {
	tests := []struct {
		name        string
		input       types.SuggestBulletsInput
		mustContain []string
		mustOmit    []string
	}{
		{
			name: "title without company",
			input: types.SuggestBulletsInput{
				JobTitle:       "Software Engineer",
				JobDescription: "Build APIs",
			},
			mustContain: []string{"bullet points for a Software Engineer.\n"},
			mustOmit:    []string{" at "},
		},
		{
			name: "title with company",
			input: types.SuggestBulletsInput{
				JobTitle:       "Software Engineer",
				Company:        "Acme",
				JobDescription: "Build APIs",
			},
			mustContain: []string{"bullet points for a Software Engineer at Acme.\n"},
		},
		{
			name: "existing bullets are listed for deduplication",
			input: types.SuggestBulletsInput{
				JobTitle:        "Software Engineer",
				JobDescription:  "Build APIs",
				ExistingBullets: []string{"Led migration to Go", "Reduced latency by 40%"},
			},
			mustContain: []string{"Avoid duplicating these existing bullets: Led migration to Go; Reduced latency by 40%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt := buildBulletsPrompt(tt.input)

			for _, want := range tt.mustContain {
				if !strings.Contains(prompt, want) {
					t.Errorf("Expected prompt to contain %q", want)
				}
			}
			for _, unwanted := range tt.mustOmit {
				if strings.Contains(prompt, unwanted) {
					t.Errorf("Expected prompt to omit %q", unwanted)
				}
			}
		})
	}
}

func TestBuildSkillsPrompt(t *testing.T) {
	t.Run("no current skills asks for top 10", func(t *testing.T) {
		prompt := buildSkillsPrompt(types.SuggestSkillsInput{
			JobDescription: "DevOps role",
		})

		if !strings.Contains(prompt, "top 10 most important skills") {
			t.Error("Expected top-10 request when candidate has no skills listed")
		}
		if strings.Contains(prompt, "already has these skills") {
			t.Error("Expected no current-skills line when none given")
		}
	})

	t.Run("current skills switch to additive suggestions", func(t *testing.T) {
		prompt := buildSkillsPrompt(types.SuggestSkillsInput{
			JobDescription: "DevOps role",
			CurrentSkills:  []string{"Docker", "Terraform"},
		})

		if !strings.Contains(prompt, "already has these skills: Docker, Terraform") {
			t.Error("Expected current skills to be listed")
		}
		if strings.Contains(prompt, "top 10 most important skills") {
			t.Error("Expected top-10 request to be replaced by additive suggestions")
		}
	})
}

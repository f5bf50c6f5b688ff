package formatters

import (
	"strings"
	"testing"

	"resumelens/internal/types"
)

func sampleATSScore() types.ATSScore {
	return types.ATSScore{
		TotalScore: 82,
		Breakdown: types.ScoreBreakdown{
			ContactInfo: 10,
			Summary:     11,
			Experience:  23,
			Education:   15,
			Skills:      8,
			Projects:    7,
			Formatting:  8,
		},
		Feedback: []string{
			"Strong resume. Polish the details to stand out even more.",
			"Add more projects to showcase your work (2+ recommended)",
		},
		Grade: "B",
	}
}

func TestFormatATSScoreText(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleATSScore(), "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{"82/100", "Grade B", "Experience:   23/30", "Add more projects"} {
		if !strings.Contains(output, want) {
			t.Errorf("text output missing %q:\n%s", want, output)
		}
	}
}

func TestFormatATSScoreMarkdown(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleATSScore(), "markdown")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	for _, want := range []string{"# ATS Score", "| Experience | 23 | 30 |", "## Feedback"} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q:\n%s", want, output)
		}
	}
}

func TestFormatQualityScoreText(t *testing.T) {
	score := types.QualityScore{
		ActionVerbsScore:      6,
		MetricsScore:          4,
		TechnicalDepthScore:   4,
		ProfessionalToneScore: 3,
		TotalScore:            17,
		Details: types.QualityDetails{
			ActionVerbsFound:    4,
			MetricsFound:        2,
			TechnicalTermsFound: 3,
		},
	}

	output, err := GlobalRegistry.Format(score, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(output, "Total: 17/25") {
		t.Errorf("quality output missing total:\n%s", output)
	}
	if !strings.Contains(output, "Good content") {
		t.Errorf("quality output missing feedback band:\n%s", output)
	}
	if strings.Contains(output, "Generic phrases detected") {
		t.Errorf("quality output should not flag generic phrases:\n%s", output)
	}
}

func TestFormatSuggestionsText(t *testing.T) {
	keywords := types.KeywordExtraction{
		Skills:   []string{"Go", "Kubernetes"},
		Keywords: []string{"distributed systems"},
	}
	output, err := GlobalRegistry.Format(keywords, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(output, "- Kubernetes") {
		t.Errorf("keywords output missing skill:\n%s", output)
	}
	if strings.Contains(output, "Responsibilities:") {
		t.Errorf("empty category should be skipped:\n%s", output)
	}

	skills := types.SkillSuggestions{
		Skills: []types.SkillSuggestion{
			{Skill: "Terraform", MatchPercentage: 85},
			{Skill: "gRPC", MatchPercentage: 70},
		},
	}
	out, err := GlobalRegistry.Format(skills, "text")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(out, "Terraform (85% match)") {
		t.Errorf("skills output missing match line:\n%s", out)
	}
}

func TestFormatJSONFallback(t *testing.T) {
	output, err := GlobalRegistry.Format(map[string]int{"total": 5}, "json")
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(output, "\"total\": 5") {
		t.Errorf("json output unexpected:\n%s", output)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleATSScore(), "yaml"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestGetSupportedFormats(t *testing.T) {
	formats := GlobalRegistry.GetSupportedFormats()
	want := map[string]bool{"json": false, "text": false, "markdown": false}
	for _, f := range formats {
		if _, ok := want[f]; ok {
			want[f] = true
		}
	}
	for f, seen := range want {
		if !seen {
			t.Errorf("missing supported format %q", f)
		}
	}
}

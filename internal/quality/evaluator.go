// Package quality implements the rule-based content quality evaluator.
// Free text is scored on four axes: action verbs (0-8), metrics (0-8),
// technical depth (0-6) and professional tone (0-3), for a 0-25 total.
package quality

import (
	"strings"

	"resumelens/internal/types"
)

// Evaluate scores a single block of free text. Empty or whitespace-only
// input returns the zero score with zeroed details.
func Evaluate(text string) types.QualityScore {
	if strings.TrimSpace(text) == "" {
		return types.QualityScore{}
	}

	lowerText := strings.ToLower(text)

	words := make(map[string]struct{})
	for _, w := range strings.Fields(lowerText) {
		words[w] = struct{}{}
	}

	actionVerbsFound := 0
	for _, verb := range actionVerbs {
		if _, ok := words[verb]; ok {
			actionVerbsFound++
			continue
		}
		if _, ok := words[verb+"ed"]; ok {
			actionVerbsFound++
			continue
		}
		if _, ok := words[verb+"ing"]; ok {
			actionVerbsFound++
		}
	}

	// Metric patterns run against the original text; the case-insensitive
	// ones carry their own flag.
	metricsFound := 0
	for _, pattern := range metricPatterns {
		metricsFound += len(pattern.FindAllString(text, -1))
	}

	technicalTermsFound := 0
	for _, term := range technicalIndicators {
		if strings.Contains(lowerText, term) {
			technicalTermsFound++
		}
	}

	hasGenericPhrases := false
	for _, phrase := range genericPhrases {
		if strings.Contains(lowerText, phrase) {
			hasGenericPhrases = true
			break
		}
	}

	professionalToneScore := 3
	if hasGenericPhrases {
		professionalToneScore = 0
	}

	actionVerbsScore := tierScore(actionVerbsFound)
	metricsScore := tierScore(metricsFound)
	technicalDepthScore := technicalTier(technicalTermsFound)

	return types.QualityScore{
		ActionVerbsScore:      actionVerbsScore,
		MetricsScore:          metricsScore,
		TechnicalDepthScore:   technicalDepthScore,
		ProfessionalToneScore: professionalToneScore,
		TotalScore:            actionVerbsScore + metricsScore + technicalDepthScore + professionalToneScore,
		Details: types.QualityDetails{
			ActionVerbsFound:    actionVerbsFound,
			MetricsFound:        metricsFound,
			TechnicalTermsFound: technicalTermsFound,
			HasGenericPhrases:   hasGenericPhrases,
		},
	}
}

// EvaluateAll joins multiple text sections (for example all experience
// bullet points) and scores them as one corpus. Blank entries are skipped.
func EvaluateAll(texts []string) types.QualityScore {
	parts := make([]string, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) != "" {
			parts = append(parts, t)
		}
	}
	return Evaluate(strings.Join(parts, " "))
}

// Feedback returns the human-readable verdict for a total quality score.
func Feedback(score int) string {
	switch {
	case score >= 20:
		return "Excellent! Strong action verbs and quantifiable achievements."
	case score >= 15:
		return "Good! Consider adding more metrics and specific achievements."
	case score >= 10:
		return "Fair. Add more action verbs and quantify your impact."
	case score >= 5:
		return "Needs improvement. Focus on action verbs and measurable results."
	default:
		return "Weak content. Use strong action verbs and include specific metrics."
	}
}

// tierScore maps a raw hit count to the 0-8 band used by the action verb
// and metric axes.
func tierScore(found int) int {
	switch {
	case found >= 5:
		return 8
	case found >= 3:
		return 6
	case found >= 2:
		return 4
	case found >= 1:
		return 2
	default:
		return 0
	}
}

// technicalTier maps a technical term count to the 0-6 band.
func technicalTier(found int) int {
	switch {
	case found >= 5:
		return 6
	case found >= 3:
		return 4
	case found >= 1:
		return 2
	default:
		return 0
	}
}

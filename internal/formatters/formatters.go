package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"resumelens/internal/quality"
	"resumelens/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "ATSScore", &ScoreTextFormatter{})
	registry.RegisterFormatter("markdown", "ATSScore", &ScoreMarkdownFormatter{})
	registry.RegisterFormatter("text", "QualityScore", &QualityTextFormatter{})
	registry.RegisterFormatter("markdown", "QualityScore", &QualityMarkdownFormatter{})
	registry.RegisterFormatter("text", "KeywordExtraction", &KeywordsTextFormatter{})
	registry.RegisterFormatter("markdown", "KeywordExtraction", &KeywordsMarkdownFormatter{})
	registry.RegisterFormatter("text", "SummarySuggestions", &SummariesTextFormatter{})
	registry.RegisterFormatter("markdown", "SummarySuggestions", &SummariesMarkdownFormatter{})
	registry.RegisterFormatter("text", "BulletSuggestions", &BulletsTextFormatter{})
	registry.RegisterFormatter("markdown", "BulletSuggestions", &BulletsMarkdownFormatter{})
	registry.RegisterFormatter("text", "SkillSuggestions", &SkillsTextFormatter{})
	registry.RegisterFormatter("markdown", "SkillSuggestions", &SkillsMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GlobalRegistry is the default formatter registry
var GlobalRegistry = NewFormatterRegistry()

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.ATSScore:
		return "ATSScore"
	case types.QualityScore:
		return "QualityScore"
	case types.KeywordExtraction:
		return "KeywordExtraction"
	case types.SummarySuggestions:
		return "SummarySuggestions"
	case types.BulletSuggestions:
		return "BulletSuggestions"
	case types.SkillSuggestions:
		return "SkillSuggestions"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// ScoreTextFormatter handles text formatting for ATS scoring results
type ScoreTextFormatter struct{}

func (stf *ScoreTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== ATS SCORE ===\n\n")
	output.WriteString(fmt.Sprintf("Total: %d/100 (Grade %s)\n\n", result.TotalScore, result.Grade))

	output.WriteString("=== BREAKDOWN ===\n")
	output.WriteString(fmt.Sprintf("Contact Info: %d/10\n", result.Breakdown.ContactInfo))
	output.WriteString(fmt.Sprintf("Summary:      %d/15\n", result.Breakdown.Summary))
	output.WriteString(fmt.Sprintf("Experience:   %d/30\n", result.Breakdown.Experience))
	output.WriteString(fmt.Sprintf("Education:    %d/15\n", result.Breakdown.Education))
	output.WriteString(fmt.Sprintf("Skills:       %d/10\n", result.Breakdown.Skills))
	output.WriteString(fmt.Sprintf("Projects:     %d/10\n", result.Breakdown.Projects))
	output.WriteString(fmt.Sprintf("Formatting:   %d/10\n", result.Breakdown.Formatting))
	output.WriteString("\n")

	if len(result.Feedback) > 0 {
		output.WriteString("=== FEEDBACK ===\n")
		for _, item := range result.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	return output.String(), nil
}

func (stf *ScoreTextFormatter) SupportedType() string {
	return "ATSScore"
}

// ScoreMarkdownFormatter handles markdown formatting for ATS scoring results
type ScoreMarkdownFormatter struct{}

func (smf *ScoreMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.ATSScore)
	if !ok {
		return "", fmt.Errorf("expected ATSScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# ATS Score\n\n")
	output.WriteString(fmt.Sprintf("**Total:** %d/100 (Grade %s)\n\n", result.TotalScore, result.Grade))

	output.WriteString("## Breakdown\n\n")
	output.WriteString("| Section | Score | Max |\n")
	output.WriteString("|---------|-------|-----|\n")
	output.WriteString(fmt.Sprintf("| Contact Info | %d | 10 |\n", result.Breakdown.ContactInfo))
	output.WriteString(fmt.Sprintf("| Summary | %d | 15 |\n", result.Breakdown.Summary))
	output.WriteString(fmt.Sprintf("| Experience | %d | 30 |\n", result.Breakdown.Experience))
	output.WriteString(fmt.Sprintf("| Education | %d | 15 |\n", result.Breakdown.Education))
	output.WriteString(fmt.Sprintf("| Skills | %d | 10 |\n", result.Breakdown.Skills))
	output.WriteString(fmt.Sprintf("| Projects | %d | 10 |\n", result.Breakdown.Projects))
	output.WriteString(fmt.Sprintf("| Formatting | %d | 10 |\n", result.Breakdown.Formatting))
	output.WriteString("\n")

	if len(result.Feedback) > 0 {
		output.WriteString("## Feedback\n\n")
		for _, item := range result.Feedback {
			output.WriteString(fmt.Sprintf("- %s\n", item))
		}
	}

	return output.String(), nil
}

func (smf *ScoreMarkdownFormatter) SupportedType() string {
	return "ATSScore"
}

// QualityTextFormatter handles text formatting for content quality results
type QualityTextFormatter struct{}

func (qtf *QualityTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.QualityScore)
	if !ok {
		return "", fmt.Errorf("expected QualityScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== CONTENT QUALITY ===\n\n")
	output.WriteString(fmt.Sprintf("Total: %d/25\n\n", result.TotalScore))

	output.WriteString(fmt.Sprintf("Action Verbs:      %d/8 (%d found)\n", result.ActionVerbsScore, result.Details.ActionVerbsFound))
	output.WriteString(fmt.Sprintf("Metrics:           %d/8 (%d found)\n", result.MetricsScore, result.Details.MetricsFound))
	output.WriteString(fmt.Sprintf("Technical Depth:   %d/6 (%d terms)\n", result.TechnicalDepthScore, result.Details.TechnicalTermsFound))
	output.WriteString(fmt.Sprintf("Professional Tone: %d/3\n", result.ProfessionalToneScore))
	if result.Details.HasGenericPhrases {
		output.WriteString("\nGeneric phrases detected.\n")
	}

	output.WriteString("\n")
	output.WriteString(quality.Feedback(result.TotalScore))
	output.WriteString("\n")

	return output.String(), nil
}

func (qtf *QualityTextFormatter) SupportedType() string {
	return "QualityScore"
}

// QualityMarkdownFormatter handles markdown formatting for content quality results
type QualityMarkdownFormatter struct{}

func (qmf *QualityMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.QualityScore)
	if !ok {
		return "", fmt.Errorf("expected QualityScore, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Content Quality\n\n")
	output.WriteString(fmt.Sprintf("**Total:** %d/25\n\n", result.TotalScore))

	output.WriteString("| Dimension | Score | Max | Found |\n")
	output.WriteString("|-----------|-------|-----|-------|\n")
	output.WriteString(fmt.Sprintf("| Action Verbs | %d | 8 | %d |\n", result.ActionVerbsScore, result.Details.ActionVerbsFound))
	output.WriteString(fmt.Sprintf("| Metrics | %d | 8 | %d |\n", result.MetricsScore, result.Details.MetricsFound))
	output.WriteString(fmt.Sprintf("| Technical Depth | %d | 6 | %d |\n", result.TechnicalDepthScore, result.Details.TechnicalTermsFound))
	output.WriteString(fmt.Sprintf("| Professional Tone | %d | 3 | - |\n", result.ProfessionalToneScore))
	output.WriteString("\n")

	if result.Details.HasGenericPhrases {
		output.WriteString("Generic phrases detected.\n\n")
	}

	output.WriteString(quality.Feedback(result.TotalScore))
	output.WriteString("\n")

	return output.String(), nil
}

func (qmf *QualityMarkdownFormatter) SupportedType() string {
	return "QualityScore"
}

// KeywordsTextFormatter handles text formatting for keyword extraction results
type KeywordsTextFormatter struct{}

func (ktf *KeywordsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.KeywordExtraction)
	if !ok {
		return "", fmt.Errorf("expected KeywordExtraction, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== EXTRACTED KEYWORDS ===\n\n")
	writeTextList(&output, "Skills", result.Skills)
	writeTextList(&output, "Responsibilities", result.Responsibilities)
	writeTextList(&output, "Qualifications", result.Qualifications)
	writeTextList(&output, "Action Verbs", result.ActionVerbs)
	writeTextList(&output, "Keywords", result.Keywords)

	return output.String(), nil
}

func (ktf *KeywordsTextFormatter) SupportedType() string {
	return "KeywordExtraction"
}

// KeywordsMarkdownFormatter handles markdown formatting for keyword extraction results
type KeywordsMarkdownFormatter struct{}

func (kmf *KeywordsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.KeywordExtraction)
	if !ok {
		return "", fmt.Errorf("expected KeywordExtraction, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Extracted Keywords\n\n")
	writeMarkdownList(&output, "Skills", result.Skills)
	writeMarkdownList(&output, "Responsibilities", result.Responsibilities)
	writeMarkdownList(&output, "Qualifications", result.Qualifications)
	writeMarkdownList(&output, "Action Verbs", result.ActionVerbs)
	writeMarkdownList(&output, "Keywords", result.Keywords)

	return output.String(), nil
}

func (kmf *KeywordsMarkdownFormatter) SupportedType() string {
	return "KeywordExtraction"
}

// SummariesTextFormatter handles text formatting for summary suggestions
type SummariesTextFormatter struct{}

func (stf *SummariesTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SummarySuggestions)
	if !ok {
		return "", fmt.Errorf("expected SummarySuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SUMMARY SUGGESTIONS ===\n\n")
	for i, summary := range result.Summaries {
		output.WriteString(fmt.Sprintf("%d. %s\n\n", i+1, summary))
	}

	return output.String(), nil
}

func (stf *SummariesTextFormatter) SupportedType() string {
	return "SummarySuggestions"
}

// SummariesMarkdownFormatter handles markdown formatting for summary suggestions
type SummariesMarkdownFormatter struct{}

func (smf *SummariesMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SummarySuggestions)
	if !ok {
		return "", fmt.Errorf("expected SummarySuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Summary Suggestions\n\n")
	for i, summary := range result.Summaries {
		output.WriteString(fmt.Sprintf("## Option %d\n\n%s\n\n", i+1, summary))
	}

	return output.String(), nil
}

func (smf *SummariesMarkdownFormatter) SupportedType() string {
	return "SummarySuggestions"
}

// BulletsTextFormatter handles text formatting for bullet point suggestions
type BulletsTextFormatter struct{}

func (btf *BulletsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.BulletSuggestions)
	if !ok {
		return "", fmt.Errorf("expected BulletSuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== BULLET POINT SUGGESTIONS ===\n\n")
	for _, bullet := range result.BulletPoints {
		output.WriteString(fmt.Sprintf("- %s\n", bullet))
	}

	return output.String(), nil
}

func (btf *BulletsTextFormatter) SupportedType() string {
	return "BulletSuggestions"
}

// BulletsMarkdownFormatter handles markdown formatting for bullet point suggestions
type BulletsMarkdownFormatter struct{}

func (bmf *BulletsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.BulletSuggestions)
	if !ok {
		return "", fmt.Errorf("expected BulletSuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Bullet Point Suggestions\n\n")
	for _, bullet := range result.BulletPoints {
		output.WriteString(fmt.Sprintf("- %s\n", bullet))
	}

	return output.String(), nil
}

func (bmf *BulletsMarkdownFormatter) SupportedType() string {
	return "BulletSuggestions"
}

// SkillsTextFormatter handles text formatting for skill suggestions
type SkillsTextFormatter struct{}

func (stf *SkillsTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillSuggestions)
	if !ok {
		return "", fmt.Errorf("expected SkillSuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== SKILL SUGGESTIONS ===\n\n")
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("- %s (%d%% match)\n", skill.Skill, skill.MatchPercentage))
	}

	return output.String(), nil
}

func (stf *SkillsTextFormatter) SupportedType() string {
	return "SkillSuggestions"
}

// SkillsMarkdownFormatter handles markdown formatting for skill suggestions
type SkillsMarkdownFormatter struct{}

func (smf *SkillsMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SkillSuggestions)
	if !ok {
		return "", fmt.Errorf("expected SkillSuggestions, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Skill Suggestions\n\n")
	output.WriteString("| Skill | Match |\n")
	output.WriteString("|-------|-------|\n")
	for _, skill := range result.Skills {
		output.WriteString(fmt.Sprintf("| %s | %d%% |\n", skill.Skill, skill.MatchPercentage))
	}

	return output.String(), nil
}

func (smf *SkillsMarkdownFormatter) SupportedType() string {
	return "SkillSuggestions"
}

func writeTextList(output *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(title)
	output.WriteString(":\n")
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

func writeMarkdownList(output *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	output.WriteString(fmt.Sprintf("## %s\n\n", title))
	for _, item := range items {
		output.WriteString(fmt.Sprintf("- %s\n", item))
	}
	output.WriteString("\n")
}

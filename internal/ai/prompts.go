package ai

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	ExtractKeywords string
	SuggestSummary  string
	SuggestBullets  string
	SuggestSkills   string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	ExtractKeywords: `You are an expert recruitment analyst specializing in job description analysis. Your core principles are:

- Extract only information that is explicitly present in the job description
- Never invent skills, responsibilities, or qualifications the posting does not mention
- Prefer the vocabulary the posting itself uses over synonyms
- Keep every extracted item short and scannable`,

	SuggestSummary: `You are an expert resume writer who drafts professional summaries. Your core principles are:

- Every summary must be 2-3 sentences, professional, and tailored to the target job
- Incorporate relevant keywords from the job description naturally
- Never fabricate experience or skills the candidate has not reported
- Vary the angle across options so the candidate has a real choice`,

	SuggestBullets: `You are an expert resume writer who drafts work experience bullet points. Your core principles are:

- Every bullet starts with a strong action verb
- Include quantifiable achievements wherever plausible for the role
- Keep each bullet to 1-2 lines
- Stay relevant to the target job description and never duplicate bullets the candidate already has`,

	SuggestSkills: `You are an expert recruitment analyst who maps job requirements to candidate skills. Your core principles are:

- Suggest only skills that are genuinely relevant to the job description
- Rate each skill's importance for the role as a match percentage between 60 and 100
- When the candidate lists existing skills, suggest additions rather than repeats`,
}

// systemPromptFor returns the operator-configured system prompt for an
// operation, falling back to the built-in default when none is set.
func systemPromptFor(configured, fallback string) string {
	if strings.TrimSpace(configured) != "" {
		return configured
	}
	return fallback
}

// buildKeywordsPrompt formats the user prompt for keyword extraction
func buildKeywordsPrompt(input types.ExtractKeywordsInput) string {
	return fmt.Sprintf(`Analyze the following job description and extract key information.

Categories to extract:
1. skills: Technical and soft skills mentioned
2. responsibilities: Key job responsibilities (max 5 items)
3. qualifications: Required/preferred qualifications (max 5 items)
4. actionVerbs: Strong action verbs used in the job description (max 8 items)
5. keywords: Important industry keywords and buzzwords (max 6 items)

Job Description:
-----
%s
-----`, input.JobDescription)
}

// buildSummaryPrompt formats the user prompt for summary suggestions
func buildSummaryPrompt(input types.SuggestSummaryInput) string {
	var sb strings.Builder
	sb.WriteString("Generate 3 professional resume summary options for a candidate applying to the following job.\n")
	sb.WriteString("Each summary should be 2-3 sentences, professional, and tailored to the job requirements.\n")
	sb.WriteString("Include relevant keywords from the job description.\n")
	if input.Experience != "" {
		fmt.Fprintf(&sb, "The candidate has experience in: %s\n", input.Experience)
	}
	if len(input.Skills) > 0 {
		fmt.Fprintf(&sb, "The candidate's skills include: %s\n", strings.Join(input.Skills, ", "))
	}
	fmt.Fprintf(&sb, "\nJob Description:\n-----\n%s\n-----", input.JobDescription)
	return sb.String()
}

// buildBulletsPrompt formats the user prompt for bullet point suggestions
func buildBulletsPrompt(input types.SuggestBulletsInput) string {
	var sb strings.Builder
	if input.Company != "" {
		fmt.Fprintf(&sb, "Generate 5 strong resume bullet points for a %s at %s.\n", input.JobTitle, input.Company)
	} else {
		fmt.Fprintf(&sb, "Generate 5 strong resume bullet points for a %s.\n", input.JobTitle)
	}
	sb.WriteString("Each bullet should:\n")
	sb.WriteString("- Start with a strong action verb\n")
	sb.WriteString("- Include quantifiable achievements when possible\n")
	sb.WriteString("- Be relevant to the target job description\n")
	sb.WriteString("- Be 1-2 lines maximum\n")
	if len(input.ExistingBullets) > 0 {
		fmt.Fprintf(&sb, "Avoid duplicating these existing bullets: %s\n", strings.Join(input.ExistingBullets, "; "))
	}
	fmt.Fprintf(&sb, "\nTarget Job Description:\n-----\n%s\n-----", input.JobDescription)
	return sb.String()
}

// buildSkillsPrompt formats the user prompt for skill suggestions
func buildSkillsPrompt(input types.SuggestSkillsInput) string {
	var sb strings.Builder
	sb.WriteString("Analyze the job description and suggest the most relevant skills.\n")
	sb.WriteString("For each skill, provide a match percentage (how important it is for this job, 60-100%).\n")
	if len(input.CurrentSkills) > 0 {
		fmt.Fprintf(&sb, "The candidate already has these skills: %s. Suggest additional skills they might want to add.\n", strings.Join(input.CurrentSkills, ", "))
	} else {
		sb.WriteString("Suggest the top 10 most important skills for this role.\n")
	}
	fmt.Fprintf(&sb, "\nJob Description:\n-----\n%s\n-----", input.JobDescription)
	return sb.String()
}

// Package scoring implements the rule-based ATS scoring engine. A resume
// snapshot is graded across seven weighted sections for a 0-100 total,
// with a letter grade and ordered improvement feedback. Scoring is pure:
// no I/O, no mutation of the input, deterministic output.
package scoring

import (
	"math"
	"strings"
	"unicode/utf8"

	"resumelens/internal/quality"
	"resumelens/internal/types"
)

// Section ceilings. They sum to 100.
const (
	maxContactInfo = 10
	maxSummary     = 15
	maxExperience  = 30
	maxEducation   = 15
	maxSkills      = 10
	maxProjects    = 10
	maxFormatting  = 10
)

// Calculate scores a resume snapshot. It never fails: a fully empty
// snapshot scores 0 with grade F and one feedback line per missing section.
func Calculate(snapshot types.ResumeSnapshot) types.ATSScore {
	var breakdown types.ScoreBreakdown
	var feedback []string

	score, fb := scoreContactInfo(snapshot.PersonalInfo)
	breakdown.ContactInfo = clamp(score, 0, maxContactInfo)
	feedback = append(feedback, fb...)

	score, fb = scoreSummary(snapshot.Summary)
	breakdown.Summary = clamp(score, 0, maxSummary)
	feedback = append(feedback, fb...)

	score, fb = scoreExperience(snapshot.Experience)
	breakdown.Experience = clamp(score, 0, maxExperience)
	feedback = append(feedback, fb...)

	score, fb = scoreEducation(snapshot.Education)
	breakdown.Education = clamp(score, 0, maxEducation)
	feedback = append(feedback, fb...)

	score, fb = scoreSkills(snapshot.Skills)
	breakdown.Skills = clamp(score, 0, maxSkills)
	feedback = append(feedback, fb...)

	score, fb = scoreProjects(snapshot.Projects)
	breakdown.Projects = clamp(score, 0, maxProjects)
	feedback = append(feedback, fb...)

	score, fb = scoreFormatting(snapshot)
	breakdown.Formatting = clamp(score, 0, maxFormatting)
	feedback = append(feedback, fb...)

	total := clamp(breakdown.ContactInfo+breakdown.Summary+breakdown.Experience+
		breakdown.Education+breakdown.Skills+breakdown.Projects+breakdown.Formatting, 0, 100)

	// The holistic headline always leads the feedback list.
	feedback = append([]string{headline(total)}, feedback...)

	return types.ATSScore{
		TotalScore: total,
		Breakdown:  breakdown,
		Feedback:   feedback,
		Grade:      gradeFor(total),
	}
}

func scoreContactInfo(info types.PersonalInfo) (int, []string) {
	score := 0
	var feedback []string

	if present(info.FirstName) && present(info.LastName) {
		score += 3
	} else {
		feedback = append(feedback, "Add your full name")
	}

	if strings.Contains(info.Email, "@") {
		score += 3
	} else {
		feedback = append(feedback, "Add a valid email address")
	}

	if present(info.Phone) {
		score += 2
	} else {
		feedback = append(feedback, "Add your phone number")
	}

	if present(info.LinkedIn) || present(info.GitHub) {
		score += 2
	} else {
		feedback = append(feedback, "Add LinkedIn or GitHub profile")
	}

	return score, feedback
}

func scoreSummary(summary string) (int, []string) {
	if !present(summary) {
		return 0, []string{"Add a professional summary"}
	}

	var feedback []string
	summaryQuality := quality.Evaluate(summary)
	wordCount := len(strings.Fields(summary))

	// Base points for having a summary at all, plus up to 8 quality points.
	score := 5 + math.Min(8, float64(summaryQuality.TotalScore)/3)

	if wordCount >= 30 && wordCount <= 100 {
		score += 2
	} else if wordCount < 30 {
		feedback = append(feedback, "Summary is too short (aim for 30-100 words)")
	} else {
		feedback = append(feedback, "Summary is too long (aim for 30-100 words)")
	}

	return int(math.Round(score)), feedback
}

func scoreExperience(entries []types.Experience) (int, []string) {
	if len(entries) == 0 {
		return 0, []string{"Add work experience entries"}
	}

	var feedback []string
	score := 0.0

	validEntries := 0
	for _, exp := range entries {
		if present(exp.Company) && present(exp.Title) && present(exp.StartDate) {
			validEntries++
		}
	}
	if validEntries >= 2 {
		score += 10
	} else if validEntries == 1 {
		score += 7
	}

	var bullets []string
	for _, exp := range entries {
		for _, b := range exp.BulletPoints {
			if present(b) {
				bullets = append(bullets, b)
			}
		}
	}

	if len(bullets) > 0 {
		bulletQuality := quality.EvaluateAll(bullets)

		// Up to 15 points for bullet quality, proportional to the 0-25
		// evaluator scale.
		score += math.Min(15, float64(bulletQuality.TotalScore)/25*15)

		if len(bullets) >= 5 {
			score += 5
		} else if len(bullets) >= 3 {
			score += 3
		} else {
			feedback = append(feedback, "Add more bullet points to your experience (aim for 3-5 per role)")
		}
	} else {
		feedback = append(feedback, "Add bullet points describing your responsibilities and achievements")
	}

	return int(math.Round(score)), feedback
}

func scoreEducation(entries []types.Education) (int, []string) {
	if len(entries) == 0 {
		return 0, []string{"Add education information"}
	}

	valid := make([]types.Education, 0, len(entries))
	for _, edu := range entries {
		if present(edu.University) && present(edu.Degree) && present(edu.Field) {
			valid = append(valid, edu)
		}
	}
	if len(valid) == 0 {
		return 0, []string{"Complete your education information (university, degree, field)"}
	}

	score := 10
	for _, edu := range valid {
		if present(edu.StartDate) && present(edu.EndDate) {
			score += 3
			break
		}
	}
	for _, edu := range valid {
		if present(edu.City) {
			score += 2
			break
		}
	}

	return score, nil
}

func scoreSkills(skills []string) (int, []string) {
	if len(skills) == 0 {
		return 0, []string{"Add your technical and professional skills"}
	}

	switch {
	case len(skills) >= 8:
		return 10, nil
	case len(skills) >= 5:
		return 8, nil
	case len(skills) >= 3:
		return 6, nil
	default:
		return 3, []string{"Add more skills (aim for at least 5-8 relevant skills)"}
	}
}

func scoreProjects(projects []types.Project) (int, []string) {
	if len(projects) == 0 {
		return 0, []string{"Consider adding relevant projects"}
	}

	valid := make([]types.Project, 0, len(projects))
	for _, proj := range projects {
		if present(proj.Name) && len(proj.Technologies) > 0 && len(proj.BulletPoints) > 0 {
			valid = append(valid, proj)
		}
	}

	score := 0
	if len(valid) >= 2 {
		score = 10
	} else if len(valid) == 1 {
		score = 7
	}

	if score < maxProjects {
		for _, proj := range valid {
			if present(proj.Link) {
				score++
				break
			}
		}
	}

	return score, nil
}

func scoreFormatting(snapshot types.ResumeSnapshot) (int, []string) {
	score := 10
	var feedback []string

	if utf8.RuneCountInString(snapshot.Summary) > 600 {
		score -= 2
		feedback = append(feedback, "Summary is too long (may be truncated by ATS)")
	}

	sections := 0
	if present(snapshot.Summary) {
		sections++
	}
	if len(snapshot.Experience) > 0 {
		sections++
	}
	if len(snapshot.Education) > 0 {
		sections++
	}
	if len(snapshot.Skills) > 0 {
		sections++
	}
	if len(snapshot.Projects) > 0 {
		sections++
	}
	if sections == 0 {
		// A resume with no content sections has nothing to format.
		return 0, append(feedback, "Add more sections for a complete resume")
	}
	if sections < 3 {
		score -= 3
		feedback = append(feedback, "Add more sections for a complete resume")
	}

	return score, feedback
}

func gradeFor(total int) string {
	switch {
	case total >= 95:
		return "A+"
	case total >= 90:
		return "A"
	case total >= 85:
		return "B+"
	case total >= 80:
		return "B"
	case total >= 70:
		return "C"
	case total >= 60:
		return "D"
	default:
		return "F"
	}
}

func headline(total int) string {
	switch {
	case total >= 90:
		return "Excellent! Your resume is well-optimized for ATS systems."
	case total >= 75:
		return "Good resume! Minor improvements will make it even better."
	case total >= 60:
		return "Fair resume. Follow the suggestions below to improve."
	default:
		return "Your resume needs improvement. Focus on the key areas below."
	}
}

func present(s string) bool {
	return strings.TrimSpace(s) != ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package scoring

import (
	"reflect"
	"strings"
	"testing"

	"resumelens/internal/types"
)

// completeSnapshot returns a resume that exercises every section positively:
// full contact block, a 40-word summary with four action verbs and two
// metrics, two experience entries with eight strong bullets, complete
// education, eight skills and two linked projects.
func completeSnapshot() types.ResumeSnapshot {
	return types.ResumeSnapshot{
		PersonalInfo: types.PersonalInfo{
			FirstName: "Dana",
			LastName:  "Whitfield",
			Email:     "dana.whitfield@example.com",
			Phone:     "+1 555 010 2030",
			LinkedIn:  "linkedin.com/in/danawhitfield",
		},
		Summary: "Seasoned engineering leader who led global teams for 6 years, " +
			"delivered major initiatives ahead of schedule, improved release cadence " +
			"by 60%, and mentored dozens of junior engineers while guiding hiring, " +
			"onboarding, and long term technical direction across three product groups.",
		Experience: []types.Experience{
			{
				Company:   "Northbeam Labs",
				Title:     "Staff Engineer",
				StartDate: "2021-03",
				Current:   true,
				BulletPoints: []string{
					"Led migration of the api platform to kubernetes and reduced costs by 30%",
					"Designed caching architecture that improved throughput 3x for 2 million users",
					"Automated the ci/cd pipeline and eliminated 10+ manual deployment steps",
					"Built monitoring dashboards tracking services across the infrastructure, saving 200 hours per year",
				},
			},
			{
				Company:   "Harbor Analytics",
				Title:     "Senior Engineer",
				StartDate: "2017-06",
				EndDate:   "2021-02",
				BulletPoints: []string{
					"Coordinated quarterly planning with product and design partners",
					"Launched the internal developer platform adopted by fifteen teams",
					"Negotiated vendor contracts and secured annual savings of $250",
					"Streamlined incident response and reduced mean resolution time",
				},
			},
		},
		Education: []types.Education{
			{
				University: "State University",
				Degree:     "BSc",
				Field:      "Computer Science",
				StartDate:  "2010-09",
				EndDate:    "2014-06",
				City:       "Springfield",
			},
		},
		Skills: []string{"Go", "Kubernetes", "Terraform", "PostgreSQL", "Kafka", "gRPC", "Prometheus", "React"},
		Projects: []types.Project{
			{
				Name:         "LogTamer",
				Technologies: []string{"Go", "ClickHouse"},
				BulletPoints: []string{"Ingestion service for structured application logs"},
				Link:         "https://example.com/logtamer",
			},
			{
				Name:         "ShelfScan",
				Technologies: []string{"Python", "OpenCV"},
				BulletPoints: []string{"Inventory scanner used by three warehouse teams"},
			},
		},
	}
}

func TestCalculateEmptySnapshot(t *testing.T) {
	result := Calculate(types.ResumeSnapshot{})

	if result.TotalScore != 0 {
		t.Errorf("expected total score 0, got %d", result.TotalScore)
	}
	if result.Grade != "F" {
		t.Errorf("expected grade F, got %s", result.Grade)
	}
	if result.Breakdown != (types.ScoreBreakdown{}) {
		t.Errorf("expected zero breakdown, got %+v", result.Breakdown)
	}
	if len(result.Feedback) == 0 {
		t.Fatal("expected feedback for empty snapshot")
	}
	if result.Feedback[0] != "Your resume needs improvement. Focus on the key areas below." {
		t.Errorf("unexpected headline: %q", result.Feedback[0])
	}

	expectedLines := []string{
		"Add your full name",
		"Add a valid email address",
		"Add your phone number",
		"Add LinkedIn or GitHub profile",
		"Add a professional summary",
		"Add work experience entries",
		"Add education information",
		"Add your technical and professional skills",
		"Consider adding relevant projects",
		"Add more sections for a complete resume",
	}
	if !reflect.DeepEqual(result.Feedback[1:], expectedLines) {
		t.Errorf("unexpected feedback lines:\ngot  %v\nwant %v", result.Feedback[1:], expectedLines)
	}
}

func TestCalculateCompleteSnapshot(t *testing.T) {
	result := Calculate(completeSnapshot())

	expected := types.ScoreBreakdown{
		ContactInfo: 10,
		Summary:     11,
		Experience:  30,
		Education:   15,
		Skills:      10,
		Projects:    10,
		Formatting:  10,
	}
	if result.Breakdown != expected {
		t.Errorf("unexpected breakdown:\ngot  %+v\nwant %+v", result.Breakdown, expected)
	}
	if result.TotalScore != 96 {
		t.Errorf("expected total score 96, got %d", result.TotalScore)
	}
	if result.Grade != "A+" {
		t.Errorf("expected grade A+, got %s", result.Grade)
	}
	if len(result.Feedback) != 1 {
		t.Errorf("expected headline only, got %v", result.Feedback)
	}
	if result.Feedback[0] != "Excellent! Your resume is well-optimized for ATS systems." {
		t.Errorf("unexpected headline: %q", result.Feedback[0])
	}
}

func TestCalculateIdempotent(t *testing.T) {
	snapshot := completeSnapshot()
	first := Calculate(snapshot)
	second := Calculate(snapshot)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ across identical calls:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestCalculateCeilings(t *testing.T) {
	snapshots := []types.ResumeSnapshot{
		{},
		completeSnapshot(),
		{Summary: strings.Repeat("managed launched improved 50% ", 40)},
		{Skills: []string{"Go"}},
	}

	for _, snapshot := range snapshots {
		result := Calculate(snapshot)
		if result.TotalScore < 0 || result.TotalScore > 100 {
			t.Errorf("total score %d out of range", result.TotalScore)
		}
		b := result.Breakdown
		checks := []struct {
			name  string
			value int
			max   int
		}{
			{"contactInfo", b.ContactInfo, 10},
			{"summary", b.Summary, 15},
			{"experience", b.Experience, 30},
			{"education", b.Education, 15},
			{"skills", b.Skills, 10},
			{"projects", b.Projects, 10},
			{"formatting", b.Formatting, 10},
		}
		for _, c := range checks {
			if c.value < 0 || c.value > c.max {
				t.Errorf("%s score %d outside [0,%d]", c.name, c.value, c.max)
			}
		}
	}
}

func TestScoreContactInfo(t *testing.T) {
	tests := []struct {
		name             string
		info             types.PersonalInfo
		expectedScore    int
		expectedFeedback int
	}{
		{
			name: "complete contact block",
			info: types.PersonalInfo{
				FirstName: "A", LastName: "B", Email: "a@b.c", Phone: "1", LinkedIn: "x",
			},
			expectedScore:    10,
			expectedFeedback: 0,
		},
		{
			name:             "all missing",
			info:             types.PersonalInfo{},
			expectedScore:    0,
			expectedFeedback: 4,
		},
		{
			name: "first name only does not count as full name",
			info: types.PersonalInfo{
				FirstName: "A", Email: "a@b.c", Phone: "1", GitHub: "g",
			},
			expectedScore:    7,
			expectedFeedback: 1,
		},
		{
			name: "email without at sign",
			info: types.PersonalInfo{
				FirstName: "A", LastName: "B", Email: "not-an-email", Phone: "1", LinkedIn: "x",
			},
			expectedScore:    7,
			expectedFeedback: 1,
		},
		{
			name: "github counts like linkedin",
			info: types.PersonalInfo{
				FirstName: "A", LastName: "B", Email: "a@b.c", Phone: "1", GitHub: "g",
			},
			expectedScore:    10,
			expectedFeedback: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback := scoreContactInfo(tt.info)
			if score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, score)
			}
			if len(feedback) != tt.expectedFeedback {
				t.Errorf("expected %d feedback lines, got %v", tt.expectedFeedback, feedback)
			}
		})
	}
}

func TestScoreSummary(t *testing.T) {
	t.Run("empty summary", func(t *testing.T) {
		score, feedback := scoreSummary("   ")
		if score != 0 {
			t.Errorf("expected 0, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Add a professional summary" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("short summary", func(t *testing.T) {
		score, feedback := scoreSummary("Led and improved the release process")
		// round(5 + 7/3), no length bonus
		if score != 7 {
			t.Errorf("expected 7, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Summary is too short (aim for 30-100 words)" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("overlong summary", func(t *testing.T) {
		_, feedback := scoreSummary(strings.Repeat("word ", 120))
		if len(feedback) != 1 || feedback[0] != "Summary is too long (aim for 30-100 words)" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})
}

func TestScoreExperience(t *testing.T) {
	t.Run("no entries", func(t *testing.T) {
		score, feedback := scoreExperience(nil)
		if score != 0 {
			t.Errorf("expected 0, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Add work experience entries" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("entries without bullets", func(t *testing.T) {
		entries := []types.Experience{
			{Company: "Acme", Title: "Engineer", StartDate: "2020"},
			{Company: "Globex", Title: "Engineer", StartDate: "2018"},
		}
		score, feedback := scoreExperience(entries)
		if score != 10 {
			t.Errorf("expected 10, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Add bullet points describing your responsibilities and achievements" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("single valid entry with thin bullets", func(t *testing.T) {
		entries := []types.Experience{
			{
				Company:      "Acme",
				Title:        "Engineer",
				StartDate:    "2020",
				BulletPoints: []string{"Maintained servers", "Wrote reports"},
			},
		}
		score, feedback := scoreExperience(entries)
		// 7 base + round(3/25*15) = 7 + 2
		if score != 9 {
			t.Errorf("expected 9, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Add more bullet points to your experience (aim for 3-5 per role)" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("incomplete entry is not valid", func(t *testing.T) {
		entries := []types.Experience{
			{Company: "Acme", Title: "Engineer"}, // no start date
		}
		score, feedback := scoreExperience(entries)
		if score != 0 {
			t.Errorf("expected 0, got %d", score)
		}
		if len(feedback) != 1 {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})
}

func TestScoreEducation(t *testing.T) {
	tests := []struct {
		name             string
		entries          []types.Education
		expectedScore    int
		expectedFeedback []string
	}{
		{
			name:             "no entries",
			entries:          nil,
			expectedScore:    0,
			expectedFeedback: []string{"Add education information"},
		},
		{
			name:             "entry missing field",
			entries:          []types.Education{{University: "State", Degree: "BSc"}},
			expectedScore:    0,
			expectedFeedback: []string{"Complete your education information (university, degree, field)"},
		},
		{
			name:          "valid entry without extras",
			entries:       []types.Education{{University: "State", Degree: "BSc", Field: "CS"}},
			expectedScore: 10,
		},
		{
			name: "valid entry with dates",
			entries: []types.Education{
				{University: "State", Degree: "BSc", Field: "CS", StartDate: "2010", EndDate: "2014"},
			},
			expectedScore: 13,
		},
		{
			name: "valid entry with dates and city",
			entries: []types.Education{
				{University: "State", Degree: "BSc", Field: "CS", StartDate: "2010", EndDate: "2014", City: "Springfield"},
			},
			expectedScore: 15,
		},
		{
			name: "extras may come from different valid entries",
			entries: []types.Education{
				{University: "State", Degree: "BSc", Field: "CS", StartDate: "2010", EndDate: "2014"},
				{University: "Tech", Degree: "MSc", Field: "CS", City: "Riverdale"},
			},
			expectedScore: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback := scoreEducation(tt.entries)
			if score != tt.expectedScore {
				t.Errorf("expected score %d, got %d", tt.expectedScore, score)
			}
			if !reflect.DeepEqual(feedback, tt.expectedFeedback) {
				t.Errorf("expected feedback %v, got %v", tt.expectedFeedback, feedback)
			}
		})
	}
}

func TestScoreSkills(t *testing.T) {
	tests := []struct {
		name          string
		count         int
		expectedScore int
	}{
		{name: "none", count: 0, expectedScore: 0},
		{name: "one", count: 1, expectedScore: 3},
		{name: "two", count: 2, expectedScore: 3},
		{name: "three", count: 3, expectedScore: 6},
		{name: "five", count: 5, expectedScore: 8},
		{name: "eight", count: 8, expectedScore: 10},
		{name: "twelve", count: 12, expectedScore: 10},
	}

	previous := -1
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := make([]string, tt.count)
			for i := range skills {
				skills[i] = "skill"
			}
			score, _ := scoreSkills(skills)
			if score != tt.expectedScore {
				t.Errorf("expected %d, got %d", tt.expectedScore, score)
			}
			if score < previous {
				t.Errorf("skills score decreased from %d to %d as the list grew", previous, score)
			}
			previous = score
		})
	}
}

func TestScoreProjects(t *testing.T) {
	valid := types.Project{
		Name:         "LogTamer",
		Technologies: []string{"Go"},
		BulletPoints: []string{"Structured log ingestion"},
	}
	withLink := valid
	withLink.Link = "https://example.com"

	tests := []struct {
		name          string
		projects      []types.Project
		expectedScore int
	}{
		{name: "one valid", projects: []types.Project{valid}, expectedScore: 7},
		{name: "one valid with link", projects: []types.Project{withLink}, expectedScore: 8},
		{name: "two valid", projects: []types.Project{valid, valid}, expectedScore: 10},
		{name: "link bonus never exceeds ceiling", projects: []types.Project{withLink, valid}, expectedScore: 10},
		{name: "missing bullets is not valid", projects: []types.Project{{Name: "X", Technologies: []string{"Go"}}}, expectedScore: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := scoreProjects(tt.projects)
			if score != tt.expectedScore {
				t.Errorf("expected %d, got %d", tt.expectedScore, score)
			}
		})
	}

	t.Run("empty list", func(t *testing.T) {
		score, feedback := scoreProjects(nil)
		if score != 0 {
			t.Errorf("expected 0, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Consider adding relevant projects" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})
}

func TestScoreFormatting(t *testing.T) {
	t.Run("full snapshot has no penalties", func(t *testing.T) {
		score, feedback := scoreFormatting(completeSnapshot())
		if score != 10 {
			t.Errorf("expected 10, got %d", score)
		}
		if len(feedback) != 0 {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("oversized summary as the only section", func(t *testing.T) {
		snapshot := types.ResumeSnapshot{Summary: strings.Repeat("word ", 130)}
		score, feedback := scoreFormatting(snapshot)
		if score != 5 {
			t.Errorf("expected 5, got %d", score)
		}
		if len(feedback) != 2 {
			t.Errorf("expected both penalties reported, got %v", feedback)
		}
		if feedback[0] != "Summary is too long (may be truncated by ATS)" {
			t.Errorf("unexpected first feedback %q", feedback[0])
		}
	})

	t.Run("summary length counts characters not bytes", func(t *testing.T) {
		// under 600 characters but well past 600 bytes in UTF-8
		snapshot := types.ResumeSnapshot{Summary: strings.Repeat("führte ", 82) + "Teams"}
		score, feedback := scoreFormatting(snapshot)
		if score != 7 {
			t.Errorf("expected 7, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Add more sections for a complete resume" {
			t.Errorf("length penalty should not apply, got %v", feedback)
		}
	})

	t.Run("two sections trigger the balance penalty", func(t *testing.T) {
		snapshot := types.ResumeSnapshot{
			Summary: "short",
			Skills:  []string{"Go"},
		}
		score, feedback := scoreFormatting(snapshot)
		if score != 7 {
			t.Errorf("expected 7, got %d", score)
		}
		if len(feedback) != 1 || feedback[0] != "Add more sections for a complete resume" {
			t.Errorf("unexpected feedback %v", feedback)
		}
	})

	t.Run("no sections at all", func(t *testing.T) {
		score, _ := scoreFormatting(types.ResumeSnapshot{})
		if score != 0 {
			t.Errorf("expected 0, got %d", score)
		}
	})
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		total    int
		expected string
	}{
		{100, "A+"}, {95, "A+"}, {94, "A"}, {90, "A"}, {89, "B+"}, {85, "B+"},
		{84, "B"}, {80, "B"}, {79, "C"}, {70, "C"}, {69, "D"}, {60, "D"}, {59, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := gradeFor(tt.total); got != tt.expected {
			t.Errorf("gradeFor(%d) = %s, want %s", tt.total, got, tt.expected)
		}
	}
}

func TestHeadline(t *testing.T) {
	tests := []struct {
		total    int
		expected string
	}{
		{95, "Excellent! Your resume is well-optimized for ATS systems."},
		{90, "Excellent! Your resume is well-optimized for ATS systems."},
		{80, "Good resume! Minor improvements will make it even better."},
		{75, "Good resume! Minor improvements will make it even better."},
		{65, "Fair resume. Follow the suggestions below to improve."},
		{60, "Fair resume. Follow the suggestions below to improve."},
		{59, "Your resume needs improvement. Focus on the key areas below."},
	}
	for _, tt := range tests {
		if got := headline(tt.total); got != tt.expected {
			t.Errorf("headline(%d) = %q, want %q", tt.total, got, tt.expected)
		}
	}
}

func BenchmarkCalculate(b *testing.B) {
	snapshot := completeSnapshot()
	for b.Loop() {
		Calculate(snapshot)
	}
}

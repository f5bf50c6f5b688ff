package types

// PersonalInfo holds the contact details section of a resume
type PersonalInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
}

// Education represents a single education entry
type Education struct {
	University string `json:"university"`
	Degree     string `json:"degree"`
	Field      string `json:"field"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	City       string `json:"city,omitempty"`
}

// Experience represents a single work experience entry
type Experience struct {
	Company      string   `json:"company"`
	Title        string   `json:"title"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current,omitempty"`
	BulletPoints []string `json:"bulletPoints"`
}

// Project represents a single project entry
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies"`
	BulletPoints []string `json:"bulletPoints"`
	Link         string   `json:"link,omitempty"`
}

// Leadership represents a leadership or volunteering entry
type Leadership struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	BulletPoints []string `json:"bulletPoints"`
}

// ResumeSnapshot is the complete resume data value scored by the engine.
// It is produced by an external form layer (typically JSON-decoded from
// persisted form state) and is treated as read-only input everywhere.
type ResumeSnapshot struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Summary      string       `json:"summary"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Projects     []Project    `json:"projects"`
	Skills       []string     `json:"skills"`
	Leadership   []Leadership `json:"leadership"`
}

// QualityDetails holds the raw match counts behind a QualityScore
type QualityDetails struct {
	ActionVerbsFound    int  `json:"actionVerbsFound"`
	MetricsFound        int  `json:"metricsFound"`
	TechnicalTermsFound int  `json:"technicalTermsFound"`
	HasGenericPhrases   bool `json:"hasGenericPhrases"`
}

// QualityScore is the result of evaluating one block of free text
type QualityScore struct {
	ActionVerbsScore      int            `json:"actionVerbsScore"`      // 0-8
	MetricsScore          int            `json:"metricsScore"`          // 0-8
	TechnicalDepthScore   int            `json:"technicalDepthScore"`   // 0-6
	ProfessionalToneScore int            `json:"professionalToneScore"` // 0-3
	TotalScore            int            `json:"totalScore"`            // 0-25
	Details               QualityDetails `json:"details"`
}

// ScoreBreakdown holds the per-section scores of an ATS evaluation.
// Each field is capped at its section ceiling; the ceilings sum to 100.
type ScoreBreakdown struct {
	ContactInfo int `json:"contactInfo"` // 0-10
	Summary     int `json:"summary"`     // 0-15
	Experience  int `json:"experience"`  // 0-30
	Education   int `json:"education"`   // 0-15
	Skills      int `json:"skills"`      // 0-10
	Projects    int `json:"projects"`    // 0-10
	Formatting  int `json:"formatting"`  // 0-10
}

// ATSScore is the composite result of scoring a ResumeSnapshot
type ATSScore struct {
	TotalScore int            `json:"totalScore"` // 0-100
	Breakdown  ScoreBreakdown `json:"breakdown"`
	Feedback   []string       `json:"feedback"`
	Grade      string         `json:"grade"` // A+, A, B+, B, C, D, F
}

// ExtractKeywordsInput represents the input for keyword extraction
type ExtractKeywordsInput struct {
	JobDescription string `json:"jobDescription"`
}

// KeywordExtraction represents keywords extracted from a job description
type KeywordExtraction struct {
	Skills           []string `json:"skills"`
	Responsibilities []string `json:"responsibilities"`
	Qualifications   []string `json:"qualifications"`
	ActionVerbs      []string `json:"actionVerbs"`
	Keywords         []string `json:"keywords"`
}

// SuggestSummaryInput represents the input for summary suggestions
type SuggestSummaryInput struct {
	JobDescription string   `json:"jobDescription"`
	Experience     string   `json:"experience,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

// SummarySuggestions represents drafted professional summary options
type SummarySuggestions struct {
	Summaries []string `json:"summaries"`
}

// SuggestBulletsInput represents the input for bullet point suggestions
type SuggestBulletsInput struct {
	JobDescription  string   `json:"jobDescription"`
	JobTitle        string   `json:"jobTitle"`
	Company         string   `json:"company,omitempty"`
	ExistingBullets []string `json:"existingBullets,omitempty"`
}

// BulletSuggestions represents drafted experience bullet points
type BulletSuggestions struct {
	BulletPoints []string `json:"bulletPoints"`
}

// SuggestSkillsInput represents the input for skill suggestions
type SuggestSkillsInput struct {
	JobDescription string   `json:"jobDescription"`
	CurrentSkills  []string `json:"currentSkills,omitempty"`
}

// SkillSuggestion is a single suggested skill with its relevance to the job
type SkillSuggestion struct {
	Skill           string `json:"skill"`
	MatchPercentage int    `json:"matchPercentage"`
}

// SkillSuggestions represents skills suggested for a target job
type SkillSuggestions struct {
	Skills []SkillSuggestion `json:"skills"`
}

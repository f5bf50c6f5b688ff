package quality

import "regexp"

// actionVerbs are strong resume verbs that demonstrate impact. Matching is
// done per word against the base form plus the -ed and -ing inflections.
var actionVerbs = []string{
	// Leadership & Management
	"led", "managed", "directed", "coordinated", "supervised", "mentored", "coached", "guided",
	"oversaw", "facilitated", "orchestrated", "spearheaded", "championed",

	// Achievement & Results
	"achieved", "accomplished", "delivered", "exceeded", "surpassed", "attained", "completed",
	"won", "earned", "secured", "obtained",

	// Improvement & Optimization
	"improved", "enhanced", "optimized", "streamlined", "increased", "boosted", "maximized",
	"reduced", "decreased", "minimized", "eliminated", "resolved", "refined",

	// Creation & Development
	"developed", "created", "designed", "built", "engineered", "established", "implemented",
	"launched", "initiated", "introduced", "founded", "formulated", "constructed", "architected",

	// Analysis & Strategy
	"analyzed", "evaluated", "assessed", "investigated", "researched", "identified", "diagnosed",
	"strategized", "planned", "forecasted", "projected",

	// Collaboration & Communication
	"collaborated", "partnered", "presented", "communicated", "negotiated", "liaised",
	"interfaced", "consulted", "advised",

	// Technical & Execution
	"automated", "integrated", "deployed", "migrated", "configured", "programmed", "coded",
	"debugged", "tested", "validated", "documented", "executed", "performed",
}

// metricPatterns match quantifiable achievements. Every occurrence counts,
// not just the first, so a bullet with three percentages scores three hits.
var metricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+%`),          // percentages: 25%, 100%
	regexp.MustCompile(`(?i)\d+x`),      // multipliers: 2x, 10x
	regexp.MustCompile(`\$\d+`),         // money: $100, $1M
	regexp.MustCompile(`\d+\+`),         // open-ended counts: 50+, 100+
	regexp.MustCompile(`(?i)\d+\s*(million|thousand|billion|k|m|b)`),
	regexp.MustCompile(`(?i)\d+\s*(users|customers|clients|people|employees|members)`),
	regexp.MustCompile(`(?i)\d+\s*(hours|days|weeks|months|years)`),
	regexp.MustCompile(`(?i)\d+\s*(projects|tasks|features|bugs|issues)`),
}

// technicalIndicators are language-agnostic terms that signal technical
// depth. Matched as substrings of the lowercased text.
var technicalIndicators = []string{
	// Architectures & Patterns
	"architecture", "microservices", "api", "rest", "graphql", "websocket",
	"mvc", "mvvm", "design pattern", "solid", "scalable", "distributed",

	// Development Practices
	"ci/cd", "devops", "agile", "scrum", "git", "testing", "unit test",
	"integration test", "deployment", "docker", "kubernetes", "cloud",

	// Performance & Quality
	"optimization", "performance", "security", "authentication", "authorization",
	"encryption", "caching", "database", "query", "algorithm", "data structure",

	// Common frameworks/tools (broad categories)
	"framework", "library", "sdk", "platform", "system", "infrastructure",
	"pipeline", "workflow", "automation", "monitoring", "logging",
}

// genericPhrases are weak filler phrases that cost the professional tone
// points when any of them appears.
var genericPhrases = []string{
	"hard worker", "team player", "fast learner", "detail oriented",
	"self-motivated", "responsible for", "assisted with", "helped with",
}

package interview

// Interview scripts, keyed by seniority level. The interviewer walks
// each list in order, then falls back to follow-up prompts.
var scripts = map[string][]string{
	LevelJunior: {
		"Tell me about yourself and why you're interested in this role.",
		"Describe a challenging bug you fixed and how you approached it.",
		"How do you handle feedback from senior developers?",
		"Tell me about a time you had to learn a new technology quickly.",
	},
	LevelMid: {
		"Walk me through a project where you had to collaborate with multiple teams.",
		"Describe a situation where you had to make a technical decision with incomplete information.",
		"How do you approach mentoring junior developers?",
		"Tell me about a time when you had to push back on a product requirement.",
	},
	LevelSenior: {
		"How would you architect a system to handle 10x current traffic?",
		"Describe a time when you had to lead a technical decision that was controversial.",
		"How do you balance technical debt with feature delivery?",
		"Tell me about a time you had to influence stakeholders without direct authority.",
	},
}

var followUps = []string{
	"Can you elaborate on that a bit more?",
	"What would you do differently if you faced that situation again?",
	"How did that experience change your approach to similar challenges?",
	"What did you learn from that experience?",
}

const greeting = "Hi! I'm your virtual interviewer. Thank you for taking the time to interview with us today. I'm excited to learn more about your experience and how you approach technical challenges. Shall we get started?"

// Seniority levels an interview can run at.
const (
	LevelJunior = "junior"
	LevelMid    = "mid"
	LevelSenior = "senior"
)

// ValidLevel reports whether a script exists for the level.
func ValidLevel(level string) bool {
	_, ok := scripts[level]
	return ok
}

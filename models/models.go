package models

import (
	"time"
)

// Role values form a closed set of professional tracks.
const (
	RoleSoftwareDeveloper = "software-developer"
	RoleTechLead          = "tech-lead"
	RoleArchitect         = "architect"
	RolePrincipal         = "principal"
)

// Category values form a closed set of skill areas.
const (
	CategoryCommunication      = "communication"
	CategoryCollaboration      = "collaboration"
	CategoryLeadership         = "leadership"
	CategoryProblemSolving     = "problem-solving"
	CategoryTechnicalMentoring = "technical-mentoring"
)

// Difficulty levels for questions.
const (
	DifficultyJunior = "junior"
	DifficultyMid    = "mid"
	DifficultySenior = "senior"
)

var (
	Roles        = []string{RoleSoftwareDeveloper, RoleTechLead, RoleArchitect, RolePrincipal}
	Categories   = []string{CategoryCommunication, CategoryCollaboration, CategoryLeadership, CategoryProblemSolving, CategoryTechnicalMentoring}
	Difficulties = []string{DifficultyJunior, DifficultyMid, DifficultySenior}
)

// ValidRole reports whether s is one of the known roles.
func ValidRole(s string) bool { return contains(Roles, s) }

// ValidCategory reports whether s is one of the known categories.
func ValidCategory(s string) bool { return contains(Categories, s) }

// ValidDifficulty reports whether s is one of the known difficulties.
func ValidDifficulty(s string) bool { return contains(Difficulties, s) }

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// User represents a registered user. The demo deployment seeds a single
// user at startup and every request acts on behalf of it.
type User struct {
	ID          int       `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CurrentRole string    `json:"currentRole"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Question is immutable reference data, tagged with role, category and
// difficulty for filtering.
type Question struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Role         string   `json:"role"`
	Difficulty   string   `json:"difficulty"`
	SampleAnswer string   `json:"sampleAnswer"`
	Tips         []string `json:"tips"`
	Keywords     []string `json:"keywords"`
}

// PracticeSession is a bounded run of questions within a time budget.
// It is created active and patched once at session end.
type PracticeSession struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"userId"`
	Role               string     `json:"role"`
	Category           string     `json:"category"`
	Duration           int        `json:"duration"` // minutes
	QuestionsCompleted int        `json:"questionsCompleted"`
	TotalQuestions     int        `json:"totalQuestions"`
	StartedAt          time.Time  `json:"startedAt"`
	CompletedAt        *time.Time `json:"completedAt"`
	IsActive           bool       `json:"isActive"`
}

// QuestionResponse stores one free-text answer within a session.
type QuestionResponse struct {
	ID         int       `json:"id"`
	SessionID  int       `json:"sessionId"`
	QuestionID int       `json:"questionId"`
	Response   string    `json:"response"`
	TimeSpent  int       `json:"timeSpent"` // seconds
	IsFlagged  bool      `json:"isFlagged"`
	AnsweredAt time.Time `json:"answeredAt"`
}

// UserProgress holds aggregate counters per (user, role, category).
type UserProgress struct {
	ID                 int        `json:"id"`
	UserID             int        `json:"userId"`
	Role               string     `json:"role"`
	Category           string     `json:"category"`
	QuestionsCompleted int        `json:"questionsCompleted"`
	TotalPracticeTime  int        `json:"totalPracticeTime"` // minutes
	AverageScore       int        `json:"averageScore"`      // percentage
	LastPracticed      *time.Time `json:"lastPracticed"`
}

// ProgressKey identifies a progress row. At most one row exists per key.
type ProgressKey struct {
	UserID   int
	Role     string
	Category string
}

// Key returns the composite identity of a progress row.
func (p UserProgress) Key() ProgressKey {
	return ProgressKey{UserID: p.UserID, Role: p.Role, Category: p.Category}
}

// UserStats are the derived counters served by the stats endpoint.
type UserStats struct {
	QuestionsCompleted int `json:"questionsCompleted"`
	PracticeHours      int `json:"practiceHours"`
	SkillsImproved     int `json:"skillsImproved"`
	CurrentStreak      int `json:"currentStreak"`
}

// Evaluation is the outcome of scoring a free-text answer.
type Evaluation struct {
	Score    int    `json:"score"` // 0-10
	Feedback string `json:"feedback"`
}

package models

import "time"

// FieldError describes a single invalid request field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// InsertUser is the payload for creating a user.
type InsertUser struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	CurrentRole string `json:"currentRole"`
}

// Validate checks the payload and returns one error per bad field.
func (in InsertUser) Validate() []FieldError {
	var errs []FieldError
	if in.Username == "" {
		errs = append(errs, FieldError{Field: "username", Reason: "is required"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{Field: "password", Reason: "is required"})
	}
	if in.Email == "" {
		errs = append(errs, FieldError{Field: "email", Reason: "is required"})
	}
	if in.CurrentRole != "" && !ValidRole(in.CurrentRole) {
		errs = append(errs, FieldError{Field: "currentRole", Reason: "unknown role"})
	}
	return errs
}

// InsertPracticeSession is the payload for starting a session. UserID is
// filled in server-side.
type InsertPracticeSession struct {
	UserID         int    `json:"userId"`
	Role           string `json:"role"`
	Category       string `json:"category"`
	Duration       int    `json:"duration"`
	TotalQuestions int    `json:"totalQuestions"`
}

func (in InsertPracticeSession) Validate() []FieldError {
	var errs []FieldError
	if in.Role == "" {
		errs = append(errs, FieldError{Field: "role", Reason: "is required"})
	} else if !ValidRole(in.Role) {
		errs = append(errs, FieldError{Field: "role", Reason: "unknown role"})
	}
	if in.Category == "" {
		errs = append(errs, FieldError{Field: "category", Reason: "is required"})
	} else if !ValidCategory(in.Category) {
		errs = append(errs, FieldError{Field: "category", Reason: "unknown category"})
	}
	if in.Duration <= 0 {
		errs = append(errs, FieldError{Field: "duration", Reason: "must be a positive number of minutes"})
	}
	if in.TotalQuestions <= 0 {
		errs = append(errs, FieldError{Field: "totalQuestions", Reason: "must be positive"})
	}
	return errs
}

// InsertQuestionResponse is the payload for submitting an answer.
type InsertQuestionResponse struct {
	SessionID  int    `json:"sessionId"`
	QuestionID int    `json:"questionId"`
	Response   string `json:"response"`
	TimeSpent  int    `json:"timeSpent"`
}

func (in InsertQuestionResponse) Validate() []FieldError {
	var errs []FieldError
	if in.SessionID <= 0 {
		errs = append(errs, FieldError{Field: "sessionId", Reason: "is required"})
	}
	if in.QuestionID <= 0 {
		errs = append(errs, FieldError{Field: "questionId", Reason: "is required"})
	}
	if in.Response == "" {
		errs = append(errs, FieldError{Field: "response", Reason: "is required"})
	}
	if in.TimeSpent < 0 {
		errs = append(errs, FieldError{Field: "timeSpent", Reason: "must not be negative"})
	}
	return errs
}

// SessionPatch carries a partial session update. Nil fields are left
// untouched by the store.
type SessionPatch struct {
	QuestionsCompleted *int       `json:"questionsCompleted"`
	CompletedAt        *time.Time `json:"completedAt"`
	IsActive           *bool      `json:"isActive"`
}

// ResponsePatch carries a partial response update, e.g. flagging for
// review.
type ResponsePatch struct {
	Response  *string `json:"response"`
	IsFlagged *bool   `json:"isFlagged"`
}

// ProgressUpdate upserts counters for one (role, category) pair.
type ProgressUpdate struct {
	Role               string `json:"role"`
	Category           string `json:"category"`
	QuestionsCompleted *int   `json:"questionsCompleted"`
	TotalPracticeTime  *int   `json:"totalPracticeTime"`
	AverageScore       *int   `json:"averageScore"`
}

func (in ProgressUpdate) Validate() []FieldError {
	var errs []FieldError
	if in.Role == "" {
		errs = append(errs, FieldError{Field: "role", Reason: "is required"})
	}
	if in.Category == "" {
		errs = append(errs, FieldError{Field: "category", Reason: "is required"})
	}
	return errs
}

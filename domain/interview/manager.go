package interview

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"skillprep/domain/evaluate"
	"skillprep/internal/errors"
	"skillprep/models"
	"skillprep/ports"
)

// Message roles within a transcript.
const (
	RoleInterviewer = "interviewer"
	RoleCandidate   = "candidate"
)

// Message is one entry in an interview transcript. Candidate messages
// carry the evaluator's score and feedback.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Score     *int      `json:"score,omitempty"`
	Feedback  string    `json:"feedback,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Interview is a scripted interview run: a greeting, a fixed question
// list walked in order, per-answer scoring, and a final averaged score.
type Interview struct {
	ID           int               `json:"id"`
	Level        string            `json:"level"`
	Messages     []Message         `json:"messages"`
	Answers      int               `json:"answers"`
	TotalScore   int               `json:"totalScore"`
	FinalScore   int               `json:"finalScore"`
	ScoreSummary *evaluate.Summary `json:"scoreSummary,omitempty"`
	IsActive     bool              `json:"isActive"`
	StartedAt    time.Time         `json:"startedAt"`
	EndedAt      *time.Time        `json:"endedAt"`
}

// AnswerResult is what a candidate gets back for one answer: the scored
// answer itself and the interviewer's next message.
type AnswerResult struct {
	Answer models.Evaluation `json:"evaluation"`
	Reply  Message           `json:"reply"`
}

// Manager runs scripted interviews against a pluggable evaluator and
// keeps transcripts in memory for the process lifetime.
type Manager struct {
	mu         sync.RWMutex
	evaluator  ports.ResponseEvaluator
	interviews map[int]*Interview
	nextID     int
}

// NewManager creates an interview manager backed by the given evaluator.
func NewManager(evaluator ports.ResponseEvaluator) *Manager {
	return &Manager{
		evaluator:  evaluator,
		interviews: make(map[int]*Interview),
		nextID:     1,
	}
}

// Start opens a new interview at the given level and returns it with
// the greeting and the first scripted question in the transcript.
func (m *Manager) Start(ctx context.Context, level string) (Interview, error) {
	if !ValidLevel(level) {
		return Interview{}, errors.InvalidInput("unknown interview level: " + level)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	iv := &Interview{
		ID:        m.nextID,
		Level:     level,
		IsActive:  true,
		StartedAt: now,
		Messages: []Message{
			{Role: RoleInterviewer, Content: greeting, Timestamp: now},
			{Role: RoleInterviewer, Content: scripts[level][0], Timestamp: now},
		},
	}
	m.nextID++
	m.interviews[iv.ID] = iv
	return *iv, nil
}

// Answer records a candidate answer, scores it, and appends the
// interviewer's next question or a follow-up prompt once the script is
// exhausted.
func (m *Manager) Answer(ctx context.Context, id int, content string) (AnswerResult, error) {
	if content == "" {
		return AnswerResult{}, errors.InvalidInput("answer content is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	iv, ok := m.interviews[id]
	if !ok {
		return AnswerResult{}, errors.NotFound("interview")
	}
	if !iv.IsActive {
		return AnswerResult{}, errors.Conflict("interview already ended")
	}

	eval := m.evaluator.Evaluate(content)
	now := time.Now()
	score := eval.Score
	iv.Messages = append(iv.Messages, Message{
		Role:      RoleCandidate,
		Content:   content,
		Score:     &score,
		Feedback:  eval.Feedback,
		Timestamp: now,
	})
	iv.Answers++
	iv.TotalScore += eval.Score

	reply := Message{Role: RoleInterviewer, Timestamp: now}
	script := scripts[iv.Level]
	if iv.Answers < len(script) {
		reply.Content = "That's interesting. " + script[iv.Answers]
	} else {
		reply.Content = followUps[rand.Intn(len(followUps))]
	}
	iv.Messages = append(iv.Messages, reply)

	return AnswerResult{Answer: eval, Reply: reply}, nil
}

// Complete ends an interview, fixes its final score (the rounded
// average over all answered questions) and attaches the per-answer
// score summary.
func (m *Manager) Complete(ctx context.Context, id int) (Interview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	iv, ok := m.interviews[id]
	if !ok {
		return Interview{}, errors.NotFound("interview")
	}
	if !iv.IsActive {
		return Interview{}, errors.Conflict("interview already ended")
	}

	answers := iv.Answers
	if answers < 1 {
		answers = 1
	}
	iv.FinalScore = (iv.TotalScore + answers/2) / answers
	if iv.Answers > 0 {
		scores := make([]int, 0, iv.Answers)
		for _, msg := range iv.Messages {
			if msg.Score != nil {
				scores = append(scores, *msg.Score)
			}
		}
		summary := evaluate.Summarize(scores)
		iv.ScoreSummary = &summary
	}
	iv.IsActive = false
	now := time.Now()
	iv.EndedAt = &now

	closing := Message{
		Role:      RoleInterviewer,
		Content:   "Thank you for your time today! Based on our conversation, I'd say you demonstrated strong technical communication skills.",
		Timestamp: now,
	}
	iv.Messages = append(iv.Messages, closing)

	return *iv, nil
}

// Get returns the interview transcript by id.
func (m *Manager) Get(ctx context.Context, id int) (Interview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	iv, ok := m.interviews[id]
	if !ok {
		return Interview{}, errors.NotFound("interview")
	}
	out := *iv
	out.Messages = make([]Message, len(iv.Messages))
	copy(out.Messages, iv.Messages)
	return out, nil
}

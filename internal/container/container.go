package container

import (
	"context"

	"skillprep/adapters/excel"
	"skillprep/adapters/memstore"
	"skillprep/domain/bank"
	"skillprep/domain/evaluate"
	"skillprep/domain/interview"
	"skillprep/internal/config"
	"skillprep/internal/errors"
	"skillprep/models"
	"skillprep/ports"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Repositories (data access layer)
	UserRepo     ports.UserRepository
	QuestionRepo ports.QuestionRepository
	SessionRepo  ports.SessionRepository
	ResponseRepo ports.ResponseRepository
	ProgressRepo ports.ProgressRepository
	Stats        ports.StatsProvider

	// Domain components
	Bank       *bank.Bank
	Evaluator  ports.ResponseEvaluator
	Interviews *interview.Manager

	// Reporting
	ReportWriter *excel.ReportWriter

	// DefaultUserID is the seeded demo user every request acts as.
	DefaultUserID int
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, errors.ConfigInvalid("config cannot be nil")
	}

	return &Container{Config: cfg}, nil
}

// Init wires the in-memory store and domain components.
func (c *Container) Init() error {
	sessions := memstore.NewSessionRepository()
	responses := memstore.NewResponseRepository()
	progress := memstore.NewProgressRepository()

	c.UserRepo = memstore.NewUserRepository()
	c.QuestionRepo = memstore.NewQuestionRepository()
	c.SessionRepo = sessions
	c.ResponseRepo = responses
	c.ProgressRepo = progress
	c.Stats = memstore.NewStatsService(sessions, responses, progress)

	c.Bank = bank.NewSeeded()
	c.Evaluator = evaluate.NewHeuristic()
	c.Interviews = interview.NewManager(c.Evaluator)

	c.ReportWriter = excel.NewReportWriter(c.Config.Report)

	return nil
}

// Seed loads the question corpus and, when configured, the demo user.
func (c *Container) Seed(ctx context.Context) error {
	for _, q := range c.Bank.All() {
		if _, err := c.QuestionRepo.CreateQuestion(ctx, q); err != nil {
			return errors.Wrapf(err, "failed to seed question %q", q.Title)
		}
	}

	if c.Config.Seed.DemoUser {
		in := models.InsertUser{
			Username:    c.Config.Seed.DemoUsername,
			Password:    "password",
			Name:        "Alex Chen",
			Email:       "alex.chen@example.com",
			CurrentRole: models.RoleSoftwareDeveloper,
		}
		if errs := in.Validate(); len(errs) > 0 {
			return errors.ValidationError("invalid demo user: " + errs[0].Field + " " + errs[0].Reason)
		}

		user, err := c.UserRepo.CreateUser(ctx, in)
		if err != nil {
			return errors.Wrap(err, "failed to seed demo user")
		}
		c.DefaultUserID = user.ID
	}

	return nil
}

// Package memstore provides process-local, map-backed implementations
// of the repository ports. Ids are per-entity auto-increment counters,
// unique within a process lifetime only; nothing survives a restart.
// Each repository guards its map with an RWMutex; update semantics are
// last-write-wins with no optimistic concurrency check.
package memstore

import (
	"context"
	"sync"
	"time"

	"skillprep/internal/errors"
	"skillprep/models"
	"skillprep/ports"
)

// UserRepository implements ports.UserRepository in memory.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]models.User
	nextID int
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]models.User),
		nextID: 1,
	}
}

// CreateUser stores a new user and assigns its id.
func (r *UserRepository) CreateUser(ctx context.Context, in models.InsertUser) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	currentRole := in.CurrentRole
	if currentRole == "" {
		currentRole = models.RoleSoftwareDeveloper
	}

	user := models.User{
		ID:          r.nextID,
		Username:    in.Username,
		Password:    in.Password,
		Name:        in.Name,
		Email:       in.Email,
		CurrentRole: currentRole,
		CreatedAt:   time.Now(),
	}
	r.nextID++
	r.users[user.ID] = user
	return user, nil
}

// GetUser retrieves a user by id.
func (r *UserRepository) GetUser(ctx context.Context, id int) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return models.User{}, errors.NotFound("user")
	}
	return user, nil
}

// GetUserByUsername retrieves a user by username.
func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, errors.NotFound("user")
}

var _ ports.UserRepository = (*UserRepository)(nil)

package ports

import (
	"context"

	"skillprep/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// CreateUser stores a new user and assigns its id
	CreateUser(ctx context.Context, in models.InsertUser) (models.User, error)

	// GetUser retrieves a user by id
	GetUser(ctx context.Context, id int) (models.User, error)

	// GetUserByUsername retrieves a user by username
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
}

package storage

import (
	"context"

	"github.com/sweepstats/sweepstats/internal/model"
)

// Storage defines the interface for data persistence.
//
// CreateUser and CreateGameRecord assign the entity's ID in place.
// Uniqueness of username and email is enforced by the backend itself:
// a concurrent create that loses the race fails with ErrUsernameTaken
// or ErrEmailTaken, it never silently succeeds.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	// DeleteUser removes the user and all of its game records
	DeleteUser(ctx context.Context, id model.UserID) error

	// Game record operations
	CreateGameRecord(ctx context.Context, record *model.GameRecord) error
	// ListGameRecordsForUser returns the user's records ordered by
	// played_at descending, fully materialized
	ListGameRecordsForUser(ctx context.Context, userID model.UserID) ([]*model.GameRecord, error)
}

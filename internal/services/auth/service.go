package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sweepstats/sweepstats/internal/dependencies/clock"
	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingCredentials = errors.New("username and password are required")
)

// Service owns credential records: registration, password verification
// and account lookup. Passwords are stored only as bcrypt hashes.
type Service struct {
	storage storage.Storage
	clock   clock.Clock

	// dummyHash is compared against when the username does not exist, so
	// an unknown name costs the same as a wrong password
	dummyHash []byte
}

// New creates a new credential service
func New(storage storage.Storage, clk clock.Clock) (*Service, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("sweepstats.dummy.password"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		storage:   storage,
		clock:     clk,
		dummyHash: dummy,
	}, nil
}

// Register creates a new account. Username and password are required;
// email is optional but must be unused when given. The storage backend's
// uniqueness constraints are authoritative: the lookups here are an
// optimization, a lost race still fails with the same errors.
func (s *Service) Register(ctx context.Context, username, password, email string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	if _, err := s.storage.GetUserByUsername(ctx, username); err == nil {
		return nil, model.ErrUsernameTaken
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	if email != "" {
		if _, err := s.storage.GetUserByEmail(ctx, email); err == nil {
			return nil, model.ErrEmailTaken
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Burn a comparison anyway so lookup misses don't return early
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID returns the account for an id
func (s *Service) GetByID(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// Delete removes an account and, transitively, all of its game records.
// Administrative path, not exposed over the API.
func (s *Service) Delete(ctx context.Context, id model.UserID) error {
	return s.storage.DeleteUser(ctx, id)
}

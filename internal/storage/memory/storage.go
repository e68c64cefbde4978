package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	emailIndex    map[string]model.UserID
	records       map[model.RecordID]*model.GameRecord

	nextUserID   model.UserID
	nextRecordID model.RecordID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		emailIndex:    make(map[string]model.UserID),
		records:       make(map[model.RecordID]*model.GameRecord),
		nextUserID:    1,
		nextRecordID:  1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Uniqueness is checked under the write lock so a concurrent create
	// with the same username or email cannot interleave
	if _, ok := s.usernameIndex[user.Username]; ok {
		return model.ErrUsernameTaken
	}
	if user.Email != "" {
		if _, ok := s.emailIndex[user.Email]; ok {
			return model.ErrEmailTaken
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++

	s.users[user.ID] = user
	s.usernameIndex[user.Username] = user.ID
	if user.Email != "" {
		s.emailIndex[user.Email] = user.ID
	}
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return s.users[id], nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.emailIndex[email]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return s.users[id], nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}

	// Cascade: a record has no lifecycle independent of its owner
	for recordID, record := range s.records {
		if record.UserID == id {
			delete(s.records, recordID)
		}
	}

	delete(s.usernameIndex, user.Username)
	if user.Email != "" {
		delete(s.emailIndex, user.Email)
	}
	delete(s.users, id)
	return nil
}

// Game record operations

func (s *Storage) CreateGameRecord(ctx context.Context, record *model.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextRecordID
	s.nextRecordID++

	s.records[record.ID] = record
	return nil
}

func (s *Storage) ListGameRecordsForUser(ctx context.Context, userID model.UserID) ([]*model.GameRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.GameRecord, 0)
	for _, record := range s.records {
		if record.UserID == userID {
			records = append(records, record)
		}
	}

	// played_at descending; newest IDs first among played_at ties
	sort.Slice(records, func(i, j int) bool {
		if !records[i].PlayedAt.Equal(records[j].PlayedAt) {
			return records[i].PlayedAt.After(records[j].PlayedAt)
		}
		return records[i].ID > records[j].ID
	})
	return records, nil
}

package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/sweepstats/sweepstats/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newUser(username, email string) *model.User {
	return &model.User{
		Username:     username,
		PasswordHash: "$2a$10$notarealhash",
		Email:        email,
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	user := s.newUser("alice", "alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	s.NotZero(user.ID)

	retrieved, err := s.storage.GetUser(s.ctx, user.ID)
	s.Require().NoError(err)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.Email, retrieved.Email)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestCreateUserAssignsSequentialIDs() {
	alice := s.newUser("alice", "")
	bob := s.newUser("bob", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))
	s.Require().NoError(s.storage.CreateUser(s.ctx, bob))
	s.Equal(model.UserID(1), alice.ID)
	s.Equal(model.UserID(2), bob.ID)
}

func (s *StorageSuite) TestCreateUserDuplicateUsernameFails() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice", "alice@example.com")))

	err := s.storage.CreateUser(s.ctx, s.newUser("alice", "other@example.com"))
	s.ErrorIs(err, model.ErrUsernameTaken)
}

func (s *StorageSuite) TestCreateUserDuplicateEmailReleasesUsername() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice", "alice@example.com")))

	err := s.storage.CreateUser(s.ctx, s.newUser("bob", "alice@example.com"))
	s.ErrorIs(err, model.ErrEmailTaken)

	// "bob" must be registerable afterwards
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("bob", "bob@example.com")))
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := s.newUser("alice", "alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	found, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByEmail() {
	user := s.newUser("alice", "alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))

	found, err := s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(user.ID, found.ID)
}

func (s *StorageSuite) TestDeleteUserCascades() {
	alice := s.newUser("alice", "alice@example.com")
	bob := s.newUser("bob", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))
	s.Require().NoError(s.storage.CreateUser(s.ctx, bob))

	s.appendRecord(alice.ID, model.DifficultyEasy, 45, true, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.appendRecord(bob.ID, model.DifficultyHard, 200, false, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	s.Require().NoError(s.storage.DeleteUser(s.ctx, alice.ID))

	_, err := s.storage.GetUser(s.ctx, alice.ID)
	s.ErrorIs(err, model.ErrUserNotFound)
	_, err = s.storage.GetUserByUsername(s.ctx, "alice")
	s.ErrorIs(err, model.ErrUserNotFound)

	records, err := s.storage.ListGameRecordsForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Empty(records)

	records, err = s.storage.ListGameRecordsForUser(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Len(records, 1)
}

// Game record tests

func (s *StorageSuite) appendRecord(userID model.UserID, d model.Difficulty, timeTaken int, isWin bool, playedAt time.Time) *model.GameRecord {
	record := &model.GameRecord{
		UserID:     userID,
		Difficulty: d,
		TimeTaken:  timeTaken,
		IsWin:      isWin,
		PlayedAt:   playedAt,
	}
	s.Require().NoError(s.storage.CreateGameRecord(s.ctx, record))
	return record
}

func (s *StorageSuite) TestCreateGameRecordRoundTrip() {
	alice := s.newUser("alice", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))

	playedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	record := &model.GameRecord{
		UserID:       alice.ID,
		Difficulty:   model.DifficultyMedium,
		TimeTaken:    90,
		IsWin:        true,
		MinesFlagged: 12,
		CellsOpened:  64,
		PlayedAt:     playedAt,
	}
	s.Require().NoError(s.storage.CreateGameRecord(s.ctx, record))
	s.NotZero(record.ID)

	records, err := s.storage.ListGameRecordsForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(record.ID, records[0].ID)
	s.Equal(model.DifficultyMedium, records[0].Difficulty)
	s.Equal(12, records[0].MinesFlagged)
	s.Equal(64, records[0].CellsOpened)
	s.True(playedAt.Equal(records[0].PlayedAt))
}

func (s *StorageSuite) TestListGameRecordsOrderedByPlayedAtDesc() {
	alice := s.newUser("alice", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.appendRecord(alice.ID, model.DifficultyEasy, 30, true, base)
	s.appendRecord(alice.ID, model.DifficultyEasy, 40, true, base.Add(2*time.Hour))
	s.appendRecord(alice.ID, model.DifficultyEasy, 50, true, base.Add(time.Hour))

	records, err := s.storage.ListGameRecordsForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.Equal(40, records[0].TimeTaken)
	s.Equal(50, records[1].TimeTaken)
	s.Equal(30, records[2].TimeTaken)
}

func (s *StorageSuite) TestListGameRecordsIdenticalRecordsAllReturned() {
	alice := s.newUser("alice", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))

	playedAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		s.appendRecord(alice.ID, model.DifficultyEasy, 30, true, playedAt)
	}

	records, err := s.storage.ListGameRecordsForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Len(records, 5)
}

func (s *StorageSuite) TestListGameRecordsEmptyForUnknownUser() {
	records, err := s.storage.ListGameRecordsForUser(s.ctx, 42)
	s.Require().NoError(err)
	s.Empty(records)
}

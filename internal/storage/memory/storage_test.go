package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/sweepstats/sweepstats/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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

func (s *StorageSuite) TestCreateUserAssignsID() {
	user := s.newUser("alice", "alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, user))
	s.Equal(model.UserID(1), user.ID)

	second := s.newUser("bob", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, second))
	s.Equal(model.UserID(2), second.ID)
}

func (s *StorageSuite) TestCreateUserDuplicateUsernameFails() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice", "alice@example.com")))

	err := s.storage.CreateUser(s.ctx, s.newUser("alice", "other@example.com"))
	s.ErrorIs(err, model.ErrUsernameTaken)

	// First user is unaffected
	user, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
}

func (s *StorageSuite) TestCreateUserDuplicateEmailFails() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice", "alice@example.com")))

	err := s.storage.CreateUser(s.ctx, s.newUser("bob", "alice@example.com"))
	s.ErrorIs(err, model.ErrEmailTaken)

	// Failed create must not leave the username claimed
	_, err = s.storage.GetUserByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestCreateUserEmptyEmailNotUnique() {
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice", "")))
	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("bob", "")))
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
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

func (s *StorageSuite) TestDeleteUserCascadesRecords() {
	alice := s.newUser("alice", "alice@example.com")
	bob := s.newUser("bob", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))
	s.Require().NoError(s.storage.CreateUser(s.ctx, bob))

	s.appendRecord(alice.ID, model.DifficultyEasy, 45, true)
	s.appendRecord(alice.ID, model.DifficultyMedium, 90, false)
	s.appendRecord(bob.ID, model.DifficultyHard, 200, true)

	s.Require().NoError(s.storage.DeleteUser(s.ctx, alice.ID))

	_, err := s.storage.GetUser(s.ctx, alice.ID)
	s.ErrorIs(err, model.ErrUserNotFound)

	records, err := s.storage.ListGameRecordsForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Empty(records)

	// Bob's records are untouched
	records, err = s.storage.ListGameRecordsForUser(s.ctx, bob.ID)
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *StorageSuite) TestDeleteUserFreesUsername() {
	alice := s.newUser("alice", "alice@example.com")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))
	s.Require().NoError(s.storage.DeleteUser(s.ctx, alice.ID))

	s.Require().NoError(s.storage.CreateUser(s.ctx, s.newUser("alice", "alice@example.com")))
}

// Game record tests

func (s *StorageSuite) appendRecord(userID model.UserID, d model.Difficulty, timeTaken int, isWin bool) *model.GameRecord {
	record := &model.GameRecord{
		UserID:     userID,
		Difficulty: d,
		TimeTaken:  timeTaken,
		IsWin:      isWin,
		PlayedAt:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.storage.CreateGameRecord(s.ctx, record))
	return record
}

func (s *StorageSuite) TestCreateGameRecordAssignsID() {
	alice := s.newUser("alice", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))

	first := s.appendRecord(alice.ID, model.DifficultyEasy, 30, true)
	second := s.appendRecord(alice.ID, model.DifficultyEasy, 30, true)
	s.Equal(model.RecordID(1), first.ID)
	s.Equal(model.RecordID(2), second.ID)
}

func (s *StorageSuite) TestListGameRecordsOrderedByPlayedAtDesc() {
	alice := s.newUser("alice", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		record := &model.GameRecord{
			UserID:     alice.ID,
			Difficulty: model.DifficultyEasy,
			TimeTaken:  30 + i,
			IsWin:      true,
			PlayedAt:   base.Add(offset),
		}
		s.Require().NoError(s.storage.CreateGameRecord(s.ctx, record))
	}

	records, err := s.storage.ListGameRecordsForUser(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Require().Len(records, 3)
	s.True(records[0].PlayedAt.After(records[1].PlayedAt))
	s.True(records[1].PlayedAt.After(records[2].PlayedAt))
}

func (s *StorageSuite) TestListGameRecordsIdenticalRecordsAllReturned() {
	alice := s.newUser("alice", "")
	s.Require().NoError(s.storage.CreateUser(s.ctx, alice))

	for i := 0; i < 5; i++ {
		s.appendRecord(alice.ID, model.DifficultyEasy, 30, true)
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

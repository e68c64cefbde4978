package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/sweepstats/sweepstats/internal/dependencies/clock"
	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/storage"
)

// Service is the append-only ledger of per-session game records
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new stats ledger
func New(storage storage.Storage, clk clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clk,
	}
}

// Append validates and stores one session's outcome. The difficulty must
// be one of the fixed enumeration, counters must be non-negative and the
// user must exist. PlayedAt is set here; records are never mutated after.
func (s *Service) Append(ctx context.Context, userID model.UserID, difficulty model.Difficulty, timeTaken int, isWin bool, minesFlagged, cellsOpened int) (*model.GameRecord, error) {
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidDifficulty, difficulty)
	}
	if timeTaken < 0 {
		return nil, fmt.Errorf("%w: negative time_taken", model.ErrInvalidRecord)
	}
	if minesFlagged < 0 || cellsOpened < 0 {
		return nil, fmt.Errorf("%w: negative counters", model.ErrInvalidRecord)
	}

	// Foreign-key integrity: every record references an existing user
	if _, err := s.storage.GetUser(ctx, userID); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: unknown user %d", model.ErrInvalidRecord, userID)
		}
		return nil, err
	}

	record := &model.GameRecord{
		UserID:       userID,
		Difficulty:   difficulty,
		TimeTaken:    timeTaken,
		IsWin:        isWin,
		MinesFlagged: minesFlagged,
		CellsOpened:  cellsOpened,
		PlayedAt:     s.clock.Now(),
	}

	if err := s.storage.CreateGameRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListForUser returns all of a user's records, newest first
func (s *Service) ListForUser(ctx context.Context, userID model.UserID) ([]*model.GameRecord, error) {
	return s.storage.ListGameRecordsForUser(ctx, userID)
}

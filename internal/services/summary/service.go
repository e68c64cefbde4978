package summary

import (
	"context"
	"math"

	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/storage"
)

// Summary aggregates a user's recorded sessions
type Summary struct {
	TotalGames int
	Wins       int
	// WinRate is wins/totalGames*100 rounded to 2 decimal places,
	// 0 when no games are recorded
	WinRate float64
	// BestTimes holds, per difficulty, the minimum time among winning
	// records, or nil when the user has no win at that difficulty
	BestTimes map[model.Difficulty]*int
}

// Service computes aggregate performance summaries. Read-only.
type Service struct {
	storage storage.Storage
}

// New creates a new summary service
func New(storage storage.Storage) *Service {
	return &Service{storage: storage}
}

// Summarize computes the win rate and per-difficulty best times for a user
func (s *Service) Summarize(ctx context.Context, userID model.UserID) (*Summary, error) {
	records, err := s.storage.ListGameRecordsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		BestTimes: make(map[model.Difficulty]*int, len(model.Difficulties())),
	}
	for _, d := range model.Difficulties() {
		summary.BestTimes[d] = nil
	}

	for _, record := range records {
		summary.TotalGames++
		if !record.IsWin {
			continue
		}
		summary.Wins++

		// Only winning records count toward best times
		best := summary.BestTimes[record.Difficulty]
		if best == nil || record.TimeTaken < *best {
			t := record.TimeTaken
			summary.BestTimes[record.Difficulty] = &t
		}
	}

	if summary.TotalGames > 0 {
		rate := float64(summary.Wins) / float64(summary.TotalGames) * 100
		summary.WinRate = math.Round(rate*100) / 100
	}
	return summary, nil
}

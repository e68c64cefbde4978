package response

import (
	"time"

	"github.com/sweepstats/sweepstats/internal/model"
	"github.com/sweepstats/sweepstats/internal/services/summary"
)

// User represents an account in API responses.
// The password hash is deliberately absent.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:        int64(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthResponse is the response for register and login
type AuthResponse struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// TokenResponse is the response for token refresh
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// GameRecord represents one recorded session in API responses
type GameRecord struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	Difficulty   string    `json:"difficulty"`
	TimeTaken    int       `json:"time_taken"`
	IsWin        bool      `json:"is_win"`
	MinesFlagged int       `json:"mines_flagged"`
	CellsOpened  int       `json:"cells_opened"`
	PlayedAt     time.Time `json:"played_at"`
}

// GameRecordFromModel converts a model.GameRecord to a response GameRecord
func GameRecordFromModel(r *model.GameRecord) GameRecord {
	return GameRecord{
		ID:           int64(r.ID),
		UserID:       int64(r.UserID),
		Difficulty:   string(r.Difficulty),
		TimeTaken:    r.TimeTaken,
		IsWin:        r.IsWin,
		MinesFlagged: r.MinesFlagged,
		CellsOpened:  r.CellsOpened,
		PlayedAt:     r.PlayedAt,
	}
}

// GameRecordList wraps a user's record history
type GameRecordList struct {
	GameStats []GameRecord `json:"game_stats"`
}

// GameRecordListFromModel converts a slice of records, preserving order
func GameRecordListFromModel(records []*model.GameRecord) GameRecordList {
	out := make([]GameRecord, len(records))
	for i, r := range records {
		out[i] = GameRecordFromModel(r)
	}
	return GameRecordList{GameStats: out}
}

// StatsSummary is the aggregate performance response.
// A difficulty with no winning record is an explicit null, not zero.
type StatsSummary struct {
	TotalGames int             `json:"total_games"`
	Wins       int             `json:"wins"`
	WinRate    float64         `json:"win_rate"`
	BestTimes  map[string]*int `json:"best_times"`
}

// StatsSummaryFromModel converts a summary.Summary
func StatsSummaryFromModel(s *summary.Summary) StatsSummary {
	bestTimes := make(map[string]*int, len(s.BestTimes))
	for d, t := range s.BestTimes {
		bestTimes[string(d)] = t
	}
	return StatsSummary{
		TotalGames: s.TotalGames,
		Wins:       s.Wins,
		WinRate:    s.WinRate,
		BestTimes:  bestTimes,
	}
}

package model

import "time"

// RecordID uniquely identifies a game record
type RecordID int64

// Difficulty classifies a game session's board configuration
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// Difficulties returns all valid difficulties in display order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Valid reports whether d is one of the fixed difficulties
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GameRecord is one completed or abandoned session.
// Records are append-only: never mutated after creation, deleted only
// when their owning user is deleted.
type GameRecord struct {
	ID           RecordID
	UserID       UserID
	Difficulty   Difficulty
	TimeTaken    int // seconds
	IsWin        bool
	MinesFlagged int
	CellsOpened  int
	PlayedAt     time.Time
}

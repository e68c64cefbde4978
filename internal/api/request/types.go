package request

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SaveStatsRequest is the request body for recording a finished game.
// TimeTaken and IsWin are pointers so a missing field can be told apart
// from a zero value.
type SaveStatsRequest struct {
	Difficulty   string `json:"difficulty"`
	TimeTaken    *int   `json:"time_taken"`
	IsWin        *bool  `json:"is_win"`
	MinesFlagged int    `json:"mines_flagged"`
	CellsOpened  int    `json:"cells_opened"`
}

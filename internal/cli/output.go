package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case AuthResult:
		o.printAuthResult(v)
	case TokenResult:
		o.printTokenResult(v)
	case GameRecord:
		o.printGameRecord(v)
	case GameRecordList:
		o.printGameRecordList(v)
	case StatsSummary:
		o.printStatsSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult combines user and token
type AuthResult struct {
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// TokenResult holds a refreshed token
type TokenResult struct {
	AccessToken string `json:"access_token"`
}

// GameRecord response type
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

// GameRecordList response type
type GameRecordList struct {
	GameStats []GameRecord `json:"game_stats"`
}

// StatsSummary response type
type StatsSummary struct {
	TotalGames int             `json:"total_games"`
	Wins       int             `json:"wins"`
	WinRate    float64         `json:"win_rate"`
	BestTimes  map[string]*int `json:"best_times"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (#%d)\n", u.Username, u.ID)
	if u.Email != "" {
		fmt.Printf("Email: %s\n", u.Email)
	}
	fmt.Printf("Member since: %s\n", u.CreatedAt.Format("2006-01-02"))
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printUser(a.User)
	fmt.Printf("Token: %s\n", a.AccessToken)
}

func (o *Output) printTokenResult(t TokenResult) {
	fmt.Printf("Token: %s\n", t.AccessToken)
}

func (o *Output) printGameRecord(r GameRecord) {
	outcome := "loss"
	if r.IsWin {
		outcome = "win"
	}
	fmt.Printf("Game #%d: %s %s in %ds\n", r.ID, r.Difficulty, outcome, r.TimeTaken)
	fmt.Printf("Mines flagged: %d\n", r.MinesFlagged)
	fmt.Printf("Cells opened: %d\n", r.CellsOpened)
	fmt.Printf("Played at: %s\n", r.PlayedAt.Format(time.RFC3339))
}

func (o *Output) printGameRecordList(l GameRecordList) {
	if len(l.GameStats) == 0 {
		fmt.Println("No games recorded")
		return
	}

	fmt.Printf("Games (%d):\n", len(l.GameStats))
	for _, r := range l.GameStats {
		outcome := "loss"
		if r.IsWin {
			outcome = "win "
		}
		fmt.Printf("  #%-5d %-8s %s %5ds  %s\n",
			r.ID, r.Difficulty, outcome, r.TimeTaken, r.PlayedAt.Format("2006-01-02 15:04"))
	}
}

func (o *Output) printStatsSummary(s StatsSummary) {
	fmt.Printf("Total games: %d\n", s.TotalGames)
	fmt.Printf("Wins: %d\n", s.Wins)
	fmt.Printf("Win rate: %.2f%%\n", s.WinRate)

	fmt.Println("Best times:")
	difficulties := make([]string, 0, len(s.BestTimes))
	for d := range s.BestTimes {
		difficulties = append(difficulties, d)
	}
	sort.Strings(difficulties)
	for _, d := range difficulties {
		if t := s.BestTimes[d]; t != nil {
			fmt.Printf("  %-8s %ds\n", d, *t)
		} else {
			fmt.Printf("  %-8s -\n", d)
		}
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

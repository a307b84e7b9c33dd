package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Stats is the cross-run record the driver persists between sessions.
// It lives entirely outside the tick path.
type Stats struct {
	SessionID    string    `json:"session_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	HighScore    int       `json:"high_score"`
	ScoreHistory []int     `json:"score_history"`
}

func NewStats() *Stats {
	return &Stats{
		SessionID: uuid.New().String(),
		StartTime: time.Now(),
	}
}

// Record folds a finished run's score into the stats and reports
// whether it set a new high score.
func (st *Stats) Record(score int) bool {
	st.ScoreHistory = append(st.ScoreHistory, score)
	if score > st.HighScore {
		st.HighScore = score
		return true
	}
	return false
}

// Save writes the stats as indented JSON, creating the directory if
// needed.
func (st *Stats) Save(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}
	st.EndTime = time.Now()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Load merges previously saved stats into st, keeping the current
// session id and start time.
func (st *Stats) Load(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	var prev Stats
	if err := json.Unmarshal(data, &prev); err != nil {
		return err
	}
	st.HighScore = prev.HighScore
	st.ScoreHistory = prev.ScoreHistory
	return nil
}

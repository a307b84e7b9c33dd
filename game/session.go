package game

import (
	"time"

	"snake-arena/game/manager"
)

// Phase is the top-level state of a session.
type Phase int

const (
	Waiting Phase = iota
	Running
	Paused
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Session is the mutable per-run state owned by the Game. Every other
// component either is stateless or receives session data read-only.
type Session struct {
	Score int
	Phase Phase
	Cause manager.Cause // what ended the run, CauseNone while alive

	graceUntil time.Time // fatal checks suppressed before this instant
	pausedAt   time.Time // set while Phase == Paused
}

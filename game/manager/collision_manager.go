package manager

import (
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// Cause identifies what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CauseWall
	CauseSelf
	CauseAgent
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseAgent:
		return "agent"
	default:
		return "unknown"
	}
}

// CollisionManager evaluates collision predicates over the current
// positions. It holds no mutable state beyond the grid dimensions.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{grid: grid}
}

// HitsWall reports whether the snake's head has left the grid.
func (cm *CollisionManager) HitsWall(s *entity.Snake) bool {
	return !cm.grid.Contains(s.Head())
}

// HitsSelf reports whether the head overlaps any non-head segment.
func (cm *CollisionManager) HitsSelf(s *entity.Snake) bool {
	head := s.Head()
	for _, seg := range s.Body[:len(s.Body)-1] {
		if seg == head {
			return true
		}
	}
	return false
}

// HitsOther reports whether the snake's head overlaps any segment of
// other, its head included: head-to-head counts as a collision.
func (cm *CollisionManager) HitsOther(s, other *entity.Snake) bool {
	head := s.Head()
	for _, seg := range other.Body {
		if seg == head {
			return true
		}
	}
	return false
}

// HitsFood reports whether the head sits on the food cell.
func (cm *CollisionManager) HitsFood(s *entity.Snake, food types.Point) bool {
	return s.Head() == food
}

// FirstFatal evaluates the fatal checks in fixed precedence: wall,
// then self, then each other snake in spawn order. The first hit wins
// and later checks are not evaluated. The returned index identifies
// the snake hit for CauseAgent and is -1 otherwise.
func (cm *CollisionManager) FirstFatal(s *entity.Snake, others []*entity.Snake) (Cause, int) {
	if cm.HitsWall(s) {
		return CauseWall, -1
	}
	if cm.HitsSelf(s) {
		return CauseSelf, -1
	}
	for i, other := range others {
		if cm.HitsOther(s, other) {
			return CauseAgent, i
		}
	}
	return CauseNone, -1
}

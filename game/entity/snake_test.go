package entity

import (
	"testing"

	"snake-arena/game/types"
)

func newTestSnake(length int) *Snake {
	return NewSnake(Human, types.Point{X: 10, Y: 10}, types.Right, length, Color{})
}

func TestNewSnakeLayout(t *testing.T) {
	s := newTestSnake(6)
	if s.Len() != 6 {
		t.Fatalf("length = %d, want 6", s.Len())
	}
	if got := s.Head(); got != (types.Point{X: 10, Y: 10}) {
		t.Errorf("head = %v, want {10 10}", got)
	}
	// Segments lie one cell apart behind the head.
	for i := 1; i < len(s.Body); i++ {
		prev, cur := s.Body[i-1], s.Body[i]
		if cur.X-prev.X != 1 || cur.Y != prev.Y {
			t.Errorf("segments %d and %d not adjacent: %v %v", i-1, i, prev, cur)
		}
	}
}

func TestAdvanceKeepsLength(t *testing.T) {
	s := newTestSnake(6)
	tail := s.Body[0]
	s.Advance(types.Right)
	if s.Len() != 6 {
		t.Errorf("length = %d after advance, want 6", s.Len())
	}
	if got := s.Head(); got != (types.Point{X: 11, Y: 10}) {
		t.Errorf("head = %v, want {11 10}", got)
	}
	for _, seg := range s.Body {
		if seg == tail {
			t.Errorf("old tail %v still present", tail)
		}
	}
}

func TestAdvanceAppliesPendingGrowth(t *testing.T) {
	s := newTestSnake(6)
	s.Grow()
	if s.PendingGrowth() != 1 {
		t.Fatalf("pending growth = %d, want 1", s.PendingGrowth())
	}

	tail := s.Body[0]
	s.Advance(types.Right)
	if s.Len() != 7 {
		t.Errorf("length = %d after growth, want 7", s.Len())
	}
	if s.Body[0] != tail {
		t.Errorf("tail moved during growth: %v, want %v", s.Body[0], tail)
	}
	if s.PendingGrowth() != 0 {
		t.Errorf("pending growth = %d after apply, want 0", s.PendingGrowth())
	}

	// Growth applies exactly once per pending unit.
	s.Advance(types.Right)
	if s.Len() != 7 {
		t.Errorf("length = %d after plain advance, want 7", s.Len())
	}
}

func TestLengthNeverDecreases(t *testing.T) {
	s := newTestSnake(3)
	prev := s.Len()
	for i := 0; i < 50; i++ {
		if i%7 == 0 {
			s.Grow()
		}
		s.Advance(types.Right)
		if s.Len() < prev {
			t.Fatalf("length decreased from %d to %d at step %d", prev, s.Len(), i)
		}
		prev = s.Len()
	}
}

func TestResetRestoresSpawnState(t *testing.T) {
	s := newTestSnake(6)
	for i := 0; i < 5; i++ {
		s.Grow()
		s.Advance(types.Down)
	}
	s.Reset()
	if s.Len() != 6 {
		t.Errorf("length = %d after reset, want 6", s.Len())
	}
	if s.Direction != types.Right {
		t.Errorf("direction = %v after reset, want Right", s.Direction)
	}
	if got := s.Head(); got != (types.Point{X: 10, Y: 10}) {
		t.Errorf("head = %v after reset, want {10 10}", got)
	}
	if s.PendingGrowth() != 0 {
		t.Errorf("pending growth = %d after reset, want 0", s.PendingGrowth())
	}
}

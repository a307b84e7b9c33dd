package entity

import (
	"snake-arena/game/types"
)

// Kind tags who supplies an agent's headings.
type Kind int

const (
	Human Kind = iota
	Autonomous
)

type Color struct {
	R, G, B uint8
}

// Snake is the shared agent shape for the player and the autonomous
// wanderers. Body is ordered tail-first; the head is the last element.
type Snake struct {
	Body      []types.Point
	Direction types.Point
	Kind      Kind
	Color     Color

	pendingGrowth int

	spawn    types.Point
	spawnDir types.Point
	spawnLen int
}

func NewSnake(kind Kind, spawn, dir types.Point, length int, color Color) *Snake {
	s := &Snake{
		Kind:     kind,
		Color:    color,
		spawn:    spawn,
		spawnDir: dir,
		spawnLen: length,
	}
	s.Reset()
	return s
}

// Reset rebuilds the body at the spawn point with the initial length,
// laid out behind the head along the reverse of the spawn heading.
func (s *Snake) Reset() {
	s.Direction = s.spawnDir
	s.pendingGrowth = 0
	back := s.spawnDir.Reverse()
	s.Body = s.Body[:0]
	for i := s.spawnLen - 1; i >= 0; i-- {
		s.Body = append(s.Body, types.Point{
			X: s.spawn.X + back.X*i,
			Y: s.spawn.Y + back.Y*i,
		})
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Advance moves the snake one cell along heading. Length is unchanged
// unless growth is pending, in which case the tail removal is skipped
// once per pending unit.
func (s *Snake) Advance(heading types.Point) {
	s.Direction = heading
	s.Body = append(s.Body, s.Head().Add(heading))
	if s.pendingGrowth > 0 {
		s.pendingGrowth--
		return
	}
	s.Body = s.Body[1:]
}

// Grow marks one pending growth unit, applied on the next Advance.
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// PendingGrowth reports queued growth units not yet applied.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

package ai

import (
	"golang.org/x/exp/rand"

	"snake-arena/game/types"
)

// Tunables for the wander policy.
type Tunables struct {
	WallMargin int     // cells from a wall that count as "near"
	TurnChance float64 // probability of a spontaneous turn at a decision point
	MinDelay   int     // ticks between decision points, lower bound
	MaxDelay   int     // ticks between decision points, upper bound
}

// Policy drives one autonomous snake with a wall-aware random wander.
// A decision made on one tick is committed on the next movement, so
// autonomous agents carry the same one-tick latency as human input.
type Policy struct {
	pending   types.Point
	countdown int

	tun Tunables
	rng *rand.Rand
}

// NewPolicy creates a policy whose first committed heading is initial.
// The rng must be non-nil; seed it for reproducible runs.
func NewPolicy(initial types.Point, tun Tunables, rng *rand.Rand) *Policy {
	p := &Policy{tun: tun, rng: rng}
	p.ResetHeading(initial)
	return p
}

// ResetHeading discards pending state and restarts from heading.
func (p *Policy) ResetHeading(heading types.Point) {
	p.pending = heading
	p.countdown = p.nextDelay()
}

// Step returns the heading the agent commits for this tick. An agent
// about to leave the grid bounces: its pending heading is forced to
// the reverse of its current heading, overriding any prior decision.
func (p *Policy) Step(head, heading types.Point, grid types.Grid) types.Point {
	if !grid.Contains(head.Add(p.pending)) {
		p.pending = heading.Reverse()
	}
	committed := p.pending

	p.countdown--
	if p.countdown <= 0 {
		p.decide(head, committed, grid)
		p.countdown = p.nextDelay()
	}
	return committed
}

// Pending exposes the heading scheduled for the next movement.
func (p *Policy) Pending() types.Point {
	return p.pending
}

// decide turns when the next cell along the current heading is within
// the wall margin, or on a random draw. The new heading is picked
// uniformly from the three non-reverse directions; an autonomous agent
// never reverses into itself by decision.
func (p *Policy) decide(head, heading types.Point, grid types.Grid) {
	next := head.Add(heading)
	nearWall := next.X < p.tun.WallMargin || next.X >= grid.Width-p.tun.WallMargin ||
		next.Y < p.tun.WallMargin || next.Y >= grid.Height-p.tun.WallMargin
	if !nearWall && p.rng.Float64() >= p.tun.TurnChance {
		return
	}

	rev := heading.Reverse()
	options := make([]types.Point, 0, 3)
	for _, d := range []types.Point{types.Up, types.Down, types.Left, types.Right} {
		if d != rev {
			options = append(options, d)
		}
	}
	p.pending = options[p.rng.Intn(len(options))]
}

func (p *Policy) nextDelay() int {
	span := p.tun.MaxDelay - p.tun.MinDelay
	if span <= 0 {
		return p.tun.MinDelay
	}
	return p.tun.MinDelay + p.rng.Intn(span+1)
}

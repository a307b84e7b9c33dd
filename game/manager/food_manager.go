package manager

import (
	"log/slog"

	"golang.org/x/exp/rand"

	"snake-arena/game/entity"
	"snake-arena/game/types"
)

// FoodManager owns food placement inside the arena.
type FoodManager struct {
	grid       types.Grid
	maxRetries int
	rng        *rand.Rand
	food       types.Point
}

func NewFoodManager(grid types.Grid, maxRetries int, rng *rand.Rand) *FoodManager {
	return &FoodManager{
		grid:       grid,
		maxRetries: maxRetries,
		rng:        rng,
	}
}

// Food returns the current food cell.
func (fm *FoodManager) Food() types.Point {
	return fm.food
}

// Place pins food to a fixed cell, bypassing sampling. Used by
// scripted scenarios.
func (fm *FoodManager) Place(pos types.Point) {
	fm.food = pos
}

// Respawn places food on a cell free of every snake segment, using
// rejection sampling with a bounded retry count. On exhaustion the
// last sampled cell is kept and the session keeps running degraded.
func (fm *FoodManager) Respawn(snakes []*entity.Snake) types.Point {
	var candidate types.Point
	for attempt := 0; attempt < fm.maxRetries; attempt++ {
		candidate = types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !occupied(candidate, snakes) {
			fm.food = candidate
			return candidate
		}
	}
	slog.Warn("food placement retries exhausted, keeping last sample",
		"x", candidate.X, "y", candidate.Y, "retries", fm.maxRetries)
	fm.food = candidate
	return candidate
}

func occupied(pos types.Point, snakes []*entity.Snake) bool {
	for _, s := range snakes {
		for _, seg := range s.Body {
			if seg == pos {
				return true
			}
		}
	}
	return false
}

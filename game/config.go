package game

import (
	"fmt"
	"time"
)

// Config carries every tunable of a session. The driver builds one
// from flags and hands it to New; nothing in here is global.
type Config struct {
	GridWidth  int
	GridHeight int
	CellSize   int // pixels per grid cell, renderer hint only

	InitialLength int
	NumAutonomous int

	BaseInterval  time.Duration // movement interval at multiplier 1.0
	IncreaseRate  float64       // speed gained per 50 points
	MaxMultiplier float64
	MinUserSpeed  float64
	MaxUserSpeed  float64
	UserSpeedStep float64

	GraceDuration time.Duration

	AIWallMargin int
	AITurnChance float64
	AIMinDelay   int
	AIMaxDelay   int

	FoodRetries int

	// Seed drives all randomness in the session. Zero means seed from
	// the wall clock at startup.
	Seed uint64
}

func DefaultConfig() Config {
	return Config{
		GridWidth:     40,
		GridHeight:    30,
		CellSize:      20,
		InitialLength: 6,
		NumAutonomous: 3,
		BaseInterval:  150 * time.Millisecond,
		IncreaseRate:  0.1,
		MaxMultiplier: 2.5,
		MinUserSpeed:  0.5,
		MaxUserSpeed:  2.0,
		UserSpeedStep: 0.1,
		GraceDuration: 3 * time.Second,
		AIWallMargin:  1,
		AITurnChance:  0.15,
		AIMinDelay:    4,
		AIMaxDelay:    12,
		FoodRetries:   256,
	}
}

func (c Config) Validate() error {
	if c.GridWidth < 8 || c.GridHeight < 8 {
		return fmt.Errorf("grid %dx%d too small, need at least 8x8", c.GridWidth, c.GridHeight)
	}
	if c.InitialLength < 1 || c.InitialLength > c.GridWidth/2 {
		return fmt.Errorf("initial length %d does not fit the grid", c.InitialLength)
	}
	if c.NumAutonomous < 0 {
		return fmt.Errorf("negative autonomous agent count %d", c.NumAutonomous)
	}
	if c.BaseInterval <= 0 {
		return fmt.Errorf("base interval must be positive, got %v", c.BaseInterval)
	}
	if c.MinUserSpeed <= 0 || c.MaxUserSpeed < c.MinUserSpeed {
		return fmt.Errorf("invalid user speed range [%v, %v]", c.MinUserSpeed, c.MaxUserSpeed)
	}
	if c.AITurnChance < 0 || c.AITurnChance > 1 {
		return fmt.Errorf("turn chance %v outside [0, 1]", c.AITurnChance)
	}
	if c.FoodRetries < 1 {
		return fmt.Errorf("food retries must be at least 1, got %d", c.FoodRetries)
	}
	return nil
}

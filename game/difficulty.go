package game

import "time"

// DifficultyScaler maps cumulative score and the user speed setting to
// the effective movement interval. The score-driven part only ever
// speeds the game up; the user part is reversible.
type DifficultyScaler struct {
	baseInterval  time.Duration
	increaseRate  float64
	maxMultiplier float64
	minUser       float64
	maxUser       float64

	userSpeed float64
}

func NewDifficultyScaler(cfg Config) *DifficultyScaler {
	return &DifficultyScaler{
		baseInterval:  cfg.BaseInterval,
		increaseRate:  cfg.IncreaseRate,
		maxMultiplier: cfg.MaxMultiplier,
		minUser:       cfg.MinUserSpeed,
		maxUser:       cfg.MaxUserSpeed,
		userSpeed:     1.0,
	}
}

// SpeedMultiplier returns the score-driven base multiplier: one step
// of increaseRate per 50 points, clamped to the configured maximum.
// Monotonically non-decreasing in score.
func (d *DifficultyScaler) SpeedMultiplier(score int) float64 {
	m := 1 + float64(score/50)*d.increaseRate
	if m > d.maxMultiplier {
		m = d.maxMultiplier
	}
	return m
}

// AdjustUserSpeed shifts the user multiplier by delta, clamped to the
// configured range, and returns the new value.
func (d *DifficultyScaler) AdjustUserSpeed(delta float64) float64 {
	d.userSpeed += delta
	if d.userSpeed < d.minUser {
		d.userSpeed = d.minUser
	}
	if d.userSpeed > d.maxUser {
		d.userSpeed = d.maxUser
	}
	return d.userSpeed
}

func (d *DifficultyScaler) UserSpeed() float64 {
	return d.userSpeed
}

// Interval returns the effective movement interval for score.
func (d *DifficultyScaler) Interval(score int) time.Duration {
	return time.Duration(float64(d.baseInterval) / (d.SpeedMultiplier(score) * d.userSpeed))
}

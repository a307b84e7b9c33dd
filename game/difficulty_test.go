package game

import (
	"testing"
	"time"
)

func testScalerConfig() Config {
	cfg := DefaultConfig()
	cfg.BaseInterval = 150 * time.Millisecond
	cfg.IncreaseRate = 0.1
	cfg.MaxMultiplier = 2.0
	cfg.MinUserSpeed = 0.5
	cfg.MaxUserSpeed = 2.0
	return cfg
}

func TestSpeedMultiplierSteps(t *testing.T) {
	d := NewDifficultyScaler(testScalerConfig())
	cases := []struct {
		score int
		want  float64
	}{
		{0, 1.0},
		{40, 1.0},
		{50, 1.1},
		{99, 1.1},
		{100, 1.2},
		{500, 2.0},  // clamped
		{5000, 2.0}, // still clamped
	}
	for _, tc := range cases {
		if got := d.SpeedMultiplier(tc.score); got != tc.want {
			t.Errorf("SpeedMultiplier(%d) = %v, want %v", tc.score, got, tc.want)
		}
	}
}

func TestSpeedMultiplierMonotonic(t *testing.T) {
	d := NewDifficultyScaler(testScalerConfig())
	prev := 0.0
	for score := 0; score <= 2000; score += 10 {
		m := d.SpeedMultiplier(score)
		if m < prev {
			t.Fatalf("multiplier decreased at score %d: %v < %v", score, m, prev)
		}
		if m > 2.0 {
			t.Fatalf("multiplier %v above maximum at score %d", m, score)
		}
		prev = m
	}
}

func TestUserSpeedClamped(t *testing.T) {
	d := NewDifficultyScaler(testScalerConfig())
	for i := 0; i < 100; i++ {
		d.AdjustUserSpeed(0.1)
	}
	if got := d.UserSpeed(); got != 2.0 {
		t.Errorf("user speed = %v after raising, want clamp at 2.0", got)
	}
	for i := 0; i < 100; i++ {
		d.AdjustUserSpeed(-0.1)
	}
	if got := d.UserSpeed(); got != 0.5 {
		t.Errorf("user speed = %v after lowering, want clamp at 0.5", got)
	}
}

func TestIntervalShrinksWithSpeed(t *testing.T) {
	d := NewDifficultyScaler(testScalerConfig())
	base := d.Interval(0)
	if base != 150*time.Millisecond {
		t.Errorf("interval at score 0 = %v, want 150ms", base)
	}
	if faster := d.Interval(50); faster >= base {
		t.Errorf("interval did not shrink with score: %v >= %v", faster, base)
	}
	d.AdjustUserSpeed(1.0) // user speed 2.0
	if got := d.Interval(0); got != 75*time.Millisecond {
		t.Errorf("interval at user speed 2.0 = %v, want 75ms", got)
	}
}

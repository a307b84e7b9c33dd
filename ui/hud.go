package ui

import (
	"fmt"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
)

// HUD is the presenter: it keeps the latest session info pushed by the
// core and draws the side panel once per frame. It also forwards the
// eat cue to the audio backend.
type HUD struct {
	mu        sync.Mutex
	info      game.Info
	highScore int
	cue       *AudioCue
}

func NewHUD(cue *AudioCue, highScore int) *HUD {
	return &HUD{cue: cue, highScore: highScore}
}

// StateChanged implements game.Presenter.
func (h *HUD) StateChanged(info game.Info) {
	h.mu.Lock()
	h.info = info
	if info.Score > h.highScore {
		h.highScore = info.Score
	}
	h.mu.Unlock()
}

// FoodEaten implements game.Presenter.
func (h *HUD) FoodEaten() {
	h.cue.Play()
}

// Draw renders the panel at x with the given width and screen height.
func (h *HUD) Draw(x, width, height int32) {
	h.mu.Lock()
	info := h.info
	high := h.highScore
	h.mu.Unlock()

	rl.DrawRectangle(x, 0, width, height, rl.Color{R: 20, G: 20, B: 20, A: 255})

	fontSize := min32(height/30, width/8)
	lineHeight := fontSize + fontSize/2
	pad := width / 12
	y := pad

	lines := []string{
		"SNAKE ARENA",
		"",
		fmt.Sprintf("score  %d", info.Score),
		fmt.Sprintf("best   %d", high),
		fmt.Sprintf("length %d", info.Length),
		fmt.Sprintf("speed  %.2fx", info.Speed),
		fmt.Sprintf("state  %s", info.Phase),
		"",
		"arrows/WASD move",
		"SPACE start  P pause",
		"R restart  +/- speed",
	}
	for _, line := range lines {
		if line != "" {
			rl.DrawText(line, x+pad, y, fontSize, rl.RayWhite)
		}
		y += lineHeight
	}
}

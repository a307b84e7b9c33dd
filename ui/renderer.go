package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
	"snake-arena/game/entity"
	"snake-arena/game/types"
)

const borderPadding = 10

// Renderer draws one frame from a game snapshot. It never touches the
// simulation; everything it needs arrives copied inside the snapshot.
type Renderer struct {
	hud *HUD

	cellSize     int32
	screenWidth  int32
	screenHeight int32
	panelWidth   int32
	gridWidth    int32
	gridHeight   int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(hud *HUD) *Renderer {
	r := &Renderer{hud: hud}
	r.UpdateDimensions(types.Grid{Width: 1, Height: 1})
	return r
}

// UpdateDimensions recomputes the layout from the current window size.
func (r *Renderer) UpdateDimensions(grid types.Grid) {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.panelWidth = r.screenWidth / 5

	availableW := r.screenWidth - r.panelWidth - borderPadding*2
	availableH := r.screenHeight - borderPadding*2
	cellW := availableW / int32(grid.Width)
	cellH := availableH / int32(grid.Height)
	r.cellSize = min32(cellW, cellH)
	if r.cellSize < 1 {
		r.cellSize = 1
	}

	r.gridWidth = r.cellSize * int32(grid.Width)
	r.gridHeight = r.cellSize * int32(grid.Height)
	r.offsetX = borderPadding
	r.offsetY = (r.screenHeight - r.gridHeight) / 2
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// Draw renders one complete frame: arena, food, snakes, phase overlay
// and the HUD panel.
func (r *Renderer) Draw(snap game.Snapshot) {
	r.UpdateDimensions(snap.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawArena(snap)
	r.drawFood(snap.Food)
	for _, s := range snap.Snakes {
		r.drawSnake(s, snap.InGrace)
	}
	r.drawOverlay(snap)
	r.hud.Draw(r.screenWidth-r.panelWidth, r.panelWidth, r.screenHeight)

	rl.EndDrawing()
}

func (r *Renderer) drawArena(snap game.Snapshot) {
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.gridWidth+2, r.gridHeight+2, rl.DarkGray)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.gridWidth, r.gridHeight, rl.Black)
	for x := int32(0); x <= int32(snap.Grid.Width); x++ {
		px := r.offsetX + x*r.cellSize
		rl.DrawLine(px, r.offsetY, px, r.offsetY+r.gridHeight, rl.Color{R: 40, G: 40, B: 40, A: 255})
	}
	for y := int32(0); y <= int32(snap.Grid.Height); y++ {
		py := r.offsetY + y*r.cellSize
		rl.DrawLine(r.offsetX, py, r.offsetX+r.gridWidth, py, rl.Color{R: 40, G: 40, B: 40, A: 255})
	}
}

func (r *Renderer) cellRect(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawFood(food types.Point) {
	x, y := r.cellRect(food)
	rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, float32(r.cellSize)/2.5, rl.Red)
}

func (r *Renderer) drawSnake(s game.SnakeView, inGrace bool) {
	body := rl.Color{R: s.Color.R, G: s.Color.G, B: s.Color.B, A: 255}
	if inGrace && s.Kind == entity.Human {
		// Flicker the player while collisions are forgiven.
		body.A = 160
	}
	head := rl.Color{
		R: s.Color.R / 2,
		G: s.Color.G / 2,
		B: s.Color.B / 2,
		A: body.A,
	}
	for i, seg := range s.Body {
		x, y := r.cellRect(seg)
		c := body
		if i == len(s.Body)-1 {
			c = head
		}
		rl.DrawRectangle(x+1, y+1, r.cellSize-2, r.cellSize-2, c)
	}
}

func (r *Renderer) drawOverlay(snap game.Snapshot) {
	var text string
	switch snap.Phase {
	case game.Waiting:
		text = "press SPACE to start"
	case game.Paused:
		text = "paused - P to resume"
	case game.GameOver:
		text = fmt.Sprintf("game over (%s) - R to restart", snap.Cause)
	default:
		return
	}
	fontSize := r.screenHeight / 20
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text,
		r.offsetX+(r.gridWidth-width)/2,
		r.offsetY+r.gridHeight/2-fontSize/2,
		fontSize, rl.RayWhite)
}

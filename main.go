package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game"
	"snake-arena/game/types"
	"snake-arena/logging"
	"snake-arena/ui"
)

const statsFile = "data/gamestats.json"

func main() {
	cfg := game.DefaultConfig()
	flag.IntVar(&cfg.GridWidth, "width", cfg.GridWidth, "Arena width in cells")
	flag.IntVar(&cfg.GridHeight, "height", cfg.GridHeight, "Arena height in cells")
	flag.IntVar(&cfg.NumAutonomous, "bots", cfg.NumAutonomous, "Number of autonomous snakes")
	flag.DurationVar(&cfg.BaseInterval, "interval", cfg.BaseInterval, "Base movement interval")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "RNG seed (0 = from clock)")
	mute := flag.Bool("mute", false, "Disable audio")
	debug := flag.Bool("debug", false, "Verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logging.Setup(os.Stderr, level)

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	stats := game.NewStats()
	if err := stats.Load(statsFile); err != nil && !os.IsNotExist(err) {
		slog.Warn("could not load stats", "err", err)
	}

	windowW := int32(cfg.GridWidth * cfg.CellSize * 5 / 4) // grid plus HUD panel
	windowH := int32(cfg.GridHeight*cfg.CellSize + 40)
	rl.InitWindow(windowW, windowH, "Snake Arena")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	hud := ui.NewHUD(ui.NewAudioCue(*mute), stats.HighScore)
	renderer := ui.NewRenderer(hud)
	g := game.New(cfg, hud)

	slog.Info("session started",
		"session", stats.SessionID,
		"grid_width", cfg.GridWidth, "grid_height", cfg.GridHeight,
		"bots", cfg.NumAutonomous)

	prevPhase := g.Phase()
	for !rl.WindowShouldClose() {
		readInput(g, cfg.UserSpeedStep)

		now := time.Now()
		g.Update(now)

		phase := g.Phase()
		if phase == game.GameOver && prevPhase != game.GameOver {
			stats.Record(g.Score())
			if err := stats.Save(statsFile); err != nil {
				slog.Warn("could not save stats", "err", err)
			}
			slog.Debug("run ended", "score", g.Score())
		}
		prevPhase = phase

		renderer.Draw(g.Snapshot(now))
	}

	if err := stats.Save(statsFile); err != nil {
		slog.Warn("could not save stats", "err", err)
	}
}

// readInput translates raw key state into the core's directional
// intents and control edges. Key codes never cross into the core.
func readInput(g *game.Game, speedStep float64) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		g.SubmitDirection(types.Up)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		g.SubmitDirection(types.Down)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		g.SubmitDirection(types.Left)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		g.SubmitDirection(types.Right)
	}

	g.SetStartHeld(rl.IsKeyDown(rl.KeySpace))
	g.SetPauseHeld(rl.IsKeyDown(rl.KeyP))
	g.SetRestartHeld(rl.IsKeyDown(rl.KeyR))

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.AdjustUserSpeed(speedStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.AdjustUserSpeed(-speedStep)
	}
}

package game

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-arena/game/ai"
	"snake-arena/game/entity"
	"snake-arena/game/input"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

// Presenter receives session changes for display and the one-shot eat
// cue. Calls are guarded: a failing presenter cannot stop the
// simulation.
type Presenter interface {
	StateChanged(Info)
	FoodEaten()
}

// Info is the presenter-facing view of the session.
type Info struct {
	Phase  Phase
	Score  int
	Length int
	Speed  float64 // effective multiplier, score-driven times user
	Cause  manager.Cause
}

// SnakeView is one agent inside a Snapshot. Body is a copy; renderers
// may hold it across the frame.
type SnakeView struct {
	Body      []types.Point
	Direction types.Point
	Kind      entity.Kind
	Color     entity.Color
}

// Snapshot is the renderer-facing view of one fully-applied tick.
type Snapshot struct {
	Grid    types.Grid
	Phase   Phase
	InGrace bool
	Score   int
	Food    types.Point
	Cause   manager.Cause
	Snakes  []SnakeView
}

var botPalette = []entity.Color{
	{R: 230, G: 120, B: 60},
	{R: 120, G: 140, B: 230},
	{R: 200, G: 90, B: 200},
	{R: 90, G: 200, B: 200},
	{R: 220, G: 200, B: 80},
}

// Game owns the session state machine and applies one simulation tick
// at a time. All mutation happens inside Update; input callbacks only
// enqueue intents and held-key state for the next frame to consume.
type Game struct {
	cfg  Config
	grid types.Grid

	session  Session
	player   *entity.Snake
	bots     []*entity.Snake
	policies []*ai.Policy

	queue      *input.Queue
	collisions *manager.CollisionManager
	food       *manager.FoodManager
	difficulty *DifficultyScaler
	clock      Clock

	presenter Presenter

	startHeld   bool
	pauseHeld   bool
	restartHeld bool
	startEdge   bool
	pauseEdge   bool
	restartEdge bool
}

// New builds a session in the Waiting phase. cfg must have passed
// Validate. A nil presenter is allowed.
func New(cfg Config, presenter Presenter) *Game {
	grid := types.Grid{Width: cfg.GridWidth, Height: cfg.GridHeight}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	player := entity.NewSnake(entity.Human,
		types.Point{X: grid.Width / 4, Y: grid.Height / 2},
		types.Right, cfg.InitialLength,
		entity.Color{R: 80, G: 220, B: 100})

	bots := make([]*entity.Snake, cfg.NumAutonomous)
	policies := make([]*ai.Policy, cfg.NumAutonomous)
	tun := ai.Tunables{
		WallMargin: cfg.AIWallMargin,
		TurnChance: cfg.AITurnChance,
		MinDelay:   cfg.AIMinDelay,
		MaxDelay:   cfg.AIMaxDelay,
	}
	for i := range bots {
		spawn := types.Point{
			X: grid.Width - grid.Width/4,
			Y: grid.Height * (i + 1) / (cfg.NumAutonomous + 1),
		}
		bots[i] = entity.NewSnake(entity.Autonomous,
			spawn, types.Left, cfg.InitialLength,
			botPalette[i%len(botPalette)])
		// Each agent draws from its own stream so runs replay exactly
		// under a fixed seed regardless of agent count.
		policies[i] = ai.NewPolicy(types.Left, tun,
			rand.New(rand.NewSource(seed+uint64(i)+1)))
	}

	g := &Game{
		cfg:        cfg,
		grid:       grid,
		player:     player,
		bots:       bots,
		policies:   policies,
		queue:      input.NewQueue(),
		collisions: manager.NewCollisionManager(grid),
		food:       manager.NewFoodManager(grid, cfg.FoodRetries, rand.New(rand.NewSource(seed))),
		difficulty: NewDifficultyScaler(cfg),
		presenter:  presenter,
	}
	g.food.Respawn(g.allSnakes())
	g.notifyState()
	return g
}

// SubmitDirection buffers a directional intent from the input source.
// Illegal intents are filtered at the queue boundary.
func (g *Game) SubmitDirection(dir types.Point) {
	g.queue.Submit(dir, g.player.Direction)
}

// SetStartHeld records the held state of the start input. The state
// machine reacts to the rising edge only.
func (g *Game) SetStartHeld(held bool) {
	if held && !g.startHeld {
		g.startEdge = true
	}
	g.startHeld = held
}

// SetPauseHeld records the held state of the pause input, edge-triggered.
func (g *Game) SetPauseHeld(held bool) {
	if held && !g.pauseHeld {
		g.pauseEdge = true
	}
	g.pauseHeld = held
}

// SetRestartHeld records the held state of the restart input, edge-triggered.
func (g *Game) SetRestartHeld(held bool) {
	if held && !g.restartHeld {
		g.restartEdge = true
	}
	g.restartHeld = held
}

// AdjustUserSpeed shifts the user speed multiplier, clamped to the
// configured range. Independent of the score-driven difficulty.
func (g *Game) AdjustUserSpeed(delta float64) {
	g.difficulty.AdjustUserSpeed(delta)
	g.notifyState()
}

// Update is the once-per-frame driver entry point: it consumes pending
// control edges and applies at most one simulation tick when the
// movement interval has elapsed. now must come from a monotonic clock.
func (g *Game) Update(now time.Time) {
	g.handleControls(now)
	if g.session.Phase != Running {
		return
	}
	if !g.clock.ShouldTick(now, g.difficulty.Interval(g.session.Score)) {
		return
	}
	g.step(now)
}

func (g *Game) handleControls(now time.Time) {
	if g.startEdge {
		g.startEdge = false
		if g.session.Phase == Waiting {
			g.session.Phase = Running
			g.session.graceUntil = now.Add(g.cfg.GraceDuration)
			g.clock.Anchor(now)
			g.notifyState()
		}
	}
	if g.pauseEdge {
		g.pauseEdge = false
		switch g.session.Phase {
		case Running:
			g.session.Phase = Paused
			g.session.pausedAt = now
			g.notifyState()
		case Paused:
			g.session.Phase = Running
			// Paused time must not consume the grace period.
			g.session.graceUntil = g.session.graceUntil.Add(now.Sub(g.session.pausedAt))
			g.session.pausedAt = time.Time{}
			g.clock.Anchor(now)
			g.notifyState()
		}
	}
	if g.restartEdge {
		g.restartEdge = false
		if g.session.Phase == GameOver {
			g.reset()
		}
	}
}

// step applies one simulation tick: commit headings, advance every
// agent, resolve food, then the fatal checks in fixed precedence.
func (g *Game) step(now time.Time) {
	heading := g.queue.Next(g.player.Direction)
	// Growth marked before the move lands in the same tick as the
	// pickup: the tail survives the advance that reaches the food.
	if g.player.Head().Add(heading) == g.food.Food() {
		g.player.Grow()
	}
	g.player.Advance(heading)

	for i, bot := range g.bots {
		dir := g.policies[i].Step(bot.Head(), bot.Direction, g.grid)
		bot.Advance(dir)
	}

	// Food cannot coincide with a fatal cell: placement rejects live
	// segments, so eating and dying are mutually exclusive in a tick.
	if g.collisions.HitsFood(g.player, g.food.Food()) {
		g.session.Score += types.ScorePerFood
		g.food.Respawn(g.allSnakes())
		g.notifyFood()
		g.notifyState()
	}

	if g.inGrace(now) {
		return
	}
	if cause, _ := g.collisions.FirstFatal(g.player, g.bots); cause != manager.CauseNone {
		g.session.Phase = GameOver
		g.session.Cause = cause
		g.notifyState()
	}
}

// reset reinitializes all session, agent, and food state from scratch
// and re-enters Waiting. The user speed setting survives restarts.
func (g *Game) reset() {
	g.session = Session{}
	g.player.Reset()
	for i, bot := range g.bots {
		bot.Reset()
		g.policies[i].ResetHeading(bot.Direction)
	}
	g.queue.Clear()
	g.food.Respawn(g.allSnakes())
	g.clock.Reset()
	g.notifyState()
}

func (g *Game) inGrace(now time.Time) bool {
	return now.Before(g.session.graceUntil)
}

func (g *Game) allSnakes() []*entity.Snake {
	all := make([]*entity.Snake, 0, len(g.bots)+1)
	all = append(all, g.player)
	return append(all, g.bots...)
}

// Phase exposes the current session phase.
func (g *Game) Phase() Phase {
	return g.session.Phase
}

// Score exposes the current score.
func (g *Game) Score() int {
	return g.session.Score
}

// Snapshot returns a read-only copy of the state a renderer needs for
// one frame. Bodies are copied so the renderer can never mutate the
// simulation.
func (g *Game) Snapshot(now time.Time) Snapshot {
	snakes := make([]SnakeView, 0, len(g.bots)+1)
	for _, s := range g.allSnakes() {
		body := make([]types.Point, len(s.Body))
		copy(body, s.Body)
		snakes = append(snakes, SnakeView{
			Body:      body,
			Direction: s.Direction,
			Kind:      s.Kind,
			Color:     s.Color,
		})
	}
	return Snapshot{
		Grid:    g.grid,
		Phase:   g.session.Phase,
		InGrace: g.session.Phase == Running && g.inGrace(now),
		Score:   g.session.Score,
		Food:    g.food.Food(),
		Cause:   g.session.Cause,
		Snakes:  snakes,
	}
}

func (g *Game) info() Info {
	return Info{
		Phase:  g.session.Phase,
		Score:  g.session.Score,
		Length: g.player.Len(),
		Speed:  g.difficulty.SpeedMultiplier(g.session.Score) * g.difficulty.UserSpeed(),
		Cause:  g.session.Cause,
	}
}

// notifyState pushes the session view to the presenter. A panicking
// presenter is contained here so the tick it interrupted stays applied.
func (g *Game) notifyState() {
	if g.presenter == nil {
		return
	}
	defer func() { _ = recover() }()
	g.presenter.StateChanged(g.info())
}

func (g *Game) notifyFood() {
	if g.presenter == nil {
		return
	}
	defer func() { _ = recover() }()
	g.presenter.FoodEaten()
}

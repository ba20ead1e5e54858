// Package snake implements the snake arena: a player snake, a heuristic
// enemy snake and a set of food pellets on a fixed board.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/alcherk/snake-arena/internal/config"
	"github.com/alcherk/snake-arena/internal/core"
	"github.com/alcherk/snake-arena/internal/registry"
)

// Variant IDs.
const (
	VariantClassic = "snake"
	VariantFrenzy  = "snake_frenzy"
)

// Game is the arena controller. It owns the player, the enemy, the food set
// and the scheduler, and is driven one frame at a time by the platform.
type Game struct {
	variant string
	cfg     *config.SnakeConfig // nil until Reset loads it, unless set by WithConfig
	rng     *rand.Rand

	board  core.Rect
	player *Snake
	enemy  *Enemy
	food   *FoodSet
	sched  *Scheduler

	autopilot  Pilot // Drives the player when set
	ownPilot   bool  // autopilot was created by Reset and follows its rng
	presenter  core.Presenter
	lastResult *core.RoundResult

	score    int
	round    int
	ticks    int // Updates in the current round
	respawns int // Enemy respawns in the current round
	interval time.Duration

	// Game clock. Advances only while running and not paused.
	clock      time.Duration
	lastFrame  time.Duration
	framed     bool
	lastUpdate time.Duration
	roundStart time.Duration

	paused bool

	// Layout
	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool
}

// Package-level settings applied on the next Reset, like the CLI flags that set them.
var (
	configPath       string
	autopilotEnabled bool
)

// SetConfigPath sets a custom config file for subsequently reset games.
func SetConfigPath(path string) {
	configPath = path
}

// SetAutopilot makes subsequently reset games drive the player with a pilot
// instead of keyboard input.
func SetAutopilot(on bool) {
	autopilotEnabled = on
}

// LoadConfig loads, overrides from the environment and validates the config
// for a variant.
func LoadConfig(variant string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(variant, configPath)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyEnv(&cfg, nil); err != nil {
		return cfg, fmt.Errorf("failed to apply environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// New creates an arena game for a variant.
func New(variant string) *Game {
	return &Game{variant: variant}
}

// WithConfig fixes the configuration instead of loading it on Reset.
func (g *Game) WithConfig(cfg config.SnakeConfig) *Game {
	g.cfg = &cfg
	return g
}

func init() {
	registry.Register(VariantClassic, func() registry.Game {
		return New(VariantClassic)
	})
	registry.Register(VariantFrenzy, func() registry.Game {
		return New(VariantFrenzy)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantFrenzy {
		return "Snake Arena (Frenzy)"
	}
	return "Snake Arena"
}

// SetPresenter sets the sink that receives round results.
func (g *Game) SetPresenter(p core.Presenter) {
	g.presenter = p
}

// SetPilot drives the player with p. A nil pilot returns control to input.
func (g *Game) SetPilot(p Pilot) {
	g.autopilot = p
	g.ownPilot = false
}

// Reset starts the game over from round one. A zero screen size means no
// rendering surface and disables the size check.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg == nil {
		cfg, err := LoadConfig(g.variant)
		if err != nil {
			cfg = config.DefaultFor(g.variant)
		}
		g.cfg = &cfg
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.board = core.NewRect(0, 0, g.cfg.Board.Width, g.cfg.Board.Height)
	g.sched = NewScheduler()
	if g.ownPilot || g.autopilot == nil {
		g.autopilot = nil
		g.ownPilot = false
		if autopilotEnabled {
			g.autopilot = NewPriorityPilot(g.rng)
			g.ownPilot = true
		}
	}

	g.clock = 0
	g.lastFrame = 0
	g.framed = false
	g.paused = false
	g.round = 0
	g.lastResult = nil

	g.Resize(rc.ScreenW, rc.ScreenH)
	g.startRound()
}

// Resize recomputes the layout for a new screen size.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if w == 0 && h == 0 {
		g.tooSmall = false
		return
	}

	requiredW := g.board.W + 2
	requiredH := g.board.H + hudHeight + 2
	g.tooSmall = w < requiredW || h < requiredH
	g.offsetX = (w - requiredW) / 2
	g.offsetY = hudHeight
}

// startRound recreates the player, enemy and food and resets score and speed.
func (g *Game) startRound() {
	g.sched.CancelAll()

	g.round++
	g.score = 0
	g.ticks = 0
	g.respawns = 0
	g.interval = time.Duration(g.cfg.Speed.InitialIntervalMs) * time.Millisecond
	g.roundStart = g.clock
	g.lastUpdate = g.clock

	g.player = NewSnake(g.board.Center(), core.DirRight, g.cfg.Player.Length)
	g.enemy = g.newEnemy(g.cfg.Enemy.CenterDistance)
	g.food = NewFoodSet(g.board, foodOptions(*g.cfg), g.rng, g.sched, g.occupied())
}

// newEnemy spawns an enemy away from the player.
func (g *Game) newEnemy(centerDistance int) *Enemy {
	head, heading := SpawnEnemy(g.board, g.player.Body(), SpawnOptions{
		MinDistance:     g.cfg.Enemy.SpawnMinDistance,
		CenterDistance:  centerDistance,
		Attempts:        g.cfg.Enemy.SpawnAttempts,
		FallbackSamples: g.cfg.Enemy.FallbackSamples,
		Length:          g.cfg.Enemy.Length,
	}, g.rng)
	return NewEnemy(head, heading, g.cfg.Enemy.Length, g.newEnemyPilot())
}

func (g *Game) newEnemyPilot() Pilot {
	if g.cfg.Enemy.Heuristic == config.HeuristicGreedy {
		return GreedyPilot{}
	}
	return NewPriorityPilot(g.rng)
}

func foodOptions(cfg config.SnakeConfig) FoodOptions {
	opts := FoodOptions{
		Policy:   FoodFixed,
		Count:    cfg.Food.Count,
		MinCount: cfg.Food.MinCount,
		MaxCount: cfg.Food.MaxCount,
		DelayMin: time.Duration(cfg.Food.RespawnMinMs) * time.Millisecond,
		DelayMax: time.Duration(cfg.Food.RespawnMaxMs) * time.Millisecond,
		Attempts: cfg.Food.PlaceAttempts,
	}
	if cfg.Food.Policy == config.FoodPolicyDelayed {
		opts.Policy = FoodDelayed
	}
	return opts
}

// occupied returns every cell covered by either snake.
func (g *Game) occupied() []core.Point {
	cells := make([]core.Point, 0, g.player.Len()+g.enemy.Len())
	cells = append(cells, g.player.Body()...)
	return append(cells, g.enemy.Body()...)
}

// Step handles one frame of input and runs at most one update.
func (g *Game) Step(in core.InputFrame, now time.Duration) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.startRound()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.autopilot == nil {
		for _, d := range in.Headings() {
			g.player.SetHeading(d)
		}
	}

	updated := g.Frame(now)
	return core.StepResult{State: g.State(), Updated: updated}
}

// Frame advances the game clock to the frame timestamp now, fires due
// scheduled events and runs an update if a full tick interval has passed
// since the last one. Time spent paused or with a too-small screen does not
// count.
func (g *Game) Frame(now time.Duration) bool {
	delta := time.Duration(0)
	if g.framed && now > g.lastFrame {
		delta = now - g.lastFrame
	}
	g.framed = true
	g.lastFrame = now

	if g.paused || g.tooSmall {
		return false
	}

	g.clock += delta
	g.sched.Advance(g.clock)

	if g.clock-g.lastUpdate < g.interval {
		return false
	}
	g.lastUpdate = g.clock
	g.Update()
	return true
}

// Update runs one tick: move both snakes, resolve eating, check the player
// for a round end and respawn a dead enemy.
func (g *Game) Update() {
	if g.autopilot != nil {
		g.player.SetHeading(g.autopilot.Decide(g.playerView()))
	}

	g.player.Advance(false)
	g.enemy.Advance(g.food.Positions(), g.player.Body(), g.board)
	g.ticks++

	head := g.player.Head()
	playerAte := g.food.Contains(head)
	if playerAte {
		g.player.Grow()
		g.score += g.cfg.Scoring.PointsPerFood
		g.interval -= time.Duration(g.cfg.Speed.StepMs) * time.Millisecond
		if floor := time.Duration(g.cfg.Speed.MinIntervalMs) * time.Millisecond; g.interval < floor {
			g.interval = floor
		}
	}
	if playerAte || g.enemy.Ate() {
		g.food.Refill(g.occupied())
	}

	if cause := g.collision(); cause != core.CauseNone {
		g.endRound(cause)
		return
	}

	if !g.enemy.Alive() {
		g.enemy = g.newEnemy(0)
		g.respawns++
	}
}

func (g *Game) playerView() View {
	var rival []core.Point
	if g.enemy.Alive() {
		rival = g.enemy.Body()
	}
	return View{
		Board:   g.board,
		Self:    g.player.Body(),
		Heading: g.player.NextHeading(),
		Food:    g.food.Positions(),
		Rival:   rival,
	}
}

// collision checks the player's head against the board, its own body and
// the enemy body behind the enemy's head.
func (g *Game) collision() core.EndCause {
	head := g.player.Head()
	switch {
	case !g.board.Contains(head):
		return core.CauseWall
	case g.player.CollidesAt(head):
		return core.CauseSelf
	case g.enemy.CollidesAt(head):
		return core.CauseEnemy
	}
	return core.CauseNone
}

// endRound reports the finished round and starts the next one.
func (g *Game) endRound(cause core.EndCause) {
	result := core.RoundResult{
		Variant:       g.variant,
		Round:         g.round,
		Score:         g.score,
		Length:        g.player.Len(),
		Ticks:         g.ticks,
		Cause:         cause,
		EnemyRespawns: g.respawns,
		Duration:      g.clock - g.roundStart,
	}
	g.lastResult = &result
	if g.presenter != nil {
		g.presenter.RoundOver(result)
	}
	g.startRound()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Round:  g.round,
		Paused: g.paused,
	}
}

// Player returns the player snake.
func (g *Game) Player() *Snake {
	return g.player
}

// Enemy returns the current enemy.
func (g *Game) Enemy() *Enemy {
	return g.enemy
}

// Food returns the pellet positions. Callers must not modify the slice.
func (g *Game) Food() []core.Point {
	return g.food.Positions()
}

// Interval returns the current tick interval.
func (g *Game) Interval() time.Duration {
	return g.interval
}

// Board returns the board bounds.
func (g *Game) Board() core.Rect {
	return g.board
}

// PendingEvents returns the number of scheduled events not yet fired.
func (g *Game) PendingEvents() int {
	return g.sched.Pending()
}

// LastResult returns the most recent finished round, if any.
func (g *Game) LastResult() (core.RoundResult, bool) {
	if g.lastResult == nil {
		return core.RoundResult{}, false
	}
	return *g.lastResult, true
}

package game

import (
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// State of the tick loop.
type State int

const (
	Running State = iota
	GameOver
)

// CollisionType records what ended a run.
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (ct CollisionType) String() string {
	switch ct {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Game owns the entities and advances the simulation one tick at a time.
// Pacing belongs to the caller; Update contains no timing. All methods must
// be called from the same goroutine.
type Game struct {
	cfg types.Config

	Snake      *entity.Snake
	Food       *entity.Food
	Scoreboard *manager.Scoreboard

	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager

	state    State
	delay    time.Duration
	runStart time.Time
}

func NewGame(cfg types.Config, rng *rand.Rand) *Game {
	return &Game{
		cfg:          cfg,
		Snake:        entity.NewSnake(cfg),
		Food:         entity.NewFood(cfg, rng),
		Scoreboard:   manager.NewScoreboard(cfg.HighScoreFile),
		collisionMgr: manager.NewCollisionManager(cfg),
		stateMgr:     manager.NewStateManager(cfg.DataDir),
		state:        Running,
		delay:        cfg.InitialDelay,
		runStart:     time.Now(),
	}
}

// Update advances the simulation by one tick: move the snake, resolve a food
// hit, then check for a run-ending collision.
func (g *Game) Update() {
	if g.state != Running {
		return
	}

	g.Snake.Move()
	head := g.Snake.Head()

	if g.collisionMgr.HitFood(head, g.Food.Pos) {
		g.Food.Refresh()
		g.Snake.Extend()
		g.Scoreboard.Increase(1)
		g.delay -= g.cfg.DelayDecrement
		if g.delay < g.cfg.MinDelay {
			g.delay = g.cfg.MinDelay
		}
	}

	if ct := g.checkCollision(head); ct != NoCollision {
		g.state = GameOver
		g.stateMgr.RecordRun(manager.RunStats{
			Score:    g.Scoreboard.Score(),
			Length:   g.Snake.Len(),
			Cause:    ct.String(),
			Duration: time.Since(g.runStart),
		})
		log.Info().
			Str("cause", ct.String()).
			Int("score", g.Scoreboard.Score()).
			Int("length", g.Snake.Len()).
			Msg("game over")
	}
}

func (g *Game) checkCollision(head types.Point) CollisionType {
	if g.collisionMgr.HitWall(head) {
		return WallCollision
	}
	if g.collisionMgr.HitSelf(g.Snake) {
		return SelfCollision
	}
	return NoCollision
}

// Restart returns the game to its starting state. A no-op unless the game
// is over.
func (g *Game) Restart() {
	if g.state != GameOver {
		return
	}
	g.Snake.Reset()
	g.Food.Refresh()
	g.Scoreboard.Reset()
	g.delay = g.cfg.InitialDelay
	g.state = Running
	g.runStart = time.Now()
	log.Debug().Msg("restarted")
}

// SetHeading forwards a direction intent to the snake.
func (g *Game) SetHeading(d types.Direction) {
	g.Snake.SetHeading(d)
}

func (g *Game) State() State {
	return g.state
}

// Delay is the current tick interval. It shrinks as food is eaten, down to
// the configured floor.
func (g *Game) Delay() time.Duration {
	return g.delay
}

func (g *Game) Config() types.Config {
	return g.cfg
}

// Runs exposes the session history recorded so far.
func (g *Game) Runs() []manager.RunStats {
	return g.stateMgr.Runs()
}

// SaveStats flushes the session history to disk.
func (g *Game) SaveStats() {
	g.stateMgr.Save()
}

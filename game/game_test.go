package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

func newTestGame(t *testing.T) (*Game, types.Config) {
	t.Helper()
	cfg := types.DefaultConfig()
	dir := t.TempDir()
	cfg.HighScoreFile = filepath.Join(dir, "highscore.txt")
	cfg.DataDir = filepath.Join(dir, "data")
	return NewGame(cfg, rand.New(rand.NewSource(1))), cfg
}

// parkFood moves the food to a corner the snake will not reach in these tests.
func parkFood(g *Game) {
	g.Food.Pos = types.Point{X: -260, Y: -260}
}

// feed places the food one step ahead of the head and ticks once.
func feed(g *Game) {
	head := g.Snake.Head()
	v := g.Snake.Heading().Vector(g.cfg.Step)
	g.Food.Pos = types.Point{X: head.X + v.X, Y: head.Y + v.Y}
	g.Update()
	parkFood(g)
}

func TestWallCollisionEndsRun(t *testing.T) {
	g, cfg := newTestGame(t)
	parkFood(g)

	// Head starts at the origin moving right by one step per tick; it leaves
	// the play area on the tick that puts it past the border limit.
	ticksToWall := int(cfg.BorderLimitX()/cfg.Step) + 1
	for i := 0; i < ticksToWall-1; i++ {
		g.Update()
		if g.State() != Running {
			t.Fatalf("game over after %d ticks, head at %v", i+1, g.Snake.Head())
		}
	}

	g.Update()

	if g.State() != GameOver {
		t.Fatalf("state = %v after crossing the wall, want GameOver", g.State())
	}
	runs := g.Runs()
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(runs))
	}
	if runs[0].Cause != "wall" {
		t.Errorf("run cause = %q, want wall", runs[0].Cause)
	}
}

func TestSelfCollisionEndsRun(t *testing.T) {
	g, _ := newTestGame(t)
	parkFood(g)

	// Grow long enough to turn into the body
	for i := 0; i < 3; i++ {
		feed(g)
	}

	// A tight left loop brings the head back onto its own body
	g.SetHeading(types.DirUp)
	g.Update()
	g.SetHeading(types.DirLeft)
	g.Update()
	g.SetHeading(types.DirDown)
	g.Update()

	if g.State() != GameOver {
		t.Fatalf("state = %v after looping into the body, want GameOver", g.State())
	}
	runs := g.Runs()
	if len(runs) != 1 || runs[0].Cause != "self" {
		t.Fatalf("runs = %+v, want one self-collision run", runs)
	}
}

func TestEatingFoodScoresGrowsAndSpeedsUp(t *testing.T) {
	g, cfg := newTestGame(t)

	feed(g)

	if g.State() != Running {
		t.Fatalf("game over while eating, head at %v", g.Snake.Head())
	}
	if got := g.Scoreboard.Score(); got != 1 {
		t.Errorf("score = %d, want 1", got)
	}
	if got := g.Snake.Len(); got != 4 {
		t.Errorf("length = %d, want 4", got)
	}
	if got, want := g.Delay(), cfg.InitialDelay-cfg.DelayDecrement; got != want {
		t.Errorf("delay = %v, want %v", got, want)
	}
}

func TestLengthTracksFoodEaten(t *testing.T) {
	g, _ := newTestGame(t)

	for n := 1; n <= 5; n++ {
		feed(g)
		if g.State() != Running {
			t.Fatalf("game over on feed %d, head at %v", n, g.Snake.Head())
		}
		if got, want := g.Snake.Len(), 3+n; got != want {
			t.Fatalf("length after %d foods = %d, want %d", n, got, want)
		}
	}
}

func TestDelayClampsAtFloor(t *testing.T) {
	g, cfg := newTestGame(t)
	g.delay = cfg.MinDelay + time.Millisecond

	feed(g)
	if got := g.Delay(); got != cfg.MinDelay {
		t.Errorf("delay = %v, want floor %v", got, cfg.MinDelay)
	}

	feed(g)
	if got := g.Delay(); got != cfg.MinDelay {
		t.Errorf("delay after floor = %v, want %v", got, cfg.MinDelay)
	}
}

func TestUpdateIsNoOpWhenGameOver(t *testing.T) {
	g, _ := newTestGame(t)
	parkFood(g)
	driveIntoWall(g)

	head := g.Snake.Head()
	score := g.Scoreboard.Score()
	g.Update()

	if g.Snake.Head() != head {
		t.Error("snake moved after game over")
	}
	if g.Scoreboard.Score() != score {
		t.Error("score changed after game over")
	}
	if len(g.Runs()) != 1 {
		t.Errorf("recorded %d runs, want 1", len(g.Runs()))
	}
}

func TestRestartWhileRunningIsNoOp(t *testing.T) {
	g, cfg := newTestGame(t)
	feed(g)
	head := g.Snake.Head()

	g.Restart()

	if g.State() != Running {
		t.Errorf("state = %v, want Running", g.State())
	}
	if g.Snake.Head() != head {
		t.Error("restart while running moved the snake")
	}
	if g.Scoreboard.Score() != 1 {
		t.Errorf("restart while running reset the score to %d", g.Scoreboard.Score())
	}
	if g.Snake.Len() != 4 {
		t.Errorf("restart while running resized the snake to %d", g.Snake.Len())
	}
	if got, want := g.Delay(), cfg.InitialDelay-cfg.DelayDecrement; got != want {
		t.Errorf("restart while running changed the delay to %v", got)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g, cfg := newTestGame(t)
	feed(g)
	feed(g)
	driveIntoWall(g)

	g.Restart()

	if g.State() != Running {
		t.Fatalf("state = %v after restart, want Running", g.State())
	}
	if g.Scoreboard.Score() != 0 {
		t.Errorf("score after restart = %d, want 0", g.Scoreboard.Score())
	}
	if g.Scoreboard.HighScore() != 2 {
		t.Errorf("high score after restart = %d, want 2", g.Scoreboard.HighScore())
	}
	if g.Snake.Len() != 3 {
		t.Errorf("length after restart = %d, want 3", g.Snake.Len())
	}
	if g.Snake.Head() != (types.Point{}) {
		t.Errorf("head after restart = %v, want origin", g.Snake.Head())
	}
	if g.Delay() != cfg.InitialDelay {
		t.Errorf("delay after restart = %v, want %v", g.Delay(), cfg.InitialDelay)
	}

	// The persisted high score survives the restart too
	data, err := os.ReadFile(cfg.HighScoreFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "2" {
		t.Errorf("stored high score = %q, want 2", data)
	}
}

func driveIntoWall(g *Game) {
	for i := 0; g.State() == Running && i < 1000; i++ {
		g.Update()
	}
}

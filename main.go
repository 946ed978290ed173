package main

import (
	"flag"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"
)

func main() {
	speed := flag.Int("speed", 100, "Initial tick delay in milliseconds (lower = faster)")
	seed := flag.Uint64("seed", 0, "Seed for food placement (0 = time-based)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	cfg := types.DefaultConfig()
	cfg.InitialDelay = time.Duration(*speed) * time.Millisecond

	rl.InitWindow(int32(cfg.BoardWidth), int32(cfg.BoardHeight), "Snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	g := game.NewGame(cfg, rng)
	renderer := ui.NewRenderer(cfg)
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		handleInput(g)

		// Simulation ticks at the game's current delay; drawing runs at
		// the display rate.
		if time.Since(lastUpdate) >= g.Delay() {
			g.Update()
			lastUpdate = time.Now()
		}

		renderer.Draw(g)
	}

	g.SaveStats()
}

func handleInput(g *game.Game) {
	switch {
	case rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyW):
		g.SetHeading(types.DirUp)
	case rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyS):
		g.SetHeading(types.DirDown)
	case rl.IsKeyPressed(rl.KeyLeft) || rl.IsKeyPressed(rl.KeyA):
		g.SetHeading(types.DirLeft)
	case rl.IsKeyPressed(rl.KeyRight) || rl.IsKeyPressed(rl.KeyD):
		g.SetHeading(types.DirRight)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.Restart()
	}
}

package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const (
	scoreMargin   = 16
	scoreFontSize = 18
	titleFontSize = 36
	hintFontSize  = 18
)

var foodColor = rl.Color{R: 0, G: 178, B: 238, A: 255}

// Renderer draws the game into the raylib window. It holds no game state;
// every frame is rebuilt from the Game it is handed.
type Renderer struct {
	screenWidth  int32
	screenHeight int32
	cellSize     int32
}

func NewRenderer(cfg types.Config) *Renderer {
	return &Renderer{
		screenWidth:  int32(cfg.BoardWidth),
		screenHeight: int32(cfg.BoardHeight),
		cellSize:     int32(cfg.Step),
	}
}

// toScreen converts board coordinates (origin at the center, y up) to the
// top-left screen corner of the cell centered on that point.
func (r *Renderer) toScreen(p types.Point) (int32, int32) {
	x := r.screenWidth/2 + int32(p.X) - r.cellSize/2
	y := r.screenHeight/2 - int32(p.Y) - r.cellSize/2
	return x, y
}

// Draw renders one frame. The caller drives this every loop iteration; there
// is no implicit redraw.
func (r *Renderer) Draw(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawBorder(g.Config())
	r.drawFood(g)
	r.drawSnake(g)
	r.drawScore(g)
	if g.State() == game.GameOver {
		r.drawGameOver()
	}

	rl.EndDrawing()
}

func (r *Renderer) drawBorder(cfg types.Config) {
	limX := int32(cfg.BorderLimitX())
	limY := int32(cfg.BorderLimitY())
	rl.DrawRectangleLines(
		r.screenWidth/2-limX-1,
		r.screenHeight/2-limY-1,
		2*limX+2,
		2*limY+2,
		rl.DarkGray)
}

func (r *Renderer) drawSnake(g *game.Game) {
	for i, seg := range g.Snake.Segments {
		color := rl.Color{R: seg.Color.R, G: seg.Color.G, B: seg.Color.B, A: 255}
		x, y := r.toScreen(seg.Pos)
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, color)
		if i == 0 {
			// Outline the head so the travel end is readable at speed
			rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, rl.Yellow)
		}
	}
}

func (r *Renderer) drawFood(g *game.Game) {
	x, y := r.toScreen(g.Food.Pos)
	rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2, float32(r.cellSize)*0.35, foodColor)
}

func (r *Renderer) drawScore(g *game.Game) {
	text := fmt.Sprintf("Score: %d   High Score: %d",
		g.Scoreboard.Score(), g.Scoreboard.HighScore())
	width := rl.MeasureText(text, scoreFontSize)
	rl.DrawText(text, r.screenWidth-width-scoreMargin, scoreMargin, scoreFontSize, rl.White)
}

func (r *Renderer) drawGameOver() {
	title := "GAME OVER"
	hint := "Press Space to Restart"
	titleWidth := rl.MeasureText(title, titleFontSize)
	hintWidth := rl.MeasureText(hint, hintFontSize)
	rl.DrawText(title,
		(r.screenWidth-titleWidth)/2,
		r.screenHeight/2-titleFontSize,
		titleFontSize, rl.White)
	rl.DrawText(hint,
		(r.screenWidth-hintWidth)/2,
		r.screenHeight/2+10,
		hintFontSize, rl.LightGray)
}

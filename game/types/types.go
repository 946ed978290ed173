package types

import (
	"math"
	"time"
)

// Point is a position in board units. The origin sits at the center of the
// play area, y grows upward.
type Point struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Color struct {
	R, G, B uint8
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vector returns the displacement of one step along the heading.
func (d Direction) Vector(step float64) Point {
	switch d {
	case DirUp:
		return Point{Y: step}
	case DirDown:
		return Point{Y: -step}
	case DirLeft:
		return Point{X: -step}
	default:
		return Point{X: step}
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// Config collects the board geometry and tuning parameters. The collision
// radii are tied to the rendered cell size, not to the movement grid, which
// is why they are parameters rather than derived values.
type Config struct {
	BoardWidth  float64
	BoardHeight float64
	Step        float64 // movement grid step
	WallInset   float64 // play area shrink from the window edge
	FoodMargin  float64 // food never spawns closer than this to the wall

	SelfCollisionRadius float64
	FoodCollisionRadius float64

	StartLength int

	InitialDelay   time.Duration
	DelayDecrement time.Duration // speed-up per food eaten
	MinDelay       time.Duration

	HighScoreFile string
	DataDir       string
}

func DefaultConfig() Config {
	return Config{
		BoardWidth:          600,
		BoardHeight:         600,
		Step:                20,
		WallInset:           10,
		FoodMargin:          20,
		SelfCollisionRadius: 10,
		FoodCollisionRadius: 15,
		StartLength:         3,
		InitialDelay:        100 * time.Millisecond,
		DelayDecrement:      2 * time.Millisecond,
		MinDelay:            50 * time.Millisecond,
		HighScoreFile:       "highscore.txt",
		DataDir:             "data",
	}
}

// BorderLimitX is the largest |x| the snake's head may reach.
func (c Config) BorderLimitX() float64 {
	return c.BoardWidth/2 - c.WallInset
}

// BorderLimitY is the largest |y| the snake's head may reach.
func (c Config) BorderLimitY() float64 {
	return c.BoardHeight/2 - c.WallInset
}

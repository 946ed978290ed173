package entity

import (
	"snake-arcade/game/types"
)

var snakeColor = types.Color{R: 255, G: 255, B: 255}

// Segment is one cell of the snake's body.
type Segment struct {
	Pos   types.Point
	Color types.Color
}

// Snake is an ordered sequence of segments, head first, plus the current
// heading. Movement and growth happen in board units on a fixed step grid.
type Snake struct {
	Segments []Segment
	heading  types.Direction
	step     float64
	length   int
	color    types.Color
}

func NewSnake(cfg types.Config) *Snake {
	s := &Snake{
		step:   cfg.Step,
		length: cfg.StartLength,
		color:  snakeColor,
	}
	s.spawn()
	return s
}

// spawn lays out the starting segments leftward from the origin, heading right.
func (s *Snake) spawn() {
	s.Segments = s.Segments[:0]
	for i := 0; i < s.length; i++ {
		s.Segments = append(s.Segments, Segment{
			Pos:   types.Point{X: -float64(i) * s.step},
			Color: s.color,
		})
	}
	s.heading = types.DirRight
}

func (s *Snake) Head() types.Point {
	return s.Segments[0].Pos
}

func (s *Snake) Heading() types.Direction {
	return s.heading
}

func (s *Snake) Len() int {
	return len(s.Segments)
}

// Move shifts every segment to its predecessor's position, tail first, then
// advances the head one step along the heading. The body trails the head
// with one tick of lag.
func (s *Snake) Move() {
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i].Pos = s.Segments[i-1].Pos
	}
	v := s.heading.Vector(s.step)
	s.Segments[0].Pos.X += v.X
	s.Segments[0].Pos.Y += v.Y
}

// Extend appends a segment at the tail's position. It starts overlapping the
// tail and separates on the next Move.
func (s *Snake) Extend() {
	tail := s.Segments[len(s.Segments)-1]
	s.Segments = append(s.Segments, Segment{Pos: tail.Pos, Color: s.color})
}

// SetHeading applies a direction intent. Reversing straight into the neck is
// rejected; any other heading is accepted as-is.
func (s *Snake) SetHeading(d types.Direction) {
	if d == s.heading.Opposite() {
		return
	}
	s.heading = d
}

// Reset discards all segments and respawns the starting snake.
func (s *Snake) Reset() {
	s.spawn()
}

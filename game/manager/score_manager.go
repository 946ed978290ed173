package manager

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Scoreboard tracks the current score and the all-time high score. The high
// score is persisted as a single integer in a plain text file; every file
// error is best-effort and never interrupts play.
type Scoreboard struct {
	score     int
	highScore int
	path      string
}

// NewScoreboard loads the stored high score. A missing or malformed file
// counts as zero.
func NewScoreboard(path string) *Scoreboard {
	return &Scoreboard{
		path:      path,
		highScore: loadHighScore(path),
	}
}

func loadHighScore(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || v < 0 {
		log.Debug().Str("file", path).Msg("ignoring malformed high score file")
		return 0
	}
	return v
}

// Increase adds points to the current score. A new high score is persisted
// immediately.
func (sb *Scoreboard) Increase(points int) {
	sb.score += points
	if sb.score > sb.highScore {
		sb.highScore = sb.score
		sb.save()
	}
}

func (sb *Scoreboard) save() {
	if err := os.WriteFile(sb.path, []byte(strconv.Itoa(sb.highScore)), 0644); err != nil {
		log.Warn().Err(err).Str("file", sb.path).Msg("could not save high score")
	}
}

// Reset clears the current score. The high score is untouched.
func (sb *Scoreboard) Reset() {
	sb.score = 0
}

func (sb *Scoreboard) Score() int {
	return sb.score
}

func (sb *Scoreboard) HighScore() int {
	return sb.highScore
}

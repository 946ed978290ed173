package entity

import (
	"golang.org/x/exp/rand"

	"snake-arcade/game/types"
)

// Food occupies a single grid cell and is relocated in place on every
// consumption. The RNG is injected so placement can be made deterministic.
type Food struct {
	Pos types.Point
	cfg types.Config
	rng *rand.Rand
}

func NewFood(cfg types.Config, rng *rand.Rand) *Food {
	f := &Food{cfg: cfg, rng: rng}
	f.Refresh()
	return f
}

// Refresh places the food on a uniformly random grid cell strictly inside
// the play area minus the food margin, so it never sits flush against a wall.
func (f *Food) Refresh() {
	f.Pos = types.Point{
		X: f.randomAxis(f.cfg.BorderLimitX()),
		Y: f.randomAxis(f.cfg.BorderLimitY()),
	}
}

func (f *Food) randomAxis(limit float64) float64 {
	cells := int((limit - f.cfg.FoodMargin) / f.cfg.Step)
	return float64(f.rng.Intn(2*cells+1)-cells) * f.cfg.Step
}

package manager

import (
	"math"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// CollisionManager answers proximity questions for a given board
// configuration. Collisions are distance checks against configured radii
// rather than exact cell equality, matching the rendered shape sizes.
type CollisionManager struct {
	cfg types.Config
}

func NewCollisionManager(cfg types.Config) *CollisionManager {
	return &CollisionManager{cfg: cfg}
}

// HitWall reports whether the head has left the play area.
func (cm *CollisionManager) HitWall(head types.Point) bool {
	return math.Abs(head.X) > cm.cfg.BorderLimitX() ||
		math.Abs(head.Y) > cm.cfg.BorderLimitY()
}

// HitSelf reports whether the head overlaps any non-head segment.
func (cm *CollisionManager) HitSelf(s *entity.Snake) bool {
	head := s.Head()
	for _, seg := range s.Segments[1:] {
		if head.DistanceTo(seg.Pos) < cm.cfg.SelfCollisionRadius {
			return true
		}
	}
	return false
}

// HitFood reports whether the head is close enough to eat the food.
func (cm *CollisionManager) HitFood(head, food types.Point) bool {
	return head.DistanceTo(food) < cm.cfg.FoodCollisionRadius
}

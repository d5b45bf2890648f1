package systems

import (
	"math/rand"

	"github.com/pthm-cable/ballchase/components"
)

// CollisionDetect tests pop[i] against every ball after it.
// Recoloring is edge-triggered: a pair gets one shared new color when it starts
// overlapping and is forgotten once it separates. It returns the number of
// pairs that started overlapping.
func CollisionDetect(pop []*components.Ball, i int, rng *rand.Rand) (started int) {
	self := pop[i]
	for _, other := range pop[i+1:] {
		colliding := self.Overlaps(&other.Shape)
		wasColliding := self.CollidingWith(other.ID)

		if colliding {
			if !wasColliding {
				c := RandomRGB(rng)
				self.Color = c
				other.Color = c
				self.Collision[other.ID] = struct{}{}
				other.Collision[self.ID] = struct{}{}
				started++
			}
		} else if wasColliding {
			delete(self.Collision, other.ID)
			delete(other.Collision, self.ID)
		}
	}
	return started
}

// ClearCollisions empties every ball's collision set.
func ClearCollisions(pop []*components.Ball) {
	for _, b := range pop {
		clear(b.Collision)
	}
}

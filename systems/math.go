package systems

import (
	"math/rand"

	"github.com/pthm-cable/ballchase/components"
)

// RandomInt returns an integer in [minVal, maxVal], both inclusive.
// An inverted range collapses to minVal.
func RandomInt(rng *rand.Rand, minVal, maxVal int) int {
	if maxVal <= minVal {
		return minVal
	}
	return rng.Intn(maxVal-minVal+1) + minVal
}

// RandomRGB returns a uniformly random opaque color.
func RandomRGB(rng *rand.Rand) components.Color {
	return components.Color{
		R: uint8(RandomInt(rng, 0, 255)),
		G: uint8(RandomInt(rng, 0, 255)),
		B: uint8(RandomInt(rng, 0, 255)),
	}
}

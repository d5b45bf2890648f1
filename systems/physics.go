// Package systems contains the per-entity simulation logic.
package systems

import "github.com/pthm-cable/ballchase/components"

// UpdateBall advances a ball by one tick with axis-independent wall reflection.
// When a step would push the circle past a wall, the ball is placed tangent to
// that wall and its direction on that axis flips; the clamp is the movement for
// the tick.
func UpdateBall(b *components.Ball, bounds components.Bounds) {
	if b.Horizontal == components.Right {
		if b.X+b.Size+b.VelX > bounds.Width {
			b.X = bounds.Width - b.Size
			b.Horizontal = components.Left
		} else {
			b.X += b.VelX
		}
	} else {
		if b.X-b.Size-b.VelX < 0 {
			b.X = b.Size
			b.Horizontal = components.Right
		} else {
			b.X -= b.VelX
		}
	}

	if b.Vertical == components.Down {
		if b.Y+b.Size+b.VelY > bounds.Height {
			b.Y = bounds.Height - b.Size
			b.Vertical = components.Up
		} else {
			b.Y += b.VelY
		}
	} else {
		if b.Y-b.Size-b.VelY < 0 {
			b.Y = b.Size
			b.Vertical = components.Down
		} else {
			b.Y -= b.VelY
		}
	}
}

// UpdateEvil moves the predator according to the intent flags.
// Right wins over left and down over up when both are held. An axis that would
// cross the boundary is clamped tangent to it and gets no velocity step.
func UpdateEvil(e *components.Evil, in *Intent, bounds components.Bounds) {
	right := in.Active(DirRight)
	left := in.Active(DirLeft)
	down := in.Active(DirDown)
	up := in.Active(DirUp)

	xResolved := false
	yResolved := false

	if right && e.X+e.Size+e.VelX > bounds.Width {
		e.X = bounds.Width - e.Size
		xResolved = true
	} else if left && e.X-e.Size-e.VelX < 0 {
		e.X = e.Size
		xResolved = true
	}

	if down && e.Y+e.Size+e.VelY > bounds.Height {
		e.Y = bounds.Height - e.Size
		yResolved = true
	} else if up && e.Y-e.Size-e.VelY < 0 {
		e.Y = e.Size
		yResolved = true
	}

	if !xResolved {
		if right {
			e.X += e.VelX
		} else if left {
			e.X -= e.VelX
		}
	}
	if !yResolved {
		if down {
			e.Y += e.VelY
		} else if up {
			e.Y -= e.VelY
		}
	}
}

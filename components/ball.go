package components

// Ball is an independent bouncing body.
type Ball struct {
	Shape

	ID         uint64
	Horizontal HorizontalDir
	Vertical   VerticalDir

	// Collision holds the ids of the balls this one currently overlaps.
	// The relation is kept symmetric across the population.
	Collision map[uint64]struct{}
}

// NewBall returns a ball with an empty collision set.
func NewBall(id uint64, s Shape, h HorizontalDir, v VerticalDir) *Ball {
	return &Ball{
		Shape:      s,
		ID:         id,
		Horizontal: h,
		Vertical:   v,
		Collision:  make(map[uint64]struct{}),
	}
}

// CollidingWith reports whether id is in the ball's collision set.
func (b *Ball) CollidingWith(id uint64) bool {
	_, ok := b.Collision[id]
	return ok
}

// StepX returns the signed per-tick displacement along X.
func (b *Ball) StepX() float64 {
	if b.Horizontal == Left {
		return -b.VelX
	}
	return b.VelX
}

// StepY returns the signed per-tick displacement along Y.
func (b *Ball) StepY() float64 {
	if b.Vertical == Up {
		return -b.VelY
	}
	return b.VelY
}

// Evil is the single user-steered predator.
type Evil struct {
	Shape

	// BaseSpeed is the per-axis speed fixed at creation.
	BaseSpeed float64
}

// NewEvil returns a predator moving at speed on both axes.
func NewEvil(x, y, speed, size float64, c Color) *Evil {
	return &Evil{
		Shape:     Shape{X: x, Y: y, VelX: speed, VelY: speed, Color: c, Size: size},
		BaseSpeed: speed,
	}
}

// MultiplySize scales the radius by factor. A product of zero becomes 1 so the
// predator can always grow back. Velocity is restored to BaseSpeed.
func (e *Evil) MultiplySize(factor float64) {
	e.Size *= factor
	if e.Size == 0 {
		e.Size = 1
	}
	e.VelX = e.BaseSpeed
	e.VelY = e.BaseSpeed
}

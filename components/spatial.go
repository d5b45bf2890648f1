package components

// Bounds is the rectangle every entity is clamped to, in canvas pixels.
type Bounds struct {
	Width, Height float64
}

// HorizontalDir is the direction a ball travels along the X axis.
type HorizontalDir uint8

const (
	Right HorizontalDir = iota
	Left
)

func (d HorizontalDir) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// VerticalDir is the direction a ball travels along the Y axis.
type VerticalDir uint8

const (
	Down VerticalDir = iota
	Up
)

func (d VerticalDir) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

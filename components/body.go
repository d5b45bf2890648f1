package components

import "fmt"

// Shape is the state shared by every moving entity.
// VelX and VelY are non-negative magnitudes; direction lives on the owner.
type Shape struct {
	X, Y       float64
	VelX, VelY float64
	Color      Color
	Size       float64 // radius
}

// Overlaps reports whether two circles touch or intersect.
func (s *Shape) Overlaps(o *Shape) bool {
	dx := s.X - o.X
	dy := s.Y - o.Y
	r := s.Size + o.Size
	return dx*dx+dy*dy <= r*r
}

// Color is an opaque RGB triple.
type Color struct {
	R, G, B uint8
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Red   = Color{255, 0, 0}
)

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d %d %d)", c.R, c.G, c.B)
}

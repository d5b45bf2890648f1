// Package term renders the simulation into a terminal through tcell.
//
// Every terminal cell holds two square pixels stacked vertically, drawn with
// an upper half block whose foreground is the top pixel and background the
// bottom one. A pixel covers Scale world units on each side.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ballchase/components"
)

const halfBlock = '▀'

type rgb struct {
	r, g, b float64
}

// Canvas is a game.Canvas backed by a persistent pixel buffer.
type Canvas struct {
	screen tcell.Screen
	scale  float64

	// Pixel grid: cols wide, rows*2 high
	w, h int
	buf  []rgb
}

// NewCanvas sizes a black canvas to the screen.
func NewCanvas(screen tcell.Screen, scale float64) *Canvas {
	if scale <= 0 {
		scale = 1
	}
	c := &Canvas{screen: screen, scale: scale}
	cols, rows := screen.Size()
	c.Resize(cols, rows)
	return c
}

// Resize adapts the buffer to a new terminal size, keeping the overlapping
// region.
func (c *Canvas) Resize(cols, rows int) {
	w, h := max(cols, 0), max(rows, 0)*2
	if w == c.w && h == c.h {
		return
	}
	buf := make([]rgb, w*h)
	for y := 0; y < min(h, c.h); y++ {
		copy(buf[y*w:y*w+min(w, c.w)], c.buf[y*c.w:])
	}
	c.w, c.h, c.buf = w, h, buf
}

// Bounds returns the canvas size in world units.
func (c *Canvas) Bounds() (width, height float64) {
	return float64(c.w) * c.scale, float64(c.h) * c.scale
}

// ToWorld converts a terminal cell to the world position of its center.
func (c *Canvas) ToWorld(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * c.scale, (float64(row)*2 + 1) * c.scale
}

// Fade blends every pixel toward black.
func (c *Canvas) Fade(alpha float64) {
	keep := 1 - alpha
	for i := range c.buf {
		p := &c.buf[i]
		p.r *= keep
		p.g *= keep
		p.b *= keep
	}
}

// FillCircle sets every pixel whose center lies inside the circle. The pixel
// under the center is always set so tiny circles stay visible.
func (c *Canvas) FillCircle(x, y, r float64, col components.Color) {
	v := toRGB(col)
	r2 := r * r
	c.eachPixel(x, y, r, func(dx, dy float64) bool {
		return dx*dx+dy*dy <= r2
	}, v)
	c.set(int(math.Floor(x/c.scale)), int(math.Floor(y/c.scale)), v)
}

// StrokeCircle sets pixels within half a pixel of the circle's edge.
func (c *Canvas) StrokeCircle(x, y, r float64, col components.Color) {
	half := c.scale / 2
	c.eachPixel(x, y, r+half, func(dx, dy float64) bool {
		return math.Abs(math.Hypot(dx, dy)-r) <= half
	}, toRGB(col))
}

// eachPixel sets the pixels in the circle's bounding box that pass inside.
func (c *Canvas) eachPixel(x, y, r float64, inside func(dx, dy float64) bool, v rgb) {
	x0 := int(math.Floor((x - r) / c.scale))
	x1 := int(math.Floor((x + r) / c.scale))
	y0 := int(math.Floor((y - r) / c.scale))
	y1 := int(math.Floor((y + r) / c.scale))

	for py := max(y0, 0); py <= min(y1, c.h-1); py++ {
		cy := (float64(py) + 0.5) * c.scale
		for px := max(x0, 0); px <= min(x1, c.w-1); px++ {
			cx := (float64(px) + 0.5) * c.scale
			if inside(cx-x, cy-y) {
				c.buf[py*c.w+px] = v
			}
		}
	}
}

func (c *Canvas) set(px, py int, v rgb) {
	if px < 0 || py < 0 || px >= c.w || py >= c.h {
		return
	}
	c.buf[py*c.w+px] = v
}

// Blit copies the buffer onto the screen. Callers draw overlays afterwards
// and then call Show on the screen.
func (c *Canvas) Blit() {
	for row := 0; row < c.h/2; row++ {
		for col := 0; col < c.w; col++ {
			top := c.buf[(row*2)*c.w+col]
			bottom := c.buf[(row*2+1)*c.w+col]
			style := tcell.StyleDefault.
				Foreground(top.color()).
				Background(bottom.color())
			c.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
}

func toRGB(c components.Color) rgb {
	return rgb{float64(c.R), float64(c.G), float64(c.B)}
}

func (p rgb) color() tcell.Color {
	return tcell.NewRGBColor(int32(p.r+0.5), int32(p.g+0.5), int32(p.b+0.5))
}

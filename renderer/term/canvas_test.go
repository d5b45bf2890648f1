package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/ballchase/components"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func (c *Canvas) pixel(px, py int) rgb {
	return c.buf[py*c.w+px]
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 80, 24), 4)

	w, h := c.Bounds()
	if w != 320 || h != 192 {
		t.Errorf("Bounds() = (%v, %v), want (320, 192)", w, h)
	}

	x, y := c.ToWorld(2, 3)
	if x != 10 || y != 28 {
		t.Errorf("ToWorld(2, 3) = (%v, %v), want (10, 28)", x, y)
	}
}

func TestFillCircleAndFade(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 40, 20), 1)
	red := components.Color{R: 200}

	c.FillCircle(10, 10, 3, red)

	tests := []struct {
		name   string
		px, py int
		want   float64
	}{
		{"center", 10, 10, 200},
		{"inside", 11, 9, 200},
		{"outside", 14, 10, 0},
		{"corner", 13, 13, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.pixel(tt.px, tt.py).r; got != tt.want {
				t.Errorf("pixel(%d, %d).r = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}

	c.Fade(0.5)
	if got := c.pixel(10, 10).r; got != 100 {
		t.Errorf("after fade r = %v, want 100", got)
	}
}

func TestFillCircleTinyStillVisible(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 10, 5), 8)
	c.FillCircle(13, 13, 1, components.White)

	if got := c.pixel(1, 1); got.g != 255 {
		t.Errorf("pixel under center = %+v, want white", got)
	}
}

func TestStrokeCircleLeavesCenter(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 40, 20), 1)
	c.StrokeCircle(20, 20, 8, components.White)

	if got := c.pixel(20, 20); got != (rgb{}) {
		t.Errorf("center = %+v, want black", got)
	}
	if got := c.pixel(27, 19); got.r != 255 {
		t.Errorf("edge pixel = %+v, want white", got)
	}
}

func TestResizeKeepsOverlap(t *testing.T) {
	c := NewCanvas(newTestScreen(t, 10, 5), 1)
	c.set(2, 2, rgb{r: 50})
	c.set(9, 9, rgb{r: 60})

	c.Resize(5, 3)
	if c.w != 5 || c.h != 6 {
		t.Fatalf("size = %dx%d, want 5x6", c.w, c.h)
	}
	if got := c.pixel(2, 2).r; got != 50 {
		t.Errorf("kept pixel r = %v, want 50", got)
	}

	c.Resize(20, 10)
	if got := c.pixel(2, 2).r; got != 50 {
		t.Errorf("pixel after growing r = %v, want 50", got)
	}
	if got := c.pixel(9, 9).r; got != 0 {
		t.Errorf("cropped pixel came back: r = %v", got)
	}
}

func TestBlitHalfBlocks(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	c := NewCanvas(screen, 1)
	c.set(1, 0, rgb{r: 255})
	c.set(1, 1, rgb{b: 255})

	c.Blit()

	mainc, _, style, _ := screen.GetContent(1, 0)
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q, want %q", mainc, halfBlock)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("foreground = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("background = %v, want blue", bg)
	}
}

package ui

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD shows the ball counter and FPS. It receives both through the
// simulation's listener callbacks.
type HUD struct {
	renderer *Renderer
	count    int
	fps      int
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// ReportFPS records the latest published frame rate.
func (h *HUD) ReportFPS(fps int) {
	h.fps = fps
}

// ReportPopulationCount records the latest ball count.
func (h *HUD) ReportPopulationCount(n int) {
	h.count = n
}

// Draw renders the counter and FPS lines at (x, y) and returns the next Y.
func (h *HUD) Draw(x, y int32, paused bool) int32 {
	r := h.renderer
	y = r.DrawLabelValue(x, y, "Balls", strconv.Itoa(h.count))
	y = r.DrawLabelValue(x, y, "FPS", strconv.Itoa(h.fps))
	if paused {
		rl.DrawText("PAUSED", x, y, r.Theme.FontSize, r.Theme.SectionHeader)
		y += r.Theme.LineHeight
	}
	return y
}

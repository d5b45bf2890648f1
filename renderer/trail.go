// Package renderer implements game.Canvas on raylib.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ballchase/components"
)

// TrailCanvas draws into an offscreen render texture that persists between
// frames, so each fade only partially removes what earlier frames drew.
type TrailCanvas struct {
	target        rl.RenderTexture2D
	width, height int32
}

// NewTrailCanvas creates a black trail canvas.
// Must be called after the raylib window is created.
func NewTrailCanvas(width, height int32) *TrailCanvas {
	tc := &TrailCanvas{width: width, height: height}
	tc.target = rl.LoadRenderTexture(width, height)

	rl.BeginTextureMode(tc.target)
	rl.ClearBackground(rl.Black)
	rl.EndTextureMode()

	return tc
}

// Begin routes drawing to the trail texture. Pair with End.
func (tc *TrailCanvas) Begin() {
	rl.BeginTextureMode(tc.target)
}

// End restores drawing to the window.
func (tc *TrailCanvas) End() {
	rl.EndTextureMode()
}

// Fade overlays translucent black over the whole canvas.
func (tc *TrailCanvas) Fade(alpha float64) {
	rl.DrawRectangle(0, 0, tc.width, tc.height, rl.Fade(rl.Black, float32(alpha)))
}

// FillCircle draws a filled disc.
func (tc *TrailCanvas) FillCircle(x, y, r float64, c components.Color) {
	rl.DrawCircleV(rl.Vector2{X: float32(x), Y: float32(y)}, float32(r), toRL(c))
}

// StrokeCircle draws a circle outline.
func (tc *TrailCanvas) StrokeCircle(x, y, r float64, c components.Color) {
	rl.DrawCircleLines(int32(x), int32(y), float32(r), toRL(c))
}

// Draw blits the trail texture to the window.
func (tc *TrailCanvas) Draw() {
	// Render textures are stored upside down, so flip on the way out
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(tc.width), Height: -float32(tc.height)}
	rl.DrawTextureRec(tc.target.Texture, src, rl.Vector2{}, rl.White)
}

// Resize swaps in a texture of the new size, copying the old contents so
// trails survive a window resize.
func (tc *TrailCanvas) Resize(width, height int32) {
	if width == tc.width && height == tc.height {
		return
	}
	old := tc.target
	oldW, oldH := tc.width, tc.height

	tc.target = rl.LoadRenderTexture(width, height)
	tc.width, tc.height = width, height

	rl.BeginTextureMode(tc.target)
	rl.ClearBackground(rl.Black)
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(oldW), Height: -float32(oldH)}
	rl.DrawTextureRec(old.Texture, src, rl.Vector2{}, rl.White)
	rl.EndTextureMode()

	rl.UnloadRenderTexture(old)
}

// Size returns the canvas size in pixels.
func (tc *TrailCanvas) Size() (width, height int32) {
	return tc.width, tc.height
}

// Unload releases GPU resources.
func (tc *TrailCanvas) Unload() {
	rl.UnloadRenderTexture(tc.target)
}

func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

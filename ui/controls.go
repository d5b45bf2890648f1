package ui

import (
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Simulation is the part of the game the control panel drives.
type Simulation interface {
	SpawnBalls(n int)
	SetEvilSizeMultiplier(factor float64)
	SetCollisionDetectionEnabled(enabled bool)
	CollisionDetectionEnabled() bool
	SetRunning(running bool)
	Running() bool
}

// Repeater fires an action while a button is held.
type Repeater interface {
	Start(now time.Time)
	Poll(now time.Time) bool
	Stop()
}

// ControlsConfig carries the values the buttons apply.
type ControlsConfig struct {
	GrowFactor   float64
	ShrinkFactor float64
	HoldRepeat   time.Duration
}

type holdButton struct {
	label    string
	action   func()
	repeater Repeater
	bounds   rl.Rectangle
}

// Controls is the top-left instruments panel.
type Controls struct {
	renderer *Renderer
	sim      Simulation
	hud      *HUD
	mode     InstrumentsMode

	x, y  int32
	hold  []*holdButton
	panel rl.Rectangle
}

// NewControls builds the panel. newRepeater constructs the hold-to-repeat
// timer for each repeating button.
func NewControls(sim Simulation, hud *HUD, cfg ControlsConfig, newRepeater func(time.Duration, func()) Repeater) *Controls {
	c := &Controls{
		renderer: NewRenderer(),
		sim:      sim,
		hud:      hud,
		x:        10,
		y:        10,
	}

	add := func(label string, action func()) {
		c.hold = append(c.hold, &holdButton{
			label:    label,
			action:   action,
			repeater: newRepeater(cfg.HoldRepeat, action),
		})
	}
	add("Add 10 balls", func() { sim.SpawnBalls(10) })
	add("Add 100 balls", func() { sim.SpawnBalls(100) })
	add("Grow evil circle", func() { sim.SetEvilSizeMultiplier(cfg.GrowFactor) })
	add("Shrink evil circle", func() { sim.SetEvilSizeMultiplier(cfg.ShrinkFactor) })

	return c
}

// Contains reports whether p is over the panel, so pointer presses there
// do not steer the predator.
func (c *Controls) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, c.panel)
}

// Update arms or stops hold-to-repeat timers from mouse state and fires any
// that are due. Call once per frame before Draw.
func (c *Controls) Update(now time.Time) {
	if c.mode == InstrumentsAll && rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		for _, b := range c.hold {
			if rl.CheckCollisionPointRec(mouse, b.bounds) {
				b.repeater.Start(now)
			}
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) || c.mode != InstrumentsAll {
		c.StopAll()
	}
	for _, b := range c.hold {
		b.repeater.Poll(now)
	}
}

// StopAll stops every hold-to-repeat timer.
func (c *Controls) StopAll() {
	for _, b := range c.hold {
		b.repeater.Stop()
	}
}

// Draw renders the panel. Buttons act on release, like a click.
func (c *Controls) Draw() {
	th := c.renderer.Theme
	x := c.x + th.Padding
	w := float32(th.ButtonWidth)
	h := float32(th.ButtonHeight)

	height := th.Padding*2 + th.ButtonHeight
	switch c.mode {
	case InstrumentsPartial:
		height += th.LineHeight*3 + th.Padding
	case InstrumentsAll:
		height += th.LineHeight*3 + th.Padding + int32(len(c.hold)+2)*(th.ButtonHeight+4)
	}
	c.panel = rl.Rectangle{X: float32(c.x), Y: float32(c.y), Width: w + float32(th.Padding*2), Height: float32(height)}
	c.renderer.DrawPanel(c.x, c.y, th.ButtonWidth+th.Padding*2, height)

	y := c.y + th.Padding
	if c.mode != InstrumentsHidden {
		y = c.hud.Draw(x, y, !c.sim.Running()) + th.Padding
	}

	if c.mode == InstrumentsAll {
		for _, b := range c.hold {
			b.bounds = rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: h}
			if gui.Button(b.bounds, b.label) {
				b.action()
			}
			y += th.ButtonHeight + 4
		}

		collisionLabel := "Turn off collision detection"
		if !c.sim.CollisionDetectionEnabled() {
			collisionLabel = "Turn on collision detection"
		}
		if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: h}, collisionLabel) {
			c.sim.SetCollisionDetectionEnabled(!c.sim.CollisionDetectionEnabled())
		}
		y += th.ButtonHeight + 4

		runLabel := "Pause"
		if !c.sim.Running() {
			runLabel = "Continue"
		}
		if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: h}, runLabel) {
			c.sim.SetRunning(!c.sim.Running())
		}
		y += th.ButtonHeight + 4
	}

	if gui.Button(rl.Rectangle{X: float32(x), Y: float32(y), Width: w, Height: h}, c.mode.ButtonLabel()) {
		c.mode = c.mode.Next()
	}
}

package game

import "github.com/pthm-cable/ballchase/systems"

// pointerSession tracks a held mouse button or touch that steers the predator.
type pointerSession struct {
	active    bool
	x, y      float64
	releaseIn int // frames left before the intent is reset after release
}

// KeyDown raises the direction bound to key. Unknown keys are ignored.
func (g *Game) KeyDown(key string) {
	if dir, src, ok := systems.KeyDirection(key); ok {
		g.intent.Set(src, dir, true)
	}
}

// KeyUp lowers the direction bound to key.
func (g *Game) KeyUp(key string) {
	if dir, src, ok := systems.KeyDirection(key); ok {
		g.intent.Set(src, dir, false)
	}
}

// PointerDown starts a pointer session at (x, y).
func (g *Game) PointerDown(x, y float64) {
	g.pointer = pointerSession{active: true, x: x, y: y}
}

// PointerMove updates the target of an active session.
func (g *Game) PointerMove(x, y float64) {
	if !g.pointer.active {
		return
	}
	g.pointer.x = x
	g.pointer.y = y
}

// PointerUp ends the session. The intent is kept for a few more frames so a
// short click still moves the predator.
func (g *Game) PointerUp() {
	if !g.pointer.active {
		return
	}
	g.pointer.active = false
	g.pointer.releaseIn = g.cfg.Schedule.PointerReleaseFrames
	if g.pointer.releaseIn <= 0 {
		g.intent.Reset()
	}
}

// PointerActive reports whether a pointer session is steering the predator.
func (g *Game) PointerActive() bool {
	return g.pointer.active
}

// PollPointer runs once per displayed frame, paused or not.
func (g *Game) PollPointer() {
	switch {
	case g.pointer.active:
		systems.SteerToward(&g.intent, g.evil, g.pointer.x, g.pointer.y)
	case g.pointer.releaseIn > 0:
		g.pointer.releaseIn--
		if g.pointer.releaseIn == 0 {
			g.intent.Reset()
		}
	}
}

// FocusLost clears every direction and drops any pointer session, since key
// and button releases are not delivered without focus.
func (g *Game) FocusLost() {
	g.intent.Reset()
	g.pointer = pointerSession{}
}

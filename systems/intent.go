package systems

import (
	"strings"

	"github.com/pthm-cable/ballchase/components"
)

// Direction is one of the four movement intents.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
	numDirections
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}

// KeySource distinguishes the two physical keys bound to each direction.
// Pointer steering writes through SourceArrow.
type KeySource uint8

const (
	SourceArrow KeySource = iota
	SourceLetter
	numSources
)

// Intent records which directions are currently commanded.
// A direction is active while either of its sources holds it.
type Intent struct {
	held [numSources][numDirections]bool
}

// Set raises or lowers one source's flag for a direction.
func (in *Intent) Set(src KeySource, dir Direction, on bool) {
	in.held[src][dir] = on
}

// Active reports whether any source holds dir.
func (in *Intent) Active(dir Direction) bool {
	for src := range in.held {
		if in.held[src][dir] {
			return true
		}
	}
	return false
}

// Any reports whether any direction is active.
func (in *Intent) Any() bool {
	return *in != Intent{}
}

// Reset clears every flag.
func (in *Intent) Reset() {
	*in = Intent{}
}

// keyBindings maps lower-cased key names to their direction and source.
var keyBindings = map[string]struct {
	dir Direction
	src KeySource
}{
	"arrowleft":  {DirLeft, SourceArrow},
	"arrowright": {DirRight, SourceArrow},
	"arrowup":    {DirUp, SourceArrow},
	"arrowdown":  {DirDown, SourceArrow},
	"a":          {DirLeft, SourceLetter},
	"d":          {DirRight, SourceLetter},
	"w":          {DirUp, SourceLetter},
	"s":          {DirDown, SourceLetter},
}

// KeyDirection resolves a key name such as "ArrowLeft" or "w".
func KeyDirection(key string) (Direction, KeySource, bool) {
	b, ok := keyBindings[strings.ToLower(key)]
	return b.dir, b.src, ok
}

// go* and stop* write the pointer's source only, so keys held on the letter
// source are left alone.
func (in *Intent) goDir(dir, opposite Direction) {
	in.held[SourceArrow][dir] = true
	in.held[SourceArrow][opposite] = false
}

func (in *Intent) stopAxis(a, b Direction) {
	in.held[SourceArrow][a] = false
	in.held[SourceArrow][b] = false
}

// SteerToward sets the intent so the predator heads for the pointer at (px, py).
// Outside the predator's extent on an axis it moves that way; within the band
// of one axis only it stops on that axis. Inside both bands it approaches
// diagonally by quadrant unless the pointer is already inside the circle.
func SteerToward(in *Intent, e *components.Evil, px, py float64) {
	withinX := false
	withinY := false

	switch {
	case px > e.X+e.Size:
		in.goDir(DirRight, DirLeft)
	case px < e.X-e.Size:
		in.goDir(DirLeft, DirRight)
	default:
		withinX = true
	}

	switch {
	case py > e.Y+e.Size:
		in.goDir(DirDown, DirUp)
	case py < e.Y-e.Size:
		in.goDir(DirUp, DirDown)
	default:
		withinY = true
	}

	switch {
	case withinX && withinY:
		dx := px - e.X
		dy := py - e.Y
		if dx*dx+dy*dy > e.Size*e.Size {
			if px < e.X {
				in.goDir(DirLeft, DirRight)
			} else {
				in.goDir(DirRight, DirLeft)
			}
			if py > e.Y {
				in.goDir(DirDown, DirUp)
			} else {
				in.goDir(DirUp, DirDown)
			}
		} else {
			in.stopAxis(DirLeft, DirRight)
			in.stopAxis(DirUp, DirDown)
		}
	case withinX:
		in.stopAxis(DirLeft, DirRight)
	case withinY:
		in.stopAxis(DirUp, DirDown)
	}
}

package main

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and autorepeats but never releases, so a
// direction key counts as held until no repeat has arrived for keyHoldTimeout.
const keyHoldTimeout = 300 * time.Millisecond

// directionKeyName maps a tcell key event to the name the game binds, or "".
func directionKeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyLeft:
		return "ArrowLeft"
	case tcell.KeyRight:
		return "ArrowRight"
	case tcell.KeyUp:
		return "ArrowUp"
	case tcell.KeyDown:
		return "ArrowDown"
	case tcell.KeyRune:
		switch r := ev.Rune(); r {
		case 'a', 'd', 'w', 's', 'A', 'D', 'W', 'S':
			return string(unicode.ToLower(r))
		}
	}
	return ""
}

// keyHold tracks synthetic key-up for terminals.
type keyHold struct {
	timeout  time.Duration
	lastSeen map[string]time.Time
}

func newKeyHold(timeout time.Duration) *keyHold {
	return &keyHold{timeout: timeout, lastSeen: make(map[string]time.Time)}
}

// Press records a press or autorepeat and reports whether the key was not
// already held.
func (k *keyHold) Press(name string, now time.Time) bool {
	_, held := k.lastSeen[name]
	k.lastSeen[name] = now
	return !held
}

// Expire returns the keys whose hold window has run out and forgets them.
func (k *keyHold) Expire(now time.Time) []string {
	var released []string
	for name, t := range k.lastSeen {
		if now.Sub(t) >= k.timeout {
			released = append(released, name)
			delete(k.lastSeen, name)
		}
	}
	return released
}

// Clear forgets every held key.
func (k *keyHold) Clear() {
	clear(k.lastSeen)
}

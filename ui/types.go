// Package ui draws the raylib control panel and HUD and maps raylib input
// onto the simulation.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	ButtonWidth   int32
	ButtonHeight  int32
	FontSize      int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.White,
		Padding:       10,
		LineHeight:    18,
		LabelWidth:    60,
		ButtonWidth:   220,
		ButtonHeight:  28,
		FontSize:      14,
	}
}

// InstrumentsMode selects how much of the panel is shown.
type InstrumentsMode int

const (
	InstrumentsPartial InstrumentsMode = iota // counter, FPS and the toggle
	InstrumentsAll
	InstrumentsHidden // toggle only
)

// Next cycles partial → all → hidden → partial.
func (m InstrumentsMode) Next() InstrumentsMode {
	return (m + 1) % 3
}

// ButtonLabel names what pressing the toggle will do.
func (m InstrumentsMode) ButtonLabel() string {
	switch m {
	case InstrumentsPartial:
		return "More"
	case InstrumentsAll:
		return "Hide"
	default:
		return "Show"
	}
}

package renderer

import "github.com/pthm-cable/ballchase/components"

// Discard is a canvas that draws nothing, for headless runs.
type Discard struct{}

func (Discard) Fade(float64)                                             {}
func (Discard) FillCircle(float64, float64, float64, components.Color)   {}
func (Discard) StrokeCircle(float64, float64, float64, components.Color) {}

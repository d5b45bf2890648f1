package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/pthm-cable/ballchase/components"
)

const sampleRate = beep.SampleRate(44100)

// eatSound plays a short tone whenever the predator eats a ball.
// At most one tone starts per frame.
type eatSound struct {
	enabled bool
	pending bool
}

func newEatSound() (*eatSound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &eatSound{}, err
	}
	return &eatSound{enabled: true}, nil
}

// BallEaten queues a tone for the next flush.
func (s *eatSound) BallEaten(*components.Ball) {
	s.pending = s.enabled
}

func (s *eatSound) ReportFPS(int)             {}
func (s *eatSound) ReportPopulationCount(int) {}

// Flush starts the queued tone, if any.
func (s *eatSound) Flush() {
	if !s.pending {
		return
	}
	s.pending = false

	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(40*time.Millisecond), sine))
}

func (s *eatSound) Close() {
	if s.enabled {
		speaker.Close()
	}
}

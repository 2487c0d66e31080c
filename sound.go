package main

import (
	"time"

	"github.com/beka-birhanu/maze-garden/collectible"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

var pickupTones = map[collectible.Kind]float64{
	collectible.Star:  880,
	collectible.Coin:  1175,
	collectible.Heart: 1568,
}

// sounds plays short sine tones. Until init succeeds every call is a no-op.
type sounds struct {
	ready bool
}

func (s *sounds) init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.ready = true
	return nil
}

func (s *sounds) tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return beep.Take(sampleRate.N(d), sine)
}

func (s *sounds) pickup(k collectible.Kind) {
	if !s.ready {
		return
	}
	if t := s.tone(pickupTones[k], 60*time.Millisecond); t != nil {
		speaker.Play(t)
	}
}

// complete plays a rising three-note chime.
func (s *sounds) complete() {
	if !s.ready {
		return
	}
	var notes []beep.Streamer
	for _, freq := range []float64{523, 659, 784} {
		if t := s.tone(freq, 120*time.Millisecond); t != nil {
			notes = append(notes, t)
		}
	}
	speaker.Play(beep.Seq(notes...))
}

func (s *sounds) close() {
	if s.ready {
		speaker.Close()
	}
}

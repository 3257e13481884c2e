package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the rate the speaker is opened with.
const SampleRate = beep.SampleRate(44100)

// Synth plays cues through the system speaker using generated sine tones.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSynth creates a synthesizer. volume is in beep's logarithmic scale
// (0 is unchanged, -1 is half).
func NewSynth(volume float64) *Synth {
	return &Synth{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Calling it again is a no-op.
func (s *Synth) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("sound: cannot open speaker: %w", err)
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue into the speaker output. It does nothing before Init.
func (s *Synth) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	st, err := Stream(SampleRate, c)
	if err != nil || st == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(&effects.Volume{Streamer: st, Base: 2, Volume: s.volume})
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Synth) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()

	s.initialized = false
	return nil
}

// Stream renders a cue as a finite streamer at the given rate.
// It returns nil for a silent cue.
func Stream(rate beep.SampleRate, c Cue) (beep.Streamer, error) {
	notes := Notes(c)
	if len(notes) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, fmt.Errorf("sound: %s tone %.0fHz: %w", c, n.Freq, err)
		}
		parts = append(parts, beep.Take(rate.N(n.Dur), tone))
	}

	return beep.Seq(parts...), nil
}

// Open returns a started Synth when enabled and Nop otherwise.
// On a speaker failure it returns Nop together with the error, so callers
// can log and carry on silently.
func Open(enabled bool, volume float64) (Player, error) {
	if !enabled {
		return Nop{}, nil
	}
	s := NewSynth(volume)
	if err := s.Init(); err != nil {
		return Nop{}, err
	}
	return s, nil
}

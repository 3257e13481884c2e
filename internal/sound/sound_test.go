package sound

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestCueNotes(t *testing.T) {
	tests := []struct {
		cue    Cue
		name   string
		notes  int
		length time.Duration
	}{
		{CueJump, "jump", 1, 60 * time.Millisecond},
		{CueScore, "score", 2, 100 * time.Millisecond},
		{CueDeath, "death", 2, 320 * time.Millisecond},
		{Cue(99), "unknown", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cue.String(); got != tc.name {
				t.Errorf("String() = %q, expected %q", got, tc.name)
			}
			if got := len(Notes(tc.cue)); got != tc.notes {
				t.Errorf("len(Notes()) = %d, expected %d", got, tc.notes)
			}
			if got := Length(tc.cue); got != tc.length {
				t.Errorf("Length() = %v, expected %v", got, tc.length)
			}
		})
	}
}

// drain counts the samples a streamer yields and tracks the peak amplitude.
func drain(s beep.Streamer) (n int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for _, frame := range buf[:k] {
			peak = math.Max(peak, math.Abs(frame[0]))
		}
		n += k
		if !ok {
			return n, peak
		}
	}
}

func TestStreamLength(t *testing.T) {
	rate := beep.SampleRate(8000)

	for _, c := range []Cue{CueJump, CueScore, CueDeath} {
		st, err := Stream(rate, c)
		if err != nil {
			t.Fatalf("Stream(%v) failed: %v", c, err)
		}

		want := 0
		for _, note := range Notes(c) {
			want += rate.N(note.Dur)
		}

		n, peak := drain(st)
		if n != want {
			t.Errorf("%v: %d samples, expected %d", c, n, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%v: peak amplitude %v", c, peak)
		}
	}
}

func TestStreamSilentCue(t *testing.T) {
	st, err := Stream(SampleRate, Cue(-1))
	if err != nil || st != nil {
		t.Errorf("Stream(unknown) = %v, %v; expected nil, nil", st, err)
	}
}

func TestSynthPlayBeforeInit(t *testing.T) {
	s := NewSynth(0)

	// Must not touch the speaker.
	s.Play(CueJump)

	if err := s.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Play(CueDeath)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestOpenDisabled(t *testing.T) {
	p, err := Open(false, 0)
	if err != nil {
		t.Fatalf("Open(false) = %v", err)
	}
	if _, ok := p.(Nop); !ok {
		t.Errorf("Open(false) = %T, expected Nop", p)
	}
}

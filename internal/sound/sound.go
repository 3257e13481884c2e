// Package sound plays short synthesized cues for game events.
package sound

import "time"

// Cue identifies a game event that has a sound.
type Cue int

const (
	CueJump Cue = iota
	CueScore
	CueDeath
)

// String returns the cue name for logs.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Note is a single tone of a cue.
type Note struct {
	Freq float64 // Hz
	Dur  time.Duration
}

// Notes returns the melody played for a cue. Unknown cues are silent.
func Notes(c Cue) []Note {
	switch c {
	case CueJump:
		return []Note{{Freq: 660, Dur: 60 * time.Millisecond}}
	case CueScore:
		return []Note{
			{Freq: 880, Dur: 40 * time.Millisecond},
			{Freq: 1320, Dur: 60 * time.Millisecond},
		}
	case CueDeath:
		return []Note{
			{Freq: 220, Dur: 120 * time.Millisecond},
			{Freq: 110, Dur: 200 * time.Millisecond},
		}
	default:
		return nil
	}
}

// Length returns the total duration of a cue.
func Length(c Cue) time.Duration {
	var d time.Duration
	for _, n := range Notes(c) {
		d += n.Dur
	}
	return d
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close() error
}

// Nop is a Player that stays silent.
type Nop struct{}

func (Nop) Play(Cue)     {}
func (Nop) Close() error { return nil }

package window

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/dino-runner/internal/sound"
)

const (
	sampleRate = 44100
	amplitude  = 0.3
)

// PCM synthesizes the notes as 16-bit little-endian stereo samples.
func PCM(rate int, notes []sound.Note) []byte {
	total := 0
	for _, n := range notes {
		total += int(float64(rate) * n.Dur.Seconds())
	}

	buf := make([]byte, 0, total*4)
	for _, n := range notes {
		count := int(float64(rate) * n.Dur.Seconds())
		for i := 0; i < count; i++ {
			v := math.Sin(2 * math.Pi * n.Freq * float64(i) / float64(rate))
			s := uint16(int16(v * amplitude * math.MaxInt16))
			buf = binary.LittleEndian.AppendUint16(buf, s) // left
			buf = binary.LittleEndian.AppendUint16(buf, s) // right
		}
	}
	return buf
}

// Player plays sound cues through ebiten's audio context.
type Player struct {
	ctx *audio.Context
	pcm map[sound.Cue][]byte
}

var _ sound.Player = (*Player)(nil)

// NewPlayer renders every cue up front.
func NewPlayer() *Player {
	p := &Player{
		ctx: audio.NewContext(sampleRate),
		pcm: make(map[sound.Cue][]byte),
	}
	for _, c := range []sound.Cue{sound.CueJump, sound.CueScore, sound.CueDeath} {
		p.pcm[c] = PCM(sampleRate, sound.Notes(c))
	}
	return p
}

// Play starts the cue; overlapping cues mix.
func (p *Player) Play(c sound.Cue) {
	data, ok := p.pcm[c]
	if !ok || len(data) == 0 {
		return
	}
	p.ctx.NewPlayerFromBytes(data).Play()
}

// Close is a no-op; the audio context lives as long as the process.
func (p *Player) Close() error {
	return nil
}

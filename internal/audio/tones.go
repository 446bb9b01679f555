package audio

import (
	"fmt"
	"math"
	"time"

	"go-blocks/internal/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue and the music are rendered at.
const SampleRate = beep.SampleRate(44100)

const fadeTime = 5 * time.Millisecond

type note struct {
	freq float64
	dur  time.Duration
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

var cueNotes = map[game.Cue][]note{
	game.CueMove:          {{220, ms(30)}},
	game.CueRotate:        {{440, ms(40)}},
	game.CueHardDrop:      {{110, ms(80)}, {82.41, ms(60)}},
	game.CueLock:          {{164.81, ms(50)}},
	game.CueLineClear:     {{523.25, ms(70)}, {659.25, ms(70)}, {783.99, ms(110)}},
	game.CueSpecialEffect: {{880, ms(60)}, {1174.66, ms(60)}, {1760, ms(120)}},
	game.CueGameOver:      {{392, ms(180)}, {311.13, ms(180)}, {261.63, ms(360)}},
}

// CueLength is the total duration of a cue's tones.
func CueLength(c game.Cue) time.Duration {
	var total time.Duration
	for _, n := range cueNotes[c] {
		total += n.dur
	}
	return total
}

// Tone renders c as a sequence of faded sine notes at volume (0..1).
func Tone(sr beep.SampleRate, c game.Cue, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, fmt.Errorf("no tone for cue %s", c)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("cue %s: %w", c, err)
		}
		samples := sr.N(n.dur)
		parts = append(parts, newFade(beep.Take(samples, sine), samples, sr.N(fadeTime)))
	}
	return newVolume(beep.Seq(parts...), volume), nil
}

// newVolume scales s; math.Log2(0) is -Inf so zero means silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fade ramps a note in and out to avoid clicks at its edges.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

func newFade(s beep.Streamer, total, ramp int) beep.Streamer {
	return &fade{streamer: s, total: total, ramp: min(ramp, total/2)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.ramp > 0 {
			if f.position < f.ramp {
				gain = float64(f.position) / float64(f.ramp)
			} else if left := f.total - f.position; left < f.ramp {
				gain = float64(left) / float64(f.ramp)
			}
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

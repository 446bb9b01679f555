package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Korobeiniki, the traditional falling-block theme. Zero frequency rests.
var theme = []note{
	{659.25, ms(400)}, {493.88, ms(200)}, {523.25, ms(200)}, {587.33, ms(400)}, {523.25, ms(200)}, {493.88, ms(200)},
	{440.00, ms(400)}, {440.00, ms(200)}, {523.25, ms(200)}, {659.25, ms(400)}, {587.33, ms(200)}, {523.25, ms(200)},
	{493.88, ms(600)}, {523.25, ms(200)}, {587.33, ms(400)}, {659.25, ms(400)},
	{523.25, ms(400)}, {440.00, ms(400)}, {440.00, ms(400)}, {0, ms(400)},
	{587.33, ms(600)}, {698.46, ms(200)}, {880.00, ms(400)}, {783.99, ms(200)}, {698.46, ms(200)},
	{659.25, ms(600)}, {523.25, ms(200)}, {659.25, ms(400)}, {587.33, ms(200)}, {523.25, ms(200)},
	{493.88, ms(400)}, {493.88, ms(200)}, {523.25, ms(200)}, {587.33, ms(400)}, {659.25, ms(400)},
	{523.25, ms(400)}, {440.00, ms(400)}, {440.00, ms(400)}, {0, ms(400)},
}

// melody loops a note list forever with a soft triangle wave.
type melody struct {
	sr     beep.SampleRate
	notes  []note
	index  int
	pos    int
	length int
	phase  float64
	gap    int
}

func newMelody(sr beep.SampleRate, notes []note) *melody {
	m := &melody{sr: sr, notes: notes, gap: sr.N(30 * time.Millisecond)}
	m.length = sr.N(notes[0].dur)
	return m
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if m.pos >= m.length {
			m.index = (m.index + 1) % len(m.notes)
			m.pos = 0
			m.length = m.sr.N(m.notes[m.index].dur)
		}
		freq := m.notes[m.index].freq

		val := 0.0
		// Short silence at the end of each note separates repeated pitches.
		if freq > 0 && m.pos < m.length-m.gap {
			val = 1 - 4*math.Abs(m.phase-0.5)
			m.phase += freq / float64(m.sr)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

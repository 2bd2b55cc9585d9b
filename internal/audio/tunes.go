package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tune is a looping sequence of notes in Hz; 0 is a rest.
type tune struct {
	notes []float64
	step  time.Duration
	gain  float64
}

var tunes = map[Track]tune{
	TrackRomantic: {
		notes: []float64{261.63, 329.63, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23},
		step:  450 * time.Millisecond,
		gain:  0.12,
	},
	TrackGame: {
		notes: []float64{392.00, 0, 392.00, 440.00, 493.88, 0, 440.00, 392.00},
		step:  180 * time.Millisecond,
		gain:  0.10,
	},
	TrackVictory: {
		notes: []float64{523.25, 659.25, 783.99, 1046.50, 0, 783.99, 1046.50, 0},
		step:  220 * time.Millisecond,
		gain:  0.12,
	},
}

// melody streams a tune forever with a short fade on each note.
type melody struct {
	sr      beep.SampleRate
	t       tune
	perNote int
	pos     int
}

func newMelody(sr beep.SampleRate, t tune) *melody {
	return &melody{sr: sr, t: t, perNote: max(sr.N(t.step), 1)}
}

func (m *melody) Stream(samples [][2]float64) (n int, ok bool) {
	if len(m.t.notes) == 0 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}
	loop := m.perNote * len(m.t.notes)
	for i := range samples {
		at := m.pos % loop
		freq := m.t.notes[at/m.perNote]
		sample := 0.0
		if freq > 0 {
			into := float64(at%m.perNote) / float64(m.perNote)
			env := math.Min(into/0.05, 1) * (1 - into)
			sample = m.t.gain * env * math.Sin(2*math.Pi*freq*float64(m.pos)/float64(m.sr))
		}
		samples[i][0] = sample
		samples[i][1] = sample
		m.pos++
	}
	return len(samples), true
}

func (m *melody) Err() error { return nil }

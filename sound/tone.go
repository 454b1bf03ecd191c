package sound

import (
	"encoding/binary"
	"math"
	"time"
)

// Note is one struck tone of a chime.
type Note struct {
	Frequency float64
	Start     time.Duration
	Decay     time.Duration
}

// SeatbeltChime is the two note cabin chime, a high strike followed by a
// lower one.
var SeatbeltChime = []Note{
	{Frequency: 1046.5, Start: 0, Decay: 900 * time.Millisecond},
	{Frequency: 830.6, Start: 450 * time.Millisecond, Decay: 1200 * time.Millisecond},
}

// Chime renders notes as 32 bit float stereo samples.
func Chime(sampleRate int, notes []Note) []byte {
	var length time.Duration
	for _, n := range notes {
		length = max(length, n.Start+n.Decay*3)
	}

	frames := int(length.Seconds() * float64(sampleRate))
	out := make([]byte, frames*8)

	for i := 0; i < frames; i++ {
		t := float64(i) / float64(sampleRate)

		var v float64
		for _, n := range notes {
			local := t - n.Start.Seconds()
			if local < 0 {
				continue
			}
			env := math.Exp(-local / n.Decay.Seconds())
			// short attack to avoid a click
			env *= min(local/0.005, 1)
			// a bell is mostly its fundamental plus a quiet octave
			v += env * (0.8*math.Sin(2*math.Pi*n.Frequency*local) +
				0.2*math.Sin(4*math.Pi*n.Frequency*local))
		}
		v *= 0.5

		bits := math.Float32bits(float32(max(-1, min(v, 1))))
		binary.LittleEndian.PutUint32(out[i*8:], bits)
		binary.LittleEndian.PutUint32(out[i*8+4:], bits)
	}

	return out
}

// This file is part of GopherBK.
//
// GopherBK is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherBK is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherBK.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the speaker output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirety, and
// written to disk when the WavWriter is closed. It is therefore probably only
// suitable for testing purposes.
package wavwriter

import (
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopherbk/curated"
	"github.com/jetsetilly/gopherbk/logger"
)

// SampleFreq is the sample rate of the WAV file.
const SampleFreq = 44100

// the sample values for the two states of the speaker
const (
	levelOn  = 0x2000
	levelOff = -0x2000
)

// Clock is the source of the clock frequency used to convert ticks to
// samples. Implemented by clocks.Clock.
type Clock interface {
	Frequency() int
}

// WavWriter converts speaker transitions to PCM samples.
type WavWriter struct {
	filename string
	clk      Clock

	crit   sync.Mutex
	buffer []int

	// state of the speaker since the last transition
	on   bool
	last uint64

	// remainder of the tick to sample conversion
	frac uint64
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, clk Clock) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: no filename")
	}
	if clk == nil {
		return nil, curated.Errorf("wavwriter: no clock")
	}
	return &WavWriter{
		filename: filename,
		clk:      clk,
		buffer:   make([]int, 0, SampleFreq),
	}, nil
}

// advance fills the buffer with samples at the current level up to the tick
func (aw *WavWriter) advance(tick uint64) {
	if tick <= aw.last {
		return
	}

	hz := uint64(aw.clk.Frequency()) * 1000
	if hz == 0 {
		return
	}

	total := (tick-aw.last)*SampleFreq + aw.frac
	n := total / hz
	aw.frac = total % hz
	aw.last = tick

	v := levelOff
	if aw.on {
		v = levelOn
	}
	for range n {
		aw.buffer = append(aw.buffer, v)
	}
}

// Speaker implements the sysreg.SpeakerFunc type.
func (aw *WavWriter) Speaker(tick uint64, on bool) {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	aw.advance(tick)
	aw.on = on
}

// Samples returns the number of samples buffered so far.
func (aw *WavWriter) Samples() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// Close fills the buffer up to the tick and writes the WAV file.
func (aw *WavWriter) Close(tick uint64) (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	aw.advance(tick)

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleFreq, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

// This file is part of gopher264.
//
// gopher264 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gopher264 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gopher264.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of audio data to disk as a WAV file. Samples
// are written to the file as they arrive. The WAV header is completed when
// the writer is ended.
package wavwriter

import (
	"os"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const bitDepth = 16

// WavWriter is an implementation of the scheduler.Recorder interface.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder

	// conversion buffer reused for every call to Push()
	buf *audio.IntBuffer

	// number of samples written
	count int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, model.SampleRate, bitDepth, 1, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  model.SampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

// Push implements the scheduler.Recorder interface.
func (aw *WavWriter) Push(samples []int16) error {
	if aw.enc == nil {
		return curated.Errorf("wavwriter: %s has been closed", aw.filename)
	}

	aw.buf.Data = aw.buf.Data[:0]
	for _, s := range samples {
		aw.buf.Data = append(aw.buf.Data, int(s))
	}

	if err := aw.enc.Write(aw.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.count += len(samples)

	return nil
}

// End implements the scheduler.Recorder interface.
func (aw *WavWriter) End() (rerr error) {
	if aw.enc == nil {
		return nil
	}

	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	err := aw.enc.Close()
	aw.enc = nil
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "%d samples written to %s", aw.count, aw.filename)

	return nil
}

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

package tape

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/logger"
)

// Sentinel error patterns.
const (
	NotWAV = "tape: not a valid wav file"
)

// the number of processor cycles per second, used to convert sample lengths
// to half-wave lengths
const cyclesPerSecond = 57 * 312 * 50

// pcmData is mono data. the left channel is used in the case of stereo
// source files.
type pcmData struct {
	sampleRate float64
	data       []float32
}

func loadPCM(filename string) (pcmData, error) {
	var p pcmData

	f, err := os.Open(filename)
	if err != nil {
		return p, curated.Errorf("tape: %v", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if !dec.IsValidFile() {
			return p, curated.Errorf(NotWAV)
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, curated.Errorf("tape: wav: %v", err)
		}
		floatBuf := buf.AsFloat32Buffer()

		chans := int(dec.NumChans)
		if chans < 1 {
			chans = 1
		}
		p.data = make([]float32, 0, len(floatBuf.Data)/chans)
		for i := 0; i < len(floatBuf.Data); i += chans {
			p.data = append(p.data, floatBuf.Data[i])
		}
		p.sampleRate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return p, curated.Errorf("tape: mp3: %v", err)
		}

		// the stream is always 16bit little endian stereo
		chunk := make([]byte, 4096)
		for {
			n, err := io.ReadFull(dec, chunk)
			for i := 0; i+1 < n; i += 4 {
				s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				p.data = append(p.data, float32(s))
			}
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break // for loop
			}
			if err != nil {
				return p, curated.Errorf("tape: mp3: %v", err)
			}
		}
		p.sampleRate = float64(dec.SampleRate())

	default:
		return p, curated.Errorf("tape: unsupported file type (%s)", filepath.Ext(filename))
	}

	logger.Logf(logger.Allow, "tape", "%s: %d samples at %.0fHz", filepath.Base(filename), len(p.data), p.sampleRate)

	return p, nil
}

// halfWaves detects the zero crossings in the PCM data. The length of each
// half-wave is measured in processor cycles.
func (p pcmData) halfWaves() []uint32 {
	if len(p.data) == 0 || p.sampleRate == 0 {
		return nil
	}

	cyclesPerSample := cyclesPerSecond / p.sampleRate

	var halves []uint32
	positive := p.data[0] >= 0
	var n int
	for _, s := range p.data {
		if (s >= 0) != positive {
			halves = append(halves, uint32(float64(n)*cyclesPerSample))
			positive = !positive
			n = 0
		}
		n++
	}

	return halves
}

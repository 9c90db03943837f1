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

// Package sdlaudio plays the sound output of the emulated machine through an
// SDL audio device. Samples are queued with sdl.QueueAudio() rather than
// supplied through a callback.
package sdlaudio

import (
	"encoding/binary"

	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of samples in the device buffer
const bufferLength = 1024

// the maximum number of bytes allowed in the queue before it is cleared. about
// four frames of sound. if the emulation runs faster than the audio device
// consumes samples the queue would otherwise grow without limit
const maxQueued = model.SampleRate / model.RefreshRate * 2 * 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// conversion buffer. reused for every call to Push()
	buffer []uint8

	paused bool
}

// NewAudio is the preferred method of initialisation for the Audio type.
// sdl.Init() must have been called with sdl.INIT_AUDIO beforehand.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     model.SampleRate,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	logger.Logf(logger.Allow, "sdlaudio", "frequency: %d samples/sec", aud.spec.Freq)
	logger.Logf(logger.Allow, "sdlaudio", "buffer size: %d samples", aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// Push implements the scheduler.Audio interface.
func (aud *Audio) Push(samples []int16) error {
	if aud.paused {
		return nil
	}

	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		sdl.ClearQueuedAudio(aud.id)
	}

	n := len(samples) * 2
	if cap(aud.buffer) < n {
		aud.buffer = make([]uint8, n)
	}
	aud.buffer = aud.buffer[:n]

	for i, s := range samples {
		binary.LittleEndian.PutUint16(aud.buffer[i*2:], uint16(s))
	}

	if err := sdl.QueueAudio(aud.id, aud.buffer); err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// Pause implements the hardware.AudioPauser interface.
func (aud *Audio) Pause() {
	aud.paused = true
	sdl.PauseAudioDevice(aud.id, true)
}

// Resume implements the hardware.AudioPauser interface.
func (aud *Audio) Resume() {
	aud.paused = false
	sdl.PauseAudioDevice(aud.id, false)
}

// Reset implements the scheduler.Audio interface.
func (aud *Audio) Reset() {
	sdl.ClearQueuedAudio(aud.id)
}

// Destroy implements the scheduler.Audio interface.
func (aud *Audio) Destroy() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}

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

package model

import (
	"math"
)

// the clock driving the TED sound generator (PAL)
const soundClock = 110840.0

const samplesPerFrame = SampleRate / RefreshRate

// amplitude of one voice at maximum volume
const voiceAmplitude = 0x0c00

type sound struct {
	phase [2]float64
	lfsr  uint8
	buf   []int16
}

func (s *sound) reset() {
	s.phase = [2]float64{}
	s.lfsr = 0xff
}

// generate one frame of samples from the sound registers.
func (s *sound) generate(regs *[RegisterCount]uint8) {
	if cap(s.buf) < samplesPerFrame {
		s.buf = make([]int16, samplesPerFrame)
	}
	s.buf = s.buf[:samplesPerFrame]

	ctrl := regs[regSoundCtrl]
	vol := int(ctrl & 0x0f)
	if vol > 8 {
		vol = 8
	}
	amp := int16(vol * voiceAmplitude / 8)

	f1 := frequency(int(regs[regVoice1Low]) | int(regs[regVoice1High]&0x03)<<8)
	f2 := frequency(int(regs[regVoice2Low]) | int(regs[regVoice2High]&0x03)<<8)

	for i := range s.buf {
		var v int16
		if ctrl&0x10 != 0 {
			v += s.square(0, f1, amp)
		}
		if ctrl&0x20 != 0 {
			v += s.square(1, f2, amp)
		} else if ctrl&0x40 != 0 {
			v += s.noise(f2, amp)
		}
		s.buf[i] = v
	}
}

func frequency(reg int) float64 {
	if reg >= 1023 {
		return 0
	}
	return soundClock / float64(1024-reg)
}

func (s *sound) advance(voice int, freq float64) bool {
	s.phase[voice] += freq / SampleRate
	if s.phase[voice] >= 1 {
		s.phase[voice] -= math.Floor(s.phase[voice])
		return true
	}
	return false
}

func (s *sound) square(voice int, freq float64, amp int16) int16 {
	if freq == 0 {
		return amp
	}
	s.advance(voice, freq)
	if s.phase[voice] < 0.5 {
		return amp
	}
	return -amp
}

func (s *sound) noise(freq float64, amp int16) int16 {
	if s.advance(1, freq) {
		fb := (s.lfsr>>7 ^ s.lfsr>>5 ^ s.lfsr>>4 ^ s.lfsr>>3) & 0x01
		s.lfsr = s.lfsr<<1 | fb
	}
	if s.lfsr&0x01 != 0 {
		return amp
	}
	return -amp
}

// SoundSamples implements the Model interface.
func (c *chip) SoundSamples() []int16 {
	return c.sound.buf
}

// ResetSound implements the Model interface.
func (c *chip) ResetSound() {
	c.sound.reset()
}

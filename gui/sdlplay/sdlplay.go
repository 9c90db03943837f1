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

// Package sdlplay is the SDL host of the emulator. It creates the window,
// presents converted frames through a streaming texture and converts SDL
// events into userinput events.
package sdlplay

import (
	"github.com/gopher264/gopher264/curated"
	"github.com/gopher264/gopher264/hardware/model"
	"github.com/gopher264/gopher264/logger"
	"github.com/gopher264/gopher264/television"

	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "gopher264"

// SdlPlay is an implementation of the scheduler.Host interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// texture is recreated whenever the format or the dimensions of the
	// presented frame change
	texture       *sdl.Texture
	textureFormat television.Format
	textureWidth  int
	textureHeight int

	joysticks []*sdl.Joystick

	multiplier int
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
// The SDL audio subsystem is initialised here too.
func NewSdlPlay(multiplier int) (*SdlPlay, error) {
	scr := &SdlPlay{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_JOYSTICK)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	setupService()

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		model.VisibleWidth, model.VisibleHeight,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// the renderer scales the visible screen to fit the window
	err = scr.renderer.SetLogicalSize(model.VisibleWidth, model.VisibleHeight)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = scr.SetWindowMultiplier(multiplier)
	if err != nil {
		return nil, err
	}

	scr.openJoysticks()

	return scr, nil
}

// SetWindowMultiplier implements the scheduler.Host interface.
func (scr *SdlPlay) SetWindowMultiplier(n int) error {
	if n < 1 {
		n = 1
	}
	scr.multiplier = n
	scr.window.SetSize(int32(model.VisibleWidth*n), int32(model.VisibleHeight*n))
	logger.Logf(logger.Allow, "sdlplay", "window size %dx", n)
	return nil
}

// ToggleFullScreen implements the scheduler.Host interface.
func (scr *SdlPlay) ToggleFullScreen() error {
	var flags uint32
	if scr.window.GetFlags()&uint32(sdl.WINDOW_FULLSCREEN_DESKTOP) == 0 {
		flags = uint32(sdl.WINDOW_FULLSCREEN_DESKTOP)
	}
	if err := scr.window.SetFullscreen(flags); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	return nil
}

func (scr *SdlPlay) createTexture(frame television.Frame) error {
	if scr.texture != nil {
		if scr.textureFormat == frame.Format && scr.textureWidth == frame.Width && scr.textureHeight == frame.Height {
			return nil
		}
		_ = scr.texture.Destroy()
		scr.texture = nil
	}

	format := uint32(sdl.PIXELFORMAT_ARGB8888)
	if frame.Format == television.UYVY {
		format = uint32(sdl.PIXELFORMAT_UYVY)
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(format,
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(frame.Width), int32(frame.Height))
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.textureFormat = frame.Format
	scr.textureWidth = frame.Width
	scr.textureHeight = frame.Height

	logger.Logf(logger.Allow, "sdlplay", "texture: %s %dx%d", frame.Format, frame.Width, frame.Height)

	return nil
}

// Present implements the scheduler.Host interface.
func (scr *SdlPlay) Present(frame television.Frame) error {
	if frame.Empty() {
		return nil
	}

	if err := scr.createTexture(frame); err != nil {
		return err
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	// the stride of the frame is wider than the visible width so the frame
	// must be copied row by row
	w := frame.Width * frame.Format.BytesPerPixel()
	for y := 0; y < frame.Height; y++ {
		copy(pixels[y*pitch:y*pitch+w], frame.Pix[y*frame.Stride:])
	}
	scr.texture.Unlock()

	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	scr.renderer.Present()

	return nil
}

// Destroy implements the scheduler.Host interface.
func (scr *SdlPlay) Destroy() {
	for _, j := range scr.joysticks {
		j.Close()
	}
	scr.joysticks = nil

	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if err := scr.renderer.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Logf(logger.Allow, "sdlplay", "%v", err)
	}

	sdl.Quit()
}

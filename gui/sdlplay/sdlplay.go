// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay is an SDL implementation of the gui.GUI and
// display.PixelRenderer interfaces, suitable for playing machine software
// with. There are no debugging niceties, just a window and a tone generator.
package sdlplay

import (
	"fmt"
	"io"
	"sync"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/performance/limiter"

	"github.com/veandco/go-sdl2/sdl"
)

// the number of bytes per pixel in the pixels array. RGBA.
const pixelDepth = 4

const windowTitle = "Gopher8"

// the scale to use when none has been requested. the native display is very
// small so anything less than this is barely visible on a modern desktop
const defScale = 10.0

// Error sentinel wrapping all SDL errors.
const sdlErr = "sdlplay: %v"

// SdlPlay is an SDL implementation of the gui.GUI and display.PixelRenderer
// interfaces.
type SdlPlay struct {
	// connects the SDL event loop with the parent process. set with the
	// ReqSetEventChan feature request
	events chan gui.Event

	// limits the rate at which the screen is redrawn
	lmtr *limiter.FpsLimiter

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the tone generator
	aud *beeper

	// pixels is the byte array that is copied to the texture before applying
	// the texture to the renderer. it is equal to display.Width *
	// display.Height * pixelDepth bytes
	//
	// written to in the emulation goroutine and read in the Service()
	// function, so access is protected by crit. the render flag is raised by
	// EndUpdate() and lowered when the pixels have been copied to the texture
	crit   sync.Mutex
	pixels []byte
	render bool

	// the amount of scaling applied to each pixel. there is no need for
	// separate horizontal and vertical scaling values, pixels on this machine
	// are square
	scale float32

	// feature requests are handed over to the featureReq channel and serviced
	// in the Service() function. the result of the request is returned over
	// the featureErr channel
	featureReq chan featureRequest
	featureErr chan error
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay type.
//
// MUST ONLY be called from the main goroutine.
func NewSdlPlay(disp *display.Display, scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		featureReq: make(chan featureRequest),
		featureErr: make(chan error),
	}

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(sdlErr, err)
	}

	// SDL window. window size is set in the setWindow() function once the
	// scale is known
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf(sdlErr, err)
	}

	// sdl renderer. scaling is applied in the setWindow() function
	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(sdlErr, err)
	}

	// the texture is the same size as the pixel array. the renderer scales it
	// up to fill the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		display.Width, display.Height)
	if err != nil {
		return nil, curated.Errorf(sdlErr, err)
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset the alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	if scale <= 0 {
		scale = defScale
	}
	err = scr.setWindow(scale)
	if err != nil {
		return nil, curated.Errorf(sdlErr, err)
	}

	// initialise the tone generator
	scr.aud, err = newBeeper()
	if err != nil {
		return nil, curated.Errorf(sdlErr, err)
	}

	// redraws are paced at the same rate the machine produces frames
	scr.lmtr, err = limiter.NewFPSLimiter(hardware.TimerFreq)
	if err != nil {
		return nil, err
	}

	// register ourselves as a renderer for the display
	disp.AddPixelRenderer(scr)

	setupService()

	// note that we have elected not to show the window on startup. the
	// window is instead revealed with a ReqSetVisibility request

	return scr, nil
}

// use a scale of -1 to reapply the existing scale value.
func (scr *SdlPlay) setWindow(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(display.Width) * scr.scale)
	h := int32(float32(display.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return err
	}

	return nil
}

func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// SetPixel implements the display.PixelRenderer interface.
func (scr *SdlPlay) SetPixel(x, y int, on bool) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()

	var col byte
	if on {
		col = 255
	}

	i := (y*display.Width + x) * pixelDepth
	if i <= len(scr.pixels)-pixelDepth {
		scr.pixels[i] = col
		scr.pixels[i+1] = col
		scr.pixels[i+2] = col
	}

	return nil
}

// EndUpdate implements the display.PixelRenderer interface.
func (scr *SdlPlay) EndUpdate() error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.render = true
	return nil
}

// Destroy cleans up all SDL resources. The window is destroyed and the audio
// device closed. Service() must not be called after this.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Destroy(output io.Writer) {
	scr.aud.end()

	err := scr.texture.Destroy()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}

	err = scr.renderer.Destroy()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}

	err = scr.window.Destroy()
	if err != nil {
		fmt.Fprintf(output, "%v\n", err)
	}
}

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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/logger"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. they take
	// time to service and for no good reason, this interface has no use for
	// the mouse
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service attends to incoming SDL events, outstanding feature requests and
// screen redraws. It is expected to be called from a tight loop for the
// duration of the emulation.
//
// MUST ONLY be called from the main goroutine.
func (scr *SdlPlay) Service() {
	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve. servicing just
		// one event per iteration is not enough, queued events would take
		// one frame or longer to resolve
		empty := false
		for !empty {
			// check for SDL events, timing out straight away if there is
			// nothing
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			// close window
			case *sdl.QuitEvent:
				scr.events <- gui.EventWindowClose{}

			case *sdl.KeyboardEvent:
				mod := gui.KeyModNone

				if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
					sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
					mod = gui.KeyModAlt
				} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
					sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
					mod = gui.KeyModShift
				} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
					sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
					mod = gui.KeyModCtrl
				}

				switch ev.Type {
				case sdl.KEYDOWN:
					if ev.Repeat == 0 {
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Mod:  mod,
							Down: true}
					}
				case sdl.KEYUP:
					if ev.Repeat == 0 {
						scr.events <- gui.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Mod:  mod,
							Down: false}
					}
				}

			case nil:
				// a nil value means that WaitEventTimeout has timed out and
				// that the event queue is empty
				empty = true
			}
		}
	}

	// run any outstanding feature requests
	select {
	case req := <-scr.featureReq:
		scr.serviceFeatureRequests(req)
	default:
	}

	// keep the tone generator fed
	scr.aud.service()

	// wait for the frame limiter before considering a redraw. this also stops
	// the service loop from spinning
	scr.lmtr.Wait()

	// copy the pixels to the texture if they have changed since the last
	// redraw. the copy is done inside the critical section, the emulation
	// goroutine may be writing pixels at any time
	scr.crit.Lock()
	render := scr.render
	scr.render = false

	var err error
	if render {
		err = scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	}
	scr.crit.Unlock()

	if err != nil {
		logger.Log("sdlplay", err.Error())
	}

	if render {
		err = scr.renderer.Copy(scr.texture, nil, nil)
		if err != nil {
			logger.Log("sdlplay", err.Error())
		}
		scr.renderer.Present()
	}
}

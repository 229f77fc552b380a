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

// Package playmode is the glue between the hardware package and a GUI. It
// runs the machine at its normal speed, translates keyboard events into
// keypad presses and quits on request.
package playmode

import (
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// Sentinal error returned by Play().
const playError = "playmode: %v"

// Play sets the emulation running, without any debugging features. The
// function returns when the user quits, either with the Escape key, by
// closing the window or with a keyboard interrupt.
//
// The display must be the same display the GUI is rendering. Note that the
// machine is created here and not before, the GUI has no business seeing the
// machine itself.
func Play(disp *display.Display, scr gui.GUI, cartload cartridgeloader.Loader, ips int, zeroSeed bool) error {
	mac := hardware.NewMachine(disp)
	mac.SetInstructionRate(ips)
	mac.CPU.Rnd.ZeroSeed = zeroSeed

	err := mac.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf(playError, err)
	}

	// connect gui
	events := make(chan gui.Event, 2)
	err = scr.SetFeature(gui.ReqSetEventChan, events)
	if err != nil {
		return curated.Errorf(playError, err)
	}

	// request window visibility
	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf(playError, err)
	}

	// the machine runs as fast as the instruction rate allows. the limiter
	// holds each frame back until the frame's one sixtieth of a second has
	// elapsed
	lmtr, err := limiter.NewFPSLimiter(hardware.TimerFreq)
	if err != nil {
		return curated.Errorf(playError, err)
	}

	// redirect interrupt signal to an os.Signal channel. note that ctrl-c
	// handling is also a responsibility of whatever created the playmode
	// goroutine, this handler wins only if it is installed afterwards
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	lastFrame := 0
	sounding := false

	// run and handle gui events
	err = mac.Run(func() (bool, error) {
		// pace the emulation and attend to the tone at frame boundaries
		if f := mac.Frame(); f != lastFrame {
			lastFrame = f
			lmtr.Wait()

			if s := mac.Sounding(); s != sounding {
				sounding = s
				scr.SetFeatureNoError(gui.ReqSetTone, s)
			}
		}

		select {
		case <-intChan:
			return false, nil

		case ev := <-events:
			switch ev := ev.(type) {
			case gui.EventWindowClose:
				return false, nil
			case gui.EventKeyboard:
				return KeyboardEventHandler(ev, mac), nil
			}

		default:
		}

		return true, nil
	})

	// make sure the tone is not left sounding
	if sounding {
		scr.SetFeatureNoError(gui.ReqSetTone, false)
	}

	if err != nil {
		return curated.Errorf(playError, err)
	}

	return nil
}

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

package debugger

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/playmode"
)

// guiEventHandler is called from the event monitoring select, either in
// checkEvents() below or from inside the TermRead implementation of the
// attached terminal.
func (dbg *Debugger) guiEventHandler(ev gui.Event) error {
	switch ev := ev.(type) {
	case gui.EventWindowClose:
		return curated.Errorf(terminal.UserAbort)

	case gui.EventKeyboard:
		// the escape key halts the machine and returns control to the
		// terminal. other keys are forwarded to the keypad as in playmode
		if !playmode.KeyboardEventHandler(ev, dbg.mac) {
			dbg.runUntilHalt = false
		}
	}

	return nil
}

// checkEvents is used to monitor the event channels while the machine is
// running. when the debugger is at the prompt the same channels are
// monitored by the TermRead implementation of the attached terminal.
func (dbg *Debugger) checkEvents(inputter terminal.Input) bool {
	select {
	case <-dbg.events.IntEvents:
		if dbg.runUntilHalt {
			// stop emulation at the next step
			dbg.runUntilHalt = false
		} else {
			// runUntilHalt is false which means that the machine is not
			// running. an input loop is probably running.
			//
			// note that ctrl-c signals do not always reach this far into
			// the program. for instance, the colorterm implementation of
			// TermRead() puts the terminal into raw mode and so must handle
			// ctrl-c events differently.
			dbg.running = false
		}

	case ev := <-dbg.events.GuiEvents:
		if err := dbg.guiEventHandler(ev); err != nil {
			dbg.running = false
		}

	default:
		// pro-tip: default case required otherwise the select will block
		// indefinately.
	}

	return inputter.TermReadCheck()
}

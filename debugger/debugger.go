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
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/performance/limiter"
)

// sentinel error returned by NewDebugger() and Start().
const debuggerError = "debugger: %v"

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	mac *hardware.Machine

	// the gui showing the display the machine is drawing to
	scr gui.GUI

	// the terminal the debugger is attached to
	term terminal.Terminal

	// cartridge disassembly, prepared when the cartridge is attached
	disasm *disassembly.Disasm

	// when reading input from the terminal there are other events that need
	// to be monitored
	events *terminal.ReadEvents

	// buffer for user input
	input []byte

	// the formatted result of the last executed instruction
	lastResult *disassembly.Entry

	// halt conditions
	breakpoints *breakpoints

	// accumulation of breakpoint messages. printed and reset at the next
	// halt
	breakMessages string

	// debugger run state
	running           bool
	runUntilHalt      bool
	continueEmulation bool

	// the last call to mac.Step() returned an error. the machine stays
	// halted until it is RESET
	lastStepError bool

	// number of instructions still to execute in response to the STEP
	// command
	stepsRemaining int

	// key held in response to the KEY command. released after the next
	// step. -1 when no key is held
	heldKey int

	// display pacing while free-running
	lmtr      *limiter.FpsLimiter
	lastFrame int
	sounding  bool
}

// NewDebugger creates all the internal debugger systems except the
// terminal. The terminal is attached in Start().
//
// The display must be the same display the GUI is rendering.
func NewDebugger(disp *display.Display, scr gui.GUI, ips int, zeroSeed bool) (*Debugger, error) {
	dbg := &Debugger{
		scr:     scr,
		input:   make([]byte, 255),
		heldKey: -1,
	}

	dbg.mac = hardware.NewMachine(disp)
	dbg.mac.SetInstructionRate(ips)
	dbg.mac.CPU.Rnd.ZeroSeed = zeroSeed

	dbg.breakpoints = newBreakpoints(dbg)

	// the machine runs as fast as the instruction rate allows. the limiter
	// holds each frame back until the frame's one sixtieth of a second has
	// elapsed
	var err error
	dbg.lmtr, err = limiter.NewFPSLimiter(hardware.TimerFreq)
	if err != nil {
		return nil, curated.Errorf(debuggerError, err)
	}

	// gui event channel. polled by checkEvents() while the machine is
	// running and by the terminal while waiting at the prompt
	guiEvents := make(chan gui.Event, 2)
	err = scr.SetFeature(gui.ReqSetEventChan, guiEvents)
	if err != nil {
		return nil, curated.Errorf(debuggerError, err)
	}

	dbg.events = &terminal.ReadEvents{
		GuiEvents:       guiEvents,
		GuiEventHandler: dbg.guiEventHandler,
		IntEvents:       make(chan os.Signal, 1),
	}

	return dbg, nil
}

// Start the main debugger sequence with the specified terminal and
// cartridge. The function returns when the user quits the debugger.
func (dbg *Debugger) Start(term terminal.Terminal, cartload cartridgeloader.Loader) error {
	dbg.term = term

	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf(debuggerError, err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(commandline.NewTabCompletion(debuggerCommands))

	// attach cartridge and prepare disassembly
	err = dbg.mac.AttachCartridge(cartload)
	if err != nil {
		return curated.Errorf(debuggerError, err)
	}

	dbg.disasm, err = disassembly.FromCartridge(cartload)
	if err != nil {
		return curated.Errorf(debuggerError, err)
	}

	// request window visibility
	err = dbg.scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return curated.Errorf(debuggerError, err)
	}

	// redirect interrupt signal to the terminal read events. note that
	// ctrl-c handling is also a responsibility of the attached terminal,
	// the signal reaches this channel only when the terminal lets it
	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	dbg.running = true
	err = dbg.inputLoop(dbg.term)

	// make sure the tone is not left sounding
	if dbg.sounding {
		dbg.scr.SetFeatureNoError(gui.ReqSetTone, false)
	}

	if err != nil {
		return curated.Errorf(debuggerError, err)
	}

	return nil
}

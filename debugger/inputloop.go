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
	"io"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
)

// inputLoop is the main loop of the debugger. the loop alternates between
// reading user input and stepping the machine, as directed by the current
// halt state.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		// check for events from the gui or from the interrupt signal. the
		// same channels are monitored by TermRead while the debugger is
		// waiting at the prompt
		checkTerm := dbg.checkEvents(inputter)
		if !dbg.running {
			break // for loop
		}

		// check for halt conditions
		haltEmulation := checkTerm || dbg.breakMessages != "" ||
			dbg.lastStepError ||
			(!dbg.runUntilHalt && dbg.stepsRemaining == 0)

		if haltEmulation {
			// print and reset accumulated break messages
			dbg.printLine(terminal.StyleFeedback, dbg.breakMessages)
			dbg.breakMessages = ""

			// reset run state. the parsed command will set the state again
			// as required (eg. the RUN command)
			dbg.runUntilHalt = false
			dbg.lastStepError = false
			dbg.stepsRemaining = 0
			dbg.continueEmulation = false

			// get user input
			inputLen, err := inputter.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)

			// errors returned by TermRead() are very rich. the following
			// block interprets the error carefully and proceeds appropriately
			if err != nil {
				if !curated.IsAny(err) {
					// if the error originated from outside of gopher8 then
					// it is probably serious or unexpected
					switch err {
					case io.EOF:
						// treat EOF errors the same as terminal.UserAbort
						err = curated.Errorf(terminal.UserAbort)
					default:
						// the error is probably serious. exit input loop with err
						return err
					}
				}

				if curated.Is(err, terminal.UserInterrupt) {
					// user interrupts are triggered by the user (in a
					// terminal environment, usually by pressing ctrl-c)
					dbg.handleInterrupt(inputter)
				} else if curated.Is(err, terminal.UserAbort) {
					// like UserInterrupt but with no confirmation stage
					dbg.running = false
				} else {
					// all other errors are passed upwards to the calling function
					return err
				}

				continue // for loop
			}

			// sometimes TermRead can return zero bytes read, we need to
			// filter this out before we try any parsing
			if inputLen > 0 {
				// parse user input, taking note of whether the emulation
				// should continue
				dbg.continueEmulation, err = dbg.parseInput(string(dbg.input[:inputLen-1]))
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
					continue // for loop
				}
			}

			// if we stopped only to check the terminal then set continue and
			// runUntilHalt conditions
			if checkTerm {
				dbg.continueEmulation = true
				dbg.runUntilHalt = true
			}
		}

		if dbg.continueEmulation {
			err := dbg.step()
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// step the machine one instruction forward, attending to the one-shot key,
// the display pacing and the book-keeping that stepping implies.
func (dbg *Debugger) step() error {
	stepErr := dbg.mac.Step()

	// format last execution result even on error. the address and opcode
	// fields are valid whatever happened
	dbg.lastResult = disassembly.FormatResult(dbg.mac.CPU.LastResult)

	// release the one-shot key
	if dbg.heldKey >= 0 {
		dbg.mac.Keypad.Release(uint8(dbg.heldKey))
		dbg.heldKey = -1
	}

	if stepErr != nil {
		// exit input loop if error is a plain error
		if !curated.IsAny(stepErr) {
			return stepErr
		}

		// a curated error is a fault in the running program, not in the
		// emulator. the machine halts but the debugger carries on, the
		// state can be inspected and the machine RESET
		dbg.lastStepError = true
		dbg.printLine(terminal.StyleError, "%s", stepErr)
		return nil
	}

	// check breakpoints against the new machine state
	dbg.breakMessages = dbg.breakpoints.check()

	// count down if we're stepping a fixed number of instructions
	if dbg.stepsRemaining > 0 {
		dbg.stepsRemaining--
	}

	// print the instruction result when single stepping
	if !dbg.runUntilHalt {
		dbg.printLine(terminal.StyleCPUStep, "%s", dbg.lastResult)
	}

	// pace the machine at frame boundaries and attend to the tone, the same
	// way playmode does
	if f := dbg.mac.Frame(); f != dbg.lastFrame {
		dbg.lastFrame = f
		if dbg.runUntilHalt {
			dbg.lmtr.Wait()
		}
		if s := dbg.mac.Sounding(); s != dbg.sounding {
			dbg.sounding = s
			dbg.scr.SetFeatureNoError(gui.ReqSetTone, s)
		}
	}

	return nil
}

// interrupt errors that are sent back to the debugger need some special care
// depending on the current state.
//
// - for non-interactive input set running flag to false immediately
// - otherwise, prompt user for confirmation that the debugger should quit.
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	if !inputter.IsInteractive() {
		dbg.running = false
		return
	}

	// ask the user if they really want to quit
	confirm := make([]byte, 1)
	_, err := inputter.TermRead(confirm,
		terminal.Prompt{
			Content: "really quit (y/n) ",
			Type:    terminal.PromptTypeConfirm},
		dbg.events)

	if err != nil {
		// another UserInterrupt has occurred. we treat UserInterrupt as
		// though 'y' was pressed
		if curated.Is(err, terminal.UserInterrupt) {
			confirm[0] = 'y'
		} else {
			dbg.printLine(terminal.StyleError, err.Error())
		}
	}

	// check if confirmation has been confirmed
	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}

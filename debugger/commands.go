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
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/logger"
)

var debuggerCommands *commandline.Commands

// this init() function "compiles" the commandTemplate above into a more
// usable form. it will cause the program to fail if the template is invalid.
func init() {
	var err error

	// parse command template
	debuggerCommands, err = commandline.ParseCommandTemplate(commandTemplate)
	if err != nil {
		panic(err)
	}

	err = debuggerCommands.AddHelp(cmdHelp, help)
	if err != nil {
		panic(err)
	}
	sort.Stable(debuggerCommands)
}

// parseInput splits the input into individual commands. each command is then
// passed to parseCommand for processing.
//
// returns a boolean stating whether the machine should continue with the
// next step.
func (dbg *Debugger) parseInput(input string) (bool, error) {
	// ignore comments
	if strings.HasPrefix(input, "#") {
		return false, nil
	}

	// divide input if necessary
	commands := strings.Split(input, ";")

	stepNext := false

	for i := 0; i < len(commands); i++ {
		s, err := dbg.parseCommand(commands[i])
		if err != nil {
			return false, err
		}
		stepNext = s
	}

	return stepNext, nil
}

// parseCommand tokenises a single command and, if it is valid, acts upon it.
// returns a boolean stating whether the machine should continue with the
// next step.
func (dbg *Debugger) parseCommand(input string) (bool, error) {
	// tokenise input
	tokens := commandline.TokeniseInput(input)

	// ignore empty input
	if tokens.Remaining() == 0 {
		return false, nil
	}

	// check validity of tokenised input. this also normalises the tokens,
	// keywords are converted to upper case as a side effect
	if err := debuggerCommands.ValidateTokens(tokens); err != nil {
		return false, err
	}

	// print normalised input to the terminal. the terminal implementation
	// decides whether echoed input is to be displayed
	dbg.printLine(terminal.StyleEcho, "%s", tokens.String())

	// the absolute best thing about the ValidateTokens() function is that we
	// can now assume the tokens are in a valid order and of the correct type
	tokens.Reset()
	command, _ := tokens.Get()

	// stepNext is returned by parseCommand(). true if the emulation should
	// continue with the next step
	stepNext := false

	switch command {
	case cmdHelp:
		keyword, present := tokens.Get()
		if present {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.Help(keyword))
		} else {
			dbg.printLine(terminal.StyleHelp, debuggerCommands.HelpOverview())
		}

	case cmdReset:
		err := dbg.mac.Reset()
		if err != nil {
			return false, err
		}
		dbg.lastResult = nil
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdQuit:
		dbg.running = false

	case cmdRun:
		dbg.runUntilHalt = true
		stepNext = true

	case cmdStep:
		num := 1
		if n, present := tokens.Get(); present {
			var err error
			num, err = strconv.Atoi(n)
			if err != nil || num < 1 {
				return false, curated.Errorf("number of instructions must be a positive decimal number (%s)", n)
			}
		}
		dbg.stepsRemaining = num
		stepNext = true

	case cmdDisasm:
		_, byteCode := tokens.Get()
		err := dbg.disasm.Write(dbg.printStyle(terminal.StyleFeedback),
			disassembly.WriteAttr{ByteCode: byteCode})
		if err != nil {
			return false, err
		}

	case cmdLast:
		if dbg.lastResult == nil {
			dbg.printLine(terminal.StyleFeedback, "no instruction executed yet")
			break // switch command
		}

		option, present := tokens.Get()
		if present && option == "DEFN" {
			defn := dbg.lastResult.Result.Defn
			if defn == nil {
				dbg.printLine(terminal.StyleFeedback, "no definition for opcode (0x%04x)", dbg.lastResult.Result.Opcode)
			} else {
				dbg.printLine(terminal.StyleFeedback, "mnemonic: %s", defn.Mnemonic)
				dbg.printLine(terminal.StyleFeedback, "pattern: 0x%04x (mask 0x%04x)", defn.Value, defn.Mask)
			}
			break // switch command
		}

		if present && option == "BYTECODE" {
			dbg.printLine(terminal.StyleCPUStep, "%s %s", dbg.lastResult.Bytecode, dbg.lastResult)
		} else {
			dbg.printLine(terminal.StyleCPUStep, "%s", dbg.lastResult)
		}

	// information about the machine

	case cmdCPU:
		dbg.printInstrument(dbg.mac.CPU)

	case cmdTimers:
		dbg.printInstrument(dbg.mac.Timer)

	case cmdPeek:
		a, _ := tokens.Get()
		addr, err := strconv.ParseUint(a, 0, 16)
		if err != nil {
			return false, curated.Errorf("invalid address (%s)", a)
		}

		num := 1
		if n, present := tokens.Get(); present {
			num, err = strconv.Atoi(n)
			if err != nil || num < 1 {
				return false, curated.Errorf("number of bytes must be a positive decimal number (%s)", n)
			}
		}

		err = dbg.printPeek(uint16(addr), num)
		if err != nil {
			return false, err
		}

	case cmdPoke:
		a, _ := tokens.Get()
		addr, err := strconv.ParseUint(a, 0, 16)
		if err != nil {
			return false, curated.Errorf("invalid address (%s)", a)
		}

		target := uint16(addr)
		v, present := tokens.Get()
		for present {
			val, err := strconv.ParseUint(v, 0, 8)
			if err != nil {
				return false, curated.Errorf("invalid value (%s)", v)
			}

			err = dbg.mac.Mem.Poke(target, uint8(val))
			if err != nil {
				return false, err
			}

			dbg.printLine(terminal.StyleInstrument, "0x%04x -> 0x%02x", target, uint8(val))
			target++
			v, present = tokens.Get()
		}

	case cmdDisplay:
		dbg.printDisplay()

	case cmdKey:
		k, _ := tokens.Get()
		key, err := strconv.ParseUint(k, 16, 8)
		if err != nil || key > 0x0f {
			return false, curated.Errorf("invalid key (%s)", k)
		}

		// only one key can be held at a time
		if dbg.heldKey >= 0 {
			dbg.mac.Keypad.Release(uint8(dbg.heldKey))
		}
		dbg.mac.Keypad.Press(uint8(key))
		dbg.heldKey = int(key)

		dbg.printLine(terminal.StyleFeedback, "key %01X held until next step", key)

	// halt conditions

	case cmdBreak:
		err := dbg.breakpoints.parseBreakpoint(tokens)
		if err != nil {
			return false, err
		}

	case cmdList:
		dbg.breakpoints.list()

	case cmdDrop:
		s, _ := tokens.Get()
		num, err := strconv.Atoi(s)
		if err != nil {
			return false, curated.Errorf("drop attribute must be a decimal number (%s)", s)
		}

		err = dbg.breakpoints.drop(num)
		if err != nil {
			return false, err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint #%d dropped", num)

	// meta

	case cmdLog:
		option, present := tokens.Get()
		if present {
			switch option {
			case "LAST":
				logger.Tail(dbg.printStyle(terminal.StyleLog), 1)
			case "CLEAR":
				logger.Clear()
			}
		} else {
			logger.Write(dbg.printStyle(terminal.StyleLog))
		}
	}

	return stepNext, nil
}

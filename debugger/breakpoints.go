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

// breakpoints are used to halt execution when the program counter reaches a
// specific address. a CHIP-8 machine has no other state worth breaking on
// that can't be inspected by stepping, so unlike other debuggers there is no
// concept of a breakpoint target.

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	dbg *Debugger

	// array of breakers. the breakers are ORed together
	breaks []breaker
}

// breaker defines a specific break condition.
type breaker struct {
	addr uint16
}

func (bk breaker) String() string {
	return fmt.Sprintf("PC->0x%04x", bk.addr)
}

// newBreakpoints is the preferred method of initialisation for breakpoints.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make([]breaker, 0, 10)
}

// drop a specific breakpoint by position in list.
func (bp *breakpoints) drop(num int) error {
	if num < 0 || len(bp.breaks)-1 < num {
		return curated.Errorf("breakpoint #%d is not defined", num)
	}

	h := bp.breaks[:num]
	t := bp.breaks[num+1:]
	bp.breaks = make([]breaker, len(h)+len(t), cap(bp.breaks))
	copy(bp.breaks, h)
	copy(bp.breaks[len(h):], t)

	return nil
}

// check compares the current state of the machine with every breakpoint
// condition. returns a string listing every condition that matches.
func (bp *breakpoints) check() string {
	pc := bp.dbg.mac.CPU.PC.Address()

	checkString := strings.Builder{}
	for i := range bp.breaks {
		if bp.breaks[i].addr == pc {
			checkString.WriteString(fmt.Sprintf("break on %s\n", bp.breaks[i]))
		}
	}
	return checkString.String()
}

// list currently defined breakpoints.
func (bp breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
	} else {
		bp.dbg.printLine(terminal.StyleFeedback, "breakpoints:")
		for i := range bp.breaks {
			bp.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, bp.breaks[i])
		}
	}
}

// parse tokens and add new breakpoints. breakpoints are on the program
// counter, so tokens are expected to be addresses. more than one breakpoint
// can be defined in a single BREAK command. duplicates are not added to the
// list again.
func (bp *breakpoints) parseBreakpoint(tokens *commandline.Tokens) error {
	tok, present := tokens.Get()
	for present {
		addr, err := strconv.ParseUint(tok, 0, 16)
		if err != nil {
			return curated.Errorf("invalid address (%s)", tok)
		}
		if addr > uint64(memorymap.Memtop) {
			return curated.Errorf("address out of range (0x%04x)", addr)
		}

		nbk := breaker{addr: uint16(addr)}

		duplicate := false
		for _, bk := range bp.breaks {
			if bk == nbk {
				duplicate = true
				break // for loop
			}
		}

		if duplicate {
			bp.dbg.printLine(terminal.StyleError, "breakpoint already exists (%s)", nbk)
		} else {
			bp.breaks = append(bp.breaks, nbk)
		}

		tok, present = tokens.Get()
	}

	return nil
}

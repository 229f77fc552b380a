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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/display"
)

// printInstrument prints the state of a machine component. the machine types
// all return a summary of themselves from their String() functions.
func (dbg *Debugger) printInstrument(mi fmt.Stringer) {
	dbg.printLine(terminal.StyleInstrument, "%s", mi)
}

// printPeek prints the contents of num bytes of memory, starting at addr. a
// single byte is printed on its own, longer runs are grouped into rows of
// eight bytes.
func (dbg *Debugger) printPeek(addr uint16, num int) error {
	if num <= 1 {
		v, err := dbg.mac.Mem.Peek(addr)
		if err != nil {
			return err
		}
		dbg.printLine(terminal.StyleInstrument, "0x%04x -> 0x%02x", addr, v)
		return nil
	}

	s := strings.Builder{}
	for i := 0; i < num; i++ {
		v, err := dbg.mac.Mem.Peek(addr + uint16(i))
		if err != nil {
			// reached the top of memory. print what we have
			if i == 0 {
				return err
			}
			break // for loop
		}

		if i%8 == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("0x%04x:", addr+uint16(i)))
		}
		s.WriteString(fmt.Sprintf(" %02x", v))
	}
	dbg.printLine(terminal.StyleInstrument, "%s", s.String())

	return nil
}

// printDisplay renders the display to the terminal. one character per pixel.
func (dbg *Debugger) printDisplay() {
	s := strings.Builder{}

	s.WriteString("+")
	s.WriteString(strings.Repeat("-", display.Width))
	s.WriteString("+\n")

	for y := 0; y < display.Height; y++ {
		s.WriteString("|")
		for x := 0; x < display.Width; x++ {
			if dbg.mac.Disp.Pixel(x, y) {
				s.WriteString("█")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString("|\n")
	}

	s.WriteString("+")
	s.WriteString(strings.Repeat("-", display.Width))
	s.WriteString("+")

	dbg.printLine(terminal.StyleInstrument, "%s", s.String())
}

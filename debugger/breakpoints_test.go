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

package debugger_test

func (trm *mockTerm) testBreakpoints() {
	// debugger starts off with no breakpoints
	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")

	// add a break. this should be successful so there should be no feedback
	trm.sndInput("BREAK 0x204")
	trm.cmpOutput("")

	// the list now contains the new break
	trm.sndInput("LIST")
	trm.cmpOutput(" 0: PC->0x0204")

	// adding the same break a second time is pointed out
	trm.sndInput("BREAK 0x204")
	trm.cmpOutput("breakpoint already exists (PC->0x0204)")

	// breakpoints must be inside addressable memory
	trm.sndInput("BREAK 0x1000")
	trm.cmpOutput("address out of range (0x1000)")

	// several addresses can be given at once
	trm.sndInput("BREAK 0x208 0x20a")
	trm.cmpOutput("")

	trm.sndInput("LIST")
	trm.cmpOutput(" 2: PC->0x020a")

	// drop the first break and check the list has shuffled down
	trm.sndInput("DROP 0")
	trm.cmpOutput("breakpoint #0 dropped")

	trm.sndInput("LIST")
	trm.cmpOutput(" 1: PC->0x020a")

	// dropping a break that does not exist
	trm.sndInput("DROP 2")
	trm.cmpOutput("breakpoint #2 is not defined")

	// return the machine to a state with no breakpoints for later tests
	trm.sndInput("DROP 1")
	trm.cmpOutput("breakpoint #1 dropped")
	trm.sndInput("DROP 0")
	trm.cmpOutput("breakpoint #0 dropped")

	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")
}

func (trm *mockTerm) testRunBreak() {
	// RESET returns the program counter to the top of the program. registers
	// altered by earlier tests are cleared
	trm.sndInput("RESET")
	trm.cmpOutput("machine reset")

	trm.sndInput("BREAK 0x206")
	trm.cmpOutput("")

	// the machine will run to the SKP instruction and halt
	trm.sndInput("RUN")
	trm.cmpOutput("break on PC->0x0206")

	trm.sndInput("DROP 0")
	trm.cmpOutput("breakpoint #0 dropped")

	// hold a keypad key for the duration of the next instruction. the SKP
	// instruction tests key 2, the value of the V1 register
	trm.sndInput("KEY 2")
	trm.cmpOutput("key 2 held until next step")

	trm.sndInput("STEP")
	trm.cmpOutput("0x0206 SKP V1")

	// the skip happened because the key was down. the program counter is now
	// at the second of the two spin loops
	trm.sndInput("STEP")
	trm.cmpOutput("0x020a JP 0x20a")

	// the key was released after the SKP instruction
	trm.sndInput("KEY G")
	trm.cmpOutput("invalid key (G)")
}

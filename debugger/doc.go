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

// Package debugger implements a reasonably comprehensive debugging tool.
// Features include:
//
//	- cartridge disassembly
//	- memory peek and poke
//	- instruction stepping, by one or many instructions
//	- breakpoints on the program counter
//	- inspection of CPU registers, timers and the display
//	- keypad presses from the terminal
//
// Some of these features come courtesy of other packages, described
// elsewhere, but all are nicely exposed via the debugger package.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(disp, scr, ips, zeroSeed)
//
// The display must be the same display the GUI is rendering; the machine is
// created by the debugger and attached to it.
//
// Once initialised, the debugger is started with the Start() function.
//
//	dbg.Start(term, cartload)
//
// Interaction with the debugger is through a terminal. The Terminal
// interface is defined in the terminal package. The colorterm and plainterm
// sub-packages provide good reference implementations: colorterm for
// interactive use and plainterm for piped scripts.
//
// A fatal error from the running program (an unknown opcode, for example)
// halts the machine but not the debugger. The machine state can then be
// inspected and the machine brought back to life with the RESET command.
package debugger

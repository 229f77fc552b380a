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

// cmdHelp is added to the command template automatically, see AddHelp() in
// the commandline package.
const cmdHelp = "HELP"

var help = map[string]string{
	cmdHelp:  "Lists commands and provides help for individual debugger commands",
	cmdReset: "Reset the machine to its initial state. The loaded program is kept",
	cmdQuit:  "Exits the emulator",

	cmdRun:  "Run machine until a halt condition is met",
	cmdStep: "Step forward one instruction. Optional argument steps by the specified number of instructions",

	cmdDisasm:  "Print the disassembly of the loaded program",
	cmdLast:    "Prints the result of the last executed instruction",
	cmdCPU:     "Display the current state of the CPU",
	cmdTimers:  "Display the current state of the delay and sound timers",
	cmdPeek:    "Inspect memory addresses. Optional second argument is the number of bytes to inspect",
	cmdPoke:    "Modify memory addresses, starting at the given address",
	cmdDisplay: "Render the display to the terminal",
	cmdKey:     "Press a keypad key (0 to F) for the duration of the next instruction",

	cmdBreak: "Cause emulator to halt when the program counter reaches an address",
	cmdList:  "List current breakpoints",
	cmdDrop:  "Drop a specific breakpoint, using the number of the breakpoint reported by LIST",

	cmdLog: "Print the log. The optional LAST argument prints the most recent entry only",
}

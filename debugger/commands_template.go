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

// debugger keywords
const (
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdRun  = "RUN"
	cmdStep = "STEP"

	cmdDisasm  = "DISASM"
	cmdLast    = "LAST"
	cmdCPU     = "CPU"
	cmdTimers  = "TIMERS"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdDisplay = "DISPLAY"
	cmdKey     = "KEY"

	// halt conditions
	cmdBreak = "BREAK"
	cmdList  = "LIST"
	cmdDrop  = "DROP"

	// meta
	cmdLog = "LOG"
)

var commandTemplate = []string{
	cmdReset,
	cmdQuit,

	cmdRun,
	cmdStep + " (%<num-instructions>N)",

	cmdDisasm + " (BYTECODE)",
	cmdLast + " (DEFN|BYTECODE)",
	cmdCPU,
	cmdTimers,
	cmdPeek + " [%<address>N] (%<num-bytes>N)",
	cmdPoke + " %<address>N [%<value>N] {%<values>N}",
	cmdDisplay,
	cmdKey + " %<key>S",

	// halt conditions
	cmdBreak + " [%<address>N] {%<addresses>N}",
	cmdList,
	cmdDrop + " %<number-in-list>N",

	// meta
	cmdLog + " (LAST|CLEAR)",
}

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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// this how it sees fit - the most likely treatment is to colourise the output.
type Style int

// List of terminal styles.
const (
	// input normalised by the command parser, echoed back to the terminal.
	// terminals for which the user's input is already visible can ignore
	// this style.
	StyleEcho Style = iota

	// help text.
	StyleHelp

	// terminal feedback for user actions.
	StyleFeedback

	// the disassembly of the instruction the machine has stopped at.
	StyleCPUStep

	// information from the machine. registers, timers, memory, etc.
	StyleInstrument

	// lines from the log.
	StyleLog

	// error messages.
	StyleError
)

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

// Package execution records the result of instruction execution on the CPU.
// The Result type is kept up to date by the CPU and is used by the
// disassembly package and the debugger to describe what the CPU has most
// recently done.
package execution

import "github.com/jetsetilly/gopher8/hardware/cpu/instructions"

// Result records the details of the most recently executed instruction.
type Result struct {
	// the address the instruction was fetched from
	Address uint16

	// the opcode as fetched
	Opcode uint16

	// the instruction definition matching the opcode. nil if no instruction
	// has been executed yet
	Defn *instructions.Definition
}

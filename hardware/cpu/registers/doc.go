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

// Package registers implements the three types of register found in the
// machine: the 8 bit general purpose type used for V0 to VF, the 16 bit
// program counter and the 16 bit index register.
//
// The Register type defines all the basic operations the instruction set
// requires of the V registers: load, add, subtract, the logical operations
// and shifts. Operations that can affect the flag register return the flag
// outcome rather than setting anything themselves; the CPU decides what to
// do with the result. For example:
//
//	x.Load(10)
//	borrow := x.Subtract(11)
//	vf.Load(0)
//	if !borrow {
//		vf.Load(1)
//	}
//
// The program counter and index register by comparison define only the load
// and add operations.
package registers

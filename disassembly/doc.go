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

// Package disassembly turns CHIP-8 cartridges into readable instruction
// listings.
//
// For a disassembly of an entire cartridge the FromCartridge() function can
// be used. The FormatResult() function formats a single execution result and
// is what debuggers should use to print the instruction that has just run,
// or is about to run.
//
// The disassembly is a plain linear pass over the cartridge, two bytes at a
// time. Words that match nothing in the instruction set are rendered as
// "???"; they may be sprite or other data mixed in with the program, which a
// linear pass cannot tell apart from code.
package disassembly

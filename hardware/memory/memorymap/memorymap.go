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

// Package memorymap records the memory addresses that divide the address
// space into its significant areas.
//
// The lowest area of memory contains the font sprites, in the space
// historically occupied by the machine interpreter. Cartridge data is loaded
// at OriginCart and execution begins there. Everything up to Memtop is
// addressable RAM; there are no unreadable or unwritable areas within the
// map.
package memorymap

// The origin and memtop values for the different memory areas.
const (
	OriginFont uint16 = 0x0000
	MemtopFont uint16 = 0x004f
	OriginCart uint16 = 0x0200
	Memtop     uint16 = 0x0fff
)

// Reset is the address the program counter is set to on machine reset.
const Reset = OriginCart

// MaxCartridgeSize is the maximum number of bytes a cartridge can occupy.
const MaxCartridgeSize = int(Memtop-OriginCart) + 1

// FontBytesPerChar is the number of bytes (and therefore the number of rows)
// in each font sprite.
const FontBytesPerChar = 5

// FontAddress returns the address of the font sprite for the given hex
// digit. Values greater than 0x0f address memory beyond the font area, as
// they did on the original interpreter.
func FontAddress(digit uint8) uint16 {
	return OriginFont + uint16(digit)*FontBytesPerChar
}

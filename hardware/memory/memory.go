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

// Package memory implements the addressable memory of the machine: 4096
// bytes of RAM holding the font sprites, the cartridge data and anything the
// running program cares to write. There is no distinction between program
// and data areas.
//
// The Memory type implements both the CPUBus and the DebuggerBus interfaces
// from the bus package. Access through either bus to an address outside of
// the memory map is an error.
package memory

import (
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Sentinel errors returned by the memory package.
const (
	UnreadableAddress = "memory: unreadable address (0x%04x)"
	UnwritableAddress = "memory: unwritable address (0x%04x)"
	CartridgeTooLarge = "cartridge: too large (%d bytes)"
	CartridgeEmpty    = "cartridge: no data"
)

// Memory is the cartridge and work RAM of the machine, along with the
// built-in font sprites.
type Memory struct {
	ram [memorymap.Memtop + 1]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset the contents of memory. The font sprites are restored; everything
// else, including any cartridge data, is zeroed.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[memorymap.OriginFont:], fontData[:])
}

// AttachCartridge copies cartridge data into memory, starting at the
// cartridge origin address.
func (mem *Memory) AttachCartridge(data []uint8) error {
	if len(data) == 0 {
		return curated.Errorf(CartridgeEmpty)
	}
	if len(data) > memorymap.MaxCartridgeSize {
		return curated.Errorf(CartridgeTooLarge, len(data))
	}
	copy(mem.ram[memorymap.OriginCart:], data)
	return nil
}

// Read is an implementation of the bus.CPUBus interface.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if address > memorymap.Memtop {
		return 0, curated.Errorf(UnreadableAddress, address)
	}
	return mem.ram[address], nil
}

// Write is an implementation of the bus.CPUBus interface.
func (mem *Memory) Write(address uint16, data uint8) error {
	if address > memorymap.Memtop {
		return curated.Errorf(UnwritableAddress, address)
	}
	mem.ram[address] = data
	return nil
}

// Peek is an implementation of the bus.DebuggerBus interface. There are no
// read side-effects in this memory system so it is equivalent to Read().
func (mem *Memory) Peek(address uint16) (uint8, error) {
	return mem.Read(address)
}

// Poke is an implementation of the bus.DebuggerBus interface.
func (mem *Memory) Poke(address uint16, data uint8) error {
	return mem.Write(address, data)
}

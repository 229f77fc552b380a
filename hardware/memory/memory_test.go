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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/test"
)

func TestFontPreload(t *testing.T) {
	mem := memory.NewMemory()

	// first row of the "0" sprite
	d, err := mem.Read(memorymap.FontAddress(0x0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xf0)

	// first row of the "1" sprite
	d, err = mem.Read(memorymap.FontAddress(0x1))
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x20)

	// last row of the "F" sprite
	d, err = mem.Read(memorymap.FontAddress(0xf) + 4)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x80)

	// the byte after the font area is empty
	d, err = mem.Read(memorymap.MemtopFont + 1)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x00)
}

func TestReadWrite(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.Write(0x0300, 0xab)
	test.ExpectedSuccess(t, err)

	d, err := mem.Read(0x0300)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xab)

	// the highest address in the map is usable
	err = mem.Write(memorymap.Memtop, 0x01)
	test.ExpectedSuccess(t, err)
	d, err = mem.Read(memorymap.Memtop)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x01)
}

func TestOutOfBounds(t *testing.T) {
	mem := memory.NewMemory()

	_, err := mem.Read(memorymap.Memtop + 1)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.UnreadableAddress))

	err = mem.Write(memorymap.Memtop+1, 0xff)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.UnwritableAddress))

	_, err = mem.Read(0xffff)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.UnreadableAddress))
}

func TestAttachCartridge(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.AttachCartridge([]uint8{0xa2, 0x2a, 0x60, 0x0c})
	test.ExpectedSuccess(t, err)

	d, err := mem.Read(memorymap.OriginCart)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xa2)

	d, err = mem.Read(memorymap.OriginCart + 3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x0c)
}

func TestAttachCartridgeLimits(t *testing.T) {
	mem := memory.NewMemory()

	// no data at all is an error
	err := mem.AttachCartridge([]uint8{})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.CartridgeEmpty))

	// the largest possible cartridge fills memory to the very top
	data := make([]uint8, memorymap.MaxCartridgeSize)
	data[len(data)-1] = 0xee
	err = mem.AttachCartridge(data)
	test.ExpectedSuccess(t, err)

	d, err := mem.Read(memorymap.Memtop)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xee)

	// one byte more is one byte too many
	err = mem.AttachCartridge(make([]uint8, memorymap.MaxCartridgeSize+1))
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, memory.CartridgeTooLarge))
}

func TestReset(t *testing.T) {
	mem := memory.NewMemory()

	err := mem.AttachCartridge([]uint8{0xa2, 0x2a})
	test.ExpectedSuccess(t, err)

	mem.Reset()

	// cartridge data has gone
	d, err := mem.Read(memorymap.OriginCart)
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0x00)

	// font data remains
	d, err = mem.Read(memorymap.FontAddress(0x0))
	test.ExpectedSuccess(t, err)
	test.Equate(t, d, 0xf0)
}

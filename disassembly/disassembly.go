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

package disassembly

import (
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
)

// Disasm is the disassembly of a whole cartridge.
type Disasm struct {
	Entries []*Entry
}

// FromCartridge disassembles the cartridge referenced by the loader. If the
// loader has not yet read the cartridge file, it is loaded now.
//
// Addresses are assigned from the cartridge origin onwards with no size
// checking. A cartridge too large for the machine will disassemble all the
// same, which can be a useful way of seeing why it does not fit.
func FromCartridge(cartload cartridgeloader.Loader) (*Disasm, error) {
	if !cartload.HasLoaded() {
		if err := cartload.Load(); err != nil {
			return nil, err
		}
	}

	dsm := &Disasm{
		Entries: make([]*Entry, 0, len(cartload.Data)/2),
	}

	// a trailing odd byte cannot form a word and is not disassembled
	for i := 0; i+1 < len(cartload.Data); i += 2 {
		opcode := uint16(cartload.Data[i])<<8 | uint16(cartload.Data[i+1])
		dsm.Entries = append(dsm.Entries, FormatResult(execution.Result{
			Address: memorymap.OriginCart + uint16(i),
			Opcode:  opcode,
			Defn:    instructions.Decode(opcode),
		}))
	}

	return dsm, nil
}

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
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disasm) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteLine(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer. the line is emitted with a
// single write, keeping the entry on one line for line oriented writers.
func (dsm *Disasm) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	pre := ""
	if attr.ByteCode {
		pre = fmt.Sprintf("%s ", e.Bytecode)
	}

	if e.Operand == "" {
		_, err := fmt.Fprintf(output, "%s%s %s\n", pre, e.Address, e.Mnemonic)
		return err
	}

	_, err := fmt.Fprintf(output, "%s%s %-4s %s\n", pre, e.Address, e.Mnemonic, e.Operand)
	return err
}

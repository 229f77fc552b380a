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

	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// Entry is a single decoded instruction with its fields formatted for
// display.
type Entry struct {
	Result execution.Result

	Address  string
	Bytecode string
	Mnemonic string
	Operand  string
}

// String returns a basic single line representation of the Entry.
func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Mnemonic)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Mnemonic, e.Operand)
}

// FormatResult creates an Entry from an execution result. Results with no
// definition, ie. words that match nothing in the instruction set, are
// rendered with the "???" mnemonic.
func FormatResult(res execution.Result) *Entry {
	e := &Entry{
		Result:   res,
		Address:  fmt.Sprintf("0x%04x", res.Address),
		Bytecode: fmt.Sprintf("%04x", res.Opcode),
		Mnemonic: "???",
	}

	if res.Defn == nil {
		return e
	}

	e.Mnemonic = res.Defn.Mnemonic

	op := res.Opcode
	switch res.Defn.Operand {
	case instructions.OperandNone:
		// nothing to format

	case instructions.OperandAddress:
		e.Operand = fmt.Sprintf("0x%03x", instructions.FieldNNN(op))

	case instructions.OperandRegisterValue:
		e.Operand = fmt.Sprintf("V%01X, 0x%02x", instructions.FieldX(op), instructions.FieldKK(op))

	case instructions.OperandRegisterPair:
		e.Operand = fmt.Sprintf("V%01X, V%01X", instructions.FieldX(op), instructions.FieldY(op))

	case instructions.OperandRegister:
		e.Operand = fmt.Sprintf("V%01X", instructions.FieldX(op))

	case instructions.OperandSprite:
		e.Operand = fmt.Sprintf("V%01X, V%01X, %d", instructions.FieldX(op), instructions.FieldY(op), instructions.FieldN(op))

	case instructions.OperandIndexAddress:
		e.Operand = fmt.Sprintf("I, 0x%03x", instructions.FieldNNN(op))

	case instructions.OperandOffsetAddress:
		e.Operand = fmt.Sprintf("V0, 0x%03x", instructions.FieldNNN(op))

	case instructions.OperandRegisterDelay:
		e.Operand = fmt.Sprintf("V%01X, DT", instructions.FieldX(op))

	case instructions.OperandDelayRegister:
		e.Operand = fmt.Sprintf("DT, V%01X", instructions.FieldX(op))

	case instructions.OperandSoundRegister:
		e.Operand = fmt.Sprintf("ST, V%01X", instructions.FieldX(op))

	case instructions.OperandRegisterKey:
		e.Operand = fmt.Sprintf("V%01X, K", instructions.FieldX(op))

	case instructions.OperandIndexRegister:
		e.Operand = fmt.Sprintf("I, V%01X", instructions.FieldX(op))

	case instructions.OperandFontRegister:
		e.Operand = fmt.Sprintf("F, V%01X", instructions.FieldX(op))

	case instructions.OperandBCDRegister:
		e.Operand = fmt.Sprintf("B, V%01X", instructions.FieldX(op))

	case instructions.OperandIndirectRegister:
		e.Operand = fmt.Sprintf("[I], V%01X", instructions.FieldX(op))

	case instructions.OperandRegisterIndirect:
		e.Operand = fmt.Sprintf("V%01X, [I]", instructions.FieldX(op))
	}

	return e
}

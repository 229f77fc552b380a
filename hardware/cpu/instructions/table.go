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

package instructions

// Definitions is the complete instruction set. Definitions sharing a family
// (the most significant nibble) are ordered most specific mask first; the
// order within a family is significant to Decode().
var Definitions = []*Definition{
	{Mask: 0xffff, Value: 0x00e0, Operation: Cls, Mnemonic: "CLS", Operand: OperandNone, Effect: Display},
	{Mask: 0xffff, Value: 0x00ee, Operation: Ret, Mnemonic: "RET", Operand: OperandNone, Effect: Subroutine},
	{Mask: 0xf000, Value: 0x0000, Operation: Sys, Mnemonic: "SYS", Operand: OperandAddress, Effect: Flow},
	{Mask: 0xf000, Value: 0x1000, Operation: Jump, Mnemonic: "JP", Operand: OperandAddress, Effect: Flow},
	{Mask: 0xf000, Value: 0x2000, Operation: Call, Mnemonic: "CALL", Operand: OperandAddress, Effect: Subroutine},
	{Mask: 0xf000, Value: 0x3000, Operation: SkipEqualValue, Mnemonic: "SE", Operand: OperandRegisterValue, Effect: Flow},
	{Mask: 0xf000, Value: 0x4000, Operation: SkipNotEqualValue, Mnemonic: "SNE", Operand: OperandRegisterValue, Effect: Flow},
	{Mask: 0xf00f, Value: 0x5000, Operation: SkipEqualRegister, Mnemonic: "SE", Operand: OperandRegisterPair, Effect: Flow},
	{Mask: 0xf000, Value: 0x6000, Operation: LoadValue, Mnemonic: "LD", Operand: OperandRegisterValue, Effect: Data},
	{Mask: 0xf000, Value: 0x7000, Operation: AddValue, Mnemonic: "ADD", Operand: OperandRegisterValue, Effect: Data},
	{Mask: 0xf00f, Value: 0x8000, Operation: LoadRegister, Mnemonic: "LD", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x8001, Operation: Or, Mnemonic: "OR", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x8002, Operation: And, Mnemonic: "AND", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x8003, Operation: Xor, Mnemonic: "XOR", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x8004, Operation: AddRegister, Mnemonic: "ADD", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x8005, Operation: SubRegister, Mnemonic: "SUB", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x8006, Operation: ShiftRight, Mnemonic: "SHR", Operand: OperandRegister, Effect: Data},
	{Mask: 0xf00f, Value: 0x8007, Operation: SubnRegister, Mnemonic: "SUBN", Operand: OperandRegisterPair, Effect: Data},
	{Mask: 0xf00f, Value: 0x800e, Operation: ShiftLeft, Mnemonic: "SHL", Operand: OperandRegister, Effect: Data},
	{Mask: 0xf00f, Value: 0x9000, Operation: SkipNotEqualRegister, Mnemonic: "SNE", Operand: OperandRegisterPair, Effect: Flow},
	{Mask: 0xf000, Value: 0xa000, Operation: LoadIndex, Mnemonic: "LD", Operand: OperandIndexAddress, Effect: Data},
	{Mask: 0xf000, Value: 0xb000, Operation: JumpOffset, Mnemonic: "JP", Operand: OperandOffsetAddress, Effect: Flow},
	{Mask: 0xf000, Value: 0xc000, Operation: Random, Mnemonic: "RND", Operand: OperandRegisterValue, Effect: Data},
	{Mask: 0xf000, Value: 0xd000, Operation: Draw, Mnemonic: "DRW", Operand: OperandSprite, Effect: Display},
	{Mask: 0xf0ff, Value: 0xe09e, Operation: SkipPressed, Mnemonic: "SKP", Operand: OperandRegister, Effect: KeyInput},
	{Mask: 0xf0ff, Value: 0xe0a1, Operation: SkipNotPressed, Mnemonic: "SKNP", Operand: OperandRegister, Effect: KeyInput},
	{Mask: 0xf0ff, Value: 0xf007, Operation: LoadFromDelay, Mnemonic: "LD", Operand: OperandRegisterDelay, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf00a, Operation: LoadKey, Mnemonic: "LD", Operand: OperandRegisterKey, Effect: KeyInput},
	{Mask: 0xf0ff, Value: 0xf015, Operation: SetDelay, Mnemonic: "LD", Operand: OperandDelayRegister, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf018, Operation: SetSound, Mnemonic: "LD", Operand: OperandSoundRegister, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf01e, Operation: AddIndex, Mnemonic: "ADD", Operand: OperandIndexRegister, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf029, Operation: LoadSprite, Mnemonic: "LD", Operand: OperandFontRegister, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf033, Operation: StoreBCD, Mnemonic: "LD", Operand: OperandBCDRegister, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf055, Operation: StoreRegisters, Mnemonic: "LD", Operand: OperandIndirectRegister, Effect: Data},
	{Mask: 0xf0ff, Value: 0xf065, Operation: ReadRegisters, Mnemonic: "LD", Operand: OperandRegisterIndirect, Effect: Data},
}

// definitions grouped by the most significant nibble of the opcode, for
// quicker decoding
var families [16][]*Definition

func init() {
	for _, defn := range Definitions {
		f := defn.Value >> 12
		families[f] = append(families[f], defn)
	}
}

// Decode returns the Definition that matches the opcode, or nil if the
// opcode matches nothing in the instruction set.
func Decode(opcode uint16) *Definition {
	for _, defn := range families[opcode>>12] {
		if opcode&defn.Mask == defn.Value {
			return defn
		}
	}
	return nil
}

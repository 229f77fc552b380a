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

// Package instructions defines the instruction set of the machine. The
// Definitions table records one Definition for every opcode pattern; the
// Decode() function finds the Definition for a specific opcode.
//
// The package says nothing about what an instruction does. Execution
// semantics live with the CPU; formatting of operands for display lives with
// the disassembly package. Both key off the Operation and Operand fields of
// the Definition type.
package instructions

// Operation is the semantic identity of an instruction. It is distinct from
// the mnemonic because several operations share a mnemonic (the many forms
// of LD, for example).
type Operation int

// List of Operation values.
const (
	Sys Operation = iota
	Cls
	Ret
	Jump
	Call
	SkipEqualValue
	SkipNotEqualValue
	SkipEqualRegister
	LoadValue
	AddValue
	LoadRegister
	Or
	And
	Xor
	AddRegister
	SubRegister
	ShiftRight
	SubnRegister
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipPressed
	SkipNotPressed
	LoadFromDelay
	LoadKey
	SetDelay
	SetSound
	AddIndex
	LoadSprite
	StoreBCD
	StoreRegisters
	ReadRegisters
)

// Operand describes the layout of an instruction's operand field, sufficient
// for the disassembler to print it and for the CPU to know which fields of
// the opcode are significant.
type Operand int

// List of Operand values.
const (
	OperandNone             Operand = iota
	OperandAddress                  // nnn
	OperandRegisterValue            // Vx, kk
	OperandRegisterPair             // Vx, Vy
	OperandRegister                 // Vx
	OperandSprite                   // Vx, Vy, n
	OperandIndexAddress             // I, nnn
	OperandOffsetAddress            // V0, nnn
	OperandRegisterDelay            // Vx, DT
	OperandDelayRegister            // DT, Vx
	OperandSoundRegister            // ST, Vx
	OperandRegisterKey              // Vx, K
	OperandIndexRegister            // I, Vx
	OperandFontRegister             // F, Vx
	OperandBCDRegister              // B, Vx
	OperandIndirectRegister         // [I], Vx
	OperandRegisterIndirect         // Vx, [I]
)

// EffectCategory is the broad class of effect an instruction has on the
// machine.
type EffectCategory int

// List of EffectCategory values.
const (
	Data EffectCategory = iota
	Flow
	Subroutine
	Display
	KeyInput
)

// Definition describes one opcode pattern. An opcode matches the Definition
// when opcode&Mask == Value.
type Definition struct {
	Mask  uint16
	Value uint16

	Operation Operation
	Mnemonic  string
	Operand   Operand
	Effect    EffectCategory
}

// FieldX returns the register number in the second nibble of the opcode.
func FieldX(opcode uint16) uint8 {
	return uint8((opcode >> 8) & 0x000f)
}

// FieldY returns the register number in the third nibble of the opcode.
func FieldY(opcode uint16) uint8 {
	return uint8((opcode >> 4) & 0x000f)
}

// FieldN returns the nibble value in the lowest nibble of the opcode.
func FieldN(opcode uint16) uint8 {
	return uint8(opcode & 0x000f)
}

// FieldKK returns the byte value in the lowest byte of the opcode.
func FieldKK(opcode uint16) uint8 {
	return uint8(opcode & 0x00ff)
}

// FieldNNN returns the address in the lowest three nibbles of the opcode.
func FieldNNN(opcode uint16) uint16 {
	return opcode & 0x0fff
}

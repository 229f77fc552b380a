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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/cpu/registers"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory/bus"
	"github.com/jetsetilly/gopher8/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/random"
)

// sentinel errors returned by ExecuteInstruction. all of them are fatal to
// the running program.
const (
	// UnknownOpcode is returned when the fetched opcode matches no
	// instruction definition. the second value is the address the opcode was
	// fetched from.
	UnknownOpcode = "cpu: unknown opcode (0x%04x) at 0x%04x"

	// StackOverflow is returned when a subroutine call would exceed the
	// maximum subroutine depth.
	StackOverflow = "cpu: stack overflow: call to 0x%03x"

	// StackUnderflow is returned when a return instruction is executed with
	// no subroutine active.
	StackUnderflow = "cpu: stack underflow: return outside of a subroutine"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// CPU implements the instruction set of the CHIP-8 interpreter. Register
// logic is implemented by the types in the registers sub-package.
type CPU struct {
	PC *registers.ProgramCounter
	V  [16]*registers.Register
	I  *registers.Index

	// return addresses for active subroutines. never more than StackDepth
	// entries
	Stack []uint16

	// Rnd is the source of randomness for the RND instruction. it is public
	// so that the ZeroSeed field can be set for reproducible sessions
	Rnd *random.Random

	mem  bus.CPUBus
	disp *display.Display
	keys *keypad.Keypad
	tmr  *timer.Timer

	// some operations only need an accumulator
	acc *registers.Register

	// a key-wait instruction suspends the CPU until a key is pressed. the
	// target register is recorded so the key value can be stored when the
	// wait ends
	waitingForKey bool
	waitTarget    uint8

	// last result. the address and opcode fields are valid even when
	// ExecuteInstruction() has returned an error. the calling function might
	// still want to make use of LastResult in that situation (the debugger's
	// LAST command for example)
	LastResult execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem bus.CPUBus, disp *display.Display, keys *keypad.Keypad, tmr *timer.Timer) *CPU {
	mc := &CPU{
		PC:   registers.NewProgramCounter(memorymap.Reset),
		I:    registers.NewIndex(0),
		Rnd:  random.NewRandom(),
		mem:  mem,
		disp: disp,
		keys: keys,
		tmr:  tmr,
		acc:  registers.NewRegister(0, "accumulator"),
	}

	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%01X", i))
	}

	mc.Stack = make([]uint16, 0, StackDepth)

	return mc
}

func (mc *CPU) String() string {
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("PC=%s %s SP=%02d\n", mc.PC, mc.I, len(mc.Stack)))
	for i, v := range mc.V {
		b.WriteString(v.String())
		switch {
		case i == 7:
			b.WriteString("\n")
		case i < 15:
			b.WriteString(" ")
		}
	}
	return b.String()
}

// Reset the CPU to its initial state. Memory and the other peripherals are
// not touched.
func (mc *CPU) Reset() {
	mc.PC.Load(memorymap.Reset)
	mc.I.Load(0)
	for _, v := range mc.V {
		v.Load(0)
	}
	mc.Stack = mc.Stack[:0]
	mc.waitingForKey = false
	mc.waitTarget = 0
	mc.LastResult = execution.Result{}
}

// WaitingForKey returns true if the CPU is suspended on a key-wait
// instruction.
func (mc *CPU) WaitingForKey() bool {
	return mc.waitingForKey
}

// loadFlag is a helper for the instructions that report a carry, borrow or
// collision through VF. the flag is always written after the result so that
// the flag survives when VF is also the destination register.
func (mc *CPU) loadFlag(set bool) {
	if set {
		mc.V[0xf].Load(1)
	} else {
		mc.V[0xf].Load(0)
	}
}

// ExecuteInstruction fetches, decodes and executes one instruction, leaving
// the machine in the state the instruction prescribes. Delay and sound
// timers are not touched. If the CPU is waiting on a key-wait instruction
// the keypad is polled instead and nothing else happens until a key is
// pressed.
//
// Errors returned by ExecuteInstruction are fatal to the running program.
func (mc *CPU) ExecuteInstruction() error {
	// a key-wait instruction from a previous call suspends everything except
	// the keypad poll
	if mc.waitingForKey {
		k, ok := mc.keys.FirstPressed()
		if !ok {
			return nil
		}
		mc.V[mc.waitTarget].Load(k)
		mc.waitingForKey = false
		return nil
	}

	// fetch. the opcode is stored big-endian, high byte first
	addr := mc.PC.Address()

	hi, err := mc.mem.Read(addr)
	if err != nil {
		return err
	}
	lo, err := mc.mem.Read(addr + 1)
	if err != nil {
		return err
	}
	opcode := uint16(hi)<<8 | uint16(lo)

	// decode
	defn := instructions.Decode(opcode)

	// update LastResult before any error can be returned. the address field
	// is the address the opcode was fetched from, not the value of PC after
	// the fetch
	mc.LastResult = execution.Result{
		Address: addr,
		Opcode:  opcode,
		Defn:    defn,
	}

	if defn == nil {
		return curated.Errorf(UnknownOpcode, opcode, addr)
	}

	// the program counter advances before execution. flow instructions that
	// load the program counter therefore take effect cleanly and subroutine
	// calls record the address of the next instruction
	mc.PC.Add(2)

	x := instructions.FieldX(opcode)
	y := instructions.FieldY(opcode)

	// actually perform instruction based on operation
	switch defn.Operation {
	case instructions.Sys:
		// machine code routines on the original hardware. does nothing

	case instructions.Cls:
		if err := mc.disp.Clear(); err != nil {
			return err
		}

	case instructions.Ret:
		if len(mc.Stack) == 0 {
			return curated.Errorf(StackUnderflow)
		}
		mc.PC.Load(mc.Stack[len(mc.Stack)-1])
		mc.Stack = mc.Stack[:len(mc.Stack)-1]

	case instructions.Jump:
		mc.PC.Load(instructions.FieldNNN(opcode))

	case instructions.Call:
		// check the depth limit before anything is mutated
		if len(mc.Stack) >= StackDepth {
			return curated.Errorf(StackOverflow, instructions.FieldNNN(opcode))
		}
		mc.Stack = append(mc.Stack, mc.PC.Address())
		mc.PC.Load(instructions.FieldNNN(opcode))

	case instructions.SkipEqualValue:
		if mc.V[x].Value() == instructions.FieldKK(opcode) {
			mc.PC.Add(2)
		}

	case instructions.SkipNotEqualValue:
		if mc.V[x].Value() != instructions.FieldKK(opcode) {
			mc.PC.Add(2)
		}

	case instructions.SkipEqualRegister:
		if mc.V[x].Value() == mc.V[y].Value() {
			mc.PC.Add(2)
		}

	case instructions.LoadValue:
		mc.V[x].Load(instructions.FieldKK(opcode))

	case instructions.AddValue:
		// no carry flag for the immediate form
		mc.V[x].Add(instructions.FieldKK(opcode))

	case instructions.LoadRegister:
		mc.V[x].Load(mc.V[y].Value())

	case instructions.Or:
		mc.V[x].OR(mc.V[y].Value())

	case instructions.And:
		mc.V[x].AND(mc.V[y].Value())

	case instructions.Xor:
		mc.V[x].XOR(mc.V[y].Value())

	case instructions.AddRegister:
		carry := mc.V[x].Add(mc.V[y].Value())
		mc.loadFlag(carry)

	case instructions.SubRegister:
		// VF is set when there is no borrow
		borrow := mc.V[x].Subtract(mc.V[y].Value())
		mc.loadFlag(!borrow)

	case instructions.ShiftRight:
		// the shift is applied to Vx. Vy is ignored
		bit := mc.V[x].SHR()
		mc.loadFlag(bit)

	case instructions.SubnRegister:
		// as SubRegister but with the operands reversed. the accumulator
		// keeps Vy intact
		mc.acc.Load(mc.V[y].Value())
		borrow := mc.acc.Subtract(mc.V[x].Value())
		mc.V[x].Load(mc.acc.Value())
		mc.loadFlag(!borrow)

	case instructions.ShiftLeft:
		bit := mc.V[x].SHL()
		mc.loadFlag(bit)

	case instructions.SkipNotEqualRegister:
		if mc.V[x].Value() != mc.V[y].Value() {
			mc.PC.Add(2)
		}

	case instructions.LoadIndex:
		mc.I.Load(instructions.FieldNNN(opcode))

	case instructions.JumpOffset:
		// the target is not masked to the addressable range. an out of range
		// sum will cause a memory error on the next fetch
		mc.PC.Load(instructions.FieldNNN(opcode) + mc.V[0].Address())

	case instructions.Random:
		mc.V[x].Load(uint8(mc.Rnd.Intn(256)) & instructions.FieldKK(opcode))

	case instructions.Draw:
		// the entire sprite is read from memory before any of it reaches the
		// display. a memory error therefore leaves the display untouched
		n := instructions.FieldN(opcode)
		sprite := make([]uint8, n)
		for i := uint8(0); i < n; i++ {
			sprite[i], err = mc.mem.Read(mc.I.Address() + uint16(i))
			if err != nil {
				return err
			}
		}

		collision, err := mc.disp.DrawSprite(mc.V[x].Value(), mc.V[y].Value(), sprite)
		if err != nil {
			return err
		}
		mc.loadFlag(collision)

	case instructions.SkipPressed:
		if mc.keys.IsPressed(mc.V[x].Value()) {
			mc.PC.Add(2)
		}

	case instructions.SkipNotPressed:
		if !mc.keys.IsPressed(mc.V[x].Value()) {
			mc.PC.Add(2)
		}

	case instructions.LoadFromDelay:
		mc.V[x].Load(mc.tmr.Delay())

	case instructions.LoadKey:
		// if a key is already pressed the instruction completes immediately.
		// otherwise the CPU suspends until one is
		if k, ok := mc.keys.FirstPressed(); ok {
			mc.V[x].Load(k)
		} else {
			mc.waitingForKey = true
			mc.waitTarget = x
		}

	case instructions.SetDelay:
		mc.tmr.SetDelay(mc.V[x].Value())

	case instructions.SetSound:
		mc.tmr.SetSound(mc.V[x].Value())

	case instructions.AddIndex:
		// no carry flag
		mc.I.Add(mc.V[x].Address())

	case instructions.LoadSprite:
		mc.I.Load(memorymap.FontAddress(mc.V[x].Value()))

	case instructions.StoreBCD:
		v := mc.V[x].Value()
		if err := mc.mem.Write(mc.I.Address(), v/100); err != nil {
			return err
		}
		if err := mc.mem.Write(mc.I.Address()+1, (v/10)%10); err != nil {
			return err
		}
		if err := mc.mem.Write(mc.I.Address()+2, v%10); err != nil {
			return err
		}

	case instructions.StoreRegisters:
		// registers V0 to Vx inclusive. the index register is not changed
		for i := uint16(0); i <= uint16(x); i++ {
			if err := mc.mem.Write(mc.I.Address()+i, mc.V[i].Value()); err != nil {
				return err
			}
		}

	case instructions.ReadRegisters:
		for i := uint16(0); i <= uint16(x); i++ {
			v, err := mc.mem.Read(mc.I.Address() + i)
			if err != nil {
				return err
			}
			mc.V[i].Load(v)
		}

	default:
		// all operations in the definitions table are handled above
		return curated.Errorf(UnknownOpcode, opcode, addr)
	}

	return nil
}

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

// Package cpu emulates the processor at the heart of the CHIP-8 machine.
// Every instruction is a two byte opcode, read big-endian from the address
// pointed to by the program counter. The opcode is looked up in the
// instruction table and the resulting definition drives execution. Register
// logic is implemented by the registers sub-package.
//
// An instance of the CPU type requires an implementation of the bus.CPUBus
// interface along with the display, keypad and timer peripherals it touches
// during execution.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Each call fetches, decodes and executes exactly one instruction.
//
//	mc := cpu.NewCPU(mem, disp, keys, tmr)
//
//	for {
//		err := mc.ExecuteInstruction()
//		if err != nil {
//			break
//		}
//	}
//
// Errors returned by ExecuteInstruction() are fatal to the running program.
// This includes unknown opcodes, memory access errors and subroutine stack
// violations. The error conditions can be distinguished with the curated
// package.
//
// The LastResult field can be probed for information about the last
// instruction executed. It remains valid even when ExecuteInstruction() has
// returned an error, which is useful for debuggers.
//
// Note that the delay and sound timers are never ticked by the CPU. The
// cadence of the timers is the responsibility of the hardware package, which
// decouples it from the instruction rate.
package cpu

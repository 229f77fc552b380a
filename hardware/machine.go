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

package hardware

import (
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/hardware/timer"
	"github.com/jetsetilly/gopher8/logger"
)

// DefInstructionRate is the number of instructions executed per second
// unless the rate is changed with SetInstructionRate().
const DefInstructionRate = 500

// TimerFreq is the rate at which the delay and sound timers decay,
// regardless of the instruction rate. It is also the nominal frame rate of
// the machine.
const TimerFreq = 60

// The continueCheck() function supplied to Run() is called after every
// instruction. A full continue check can be expensive so the
// PerformanceBrake value can be used to filter out expensive code paths
// within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if endCondition {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Machine is the root of the emulated hardware and contains references to
// all the sub-systems.
type Machine struct {
	CPU    *cpu.CPU
	Mem    *memory.Memory
	Timer  *timer.Timer
	Keypad *keypad.Keypad

	// the display is not part of the machine but is attached to it
	Disp *display.Display

	// copy of the most recently attached cartridge data. Reset() restores
	// memory from this because a running program is free to write over
	// itself
	cart []uint8

	instructionRate int
	stepsPerTick    int

	// number of instructions since the last timer tick
	stepCount int

	// number of timer ticks since the last reset. the timers decay at the
	// nominal frame rate so this doubles as a frame count
	frameCount int
}

// NewMachine is the preferred method of initialisation for the Machine
// type. The display is created by the caller and attached here, the other
// sub-systems are created as part of the machine.
func NewMachine(disp *display.Display) *Machine {
	mac := &Machine{
		Mem:    memory.NewMemory(),
		Timer:  timer.NewTimer(),
		Keypad: keypad.NewKeypad(),
		Disp:   disp,
	}
	mac.CPU = cpu.NewCPU(mac.Mem, disp, mac.Keypad, mac.Timer)
	mac.SetInstructionRate(DefInstructionRate)
	return mac
}

// SetInstructionRate changes the number of instructions executed per second.
// Unlike the instruction rate, the decay rate of the timers is fixed. The
// machine maintains the ratio between the two so that a timer loaded with
// sixty decays in about a second however quickly the host drives Step().
//
// Rates that are not sensible are quietly replaced with the default.
func (mac *Machine) SetInstructionRate(ips int) {
	if ips <= 0 {
		ips = DefInstructionRate
	}
	mac.instructionRate = ips
	mac.stepsPerTick = ips / TimerFreq
	if mac.stepsPerTick < 1 {
		mac.stepsPerTick = 1
	}
}

// InstructionRate returns the current number of instructions executed per
// second.
func (mac *Machine) InstructionRate() int {
	return mac.instructionRate
}

// AttachCartridge loads a cartridge into the machine's memory and resets
// the machine. If the loader has not yet read the cartridge file, it is
// loaded now.
func (mac *Machine) AttachCartridge(cartload cartridgeloader.Loader) error {
	if !cartload.HasLoaded() {
		if err := cartload.Load(); err != nil {
			return err
		}
	}

	// validate against memory capacity before the machine is disturbed
	if err := mac.Mem.AttachCartridge(cartload.Data); err != nil {
		return err
	}

	mac.cart = cartload.Data
	if err := mac.Reset(); err != nil {
		return err
	}

	logger.Logf("cartridge", "%s attached (%s)", cartload.ShortName(), cartload.Hash)

	return nil
}

// Reset the machine to its initial state. Memory is restored to its freshly
// loaded state, including the cartridge copy.
func (mac *Machine) Reset() error {
	mac.Mem.Reset()
	if mac.cart != nil {
		if err := mac.Mem.AttachCartridge(mac.cart); err != nil {
			return err
		}
	}

	mac.CPU.Reset()
	mac.Timer.Reset()
	mac.Keypad.Reset()

	if err := mac.Disp.Reset(); err != nil {
		return err
	}

	mac.stepCount = 0
	mac.frameCount = 0

	return nil
}

// Step the machine one CPU instruction. The timers are ticked whenever
// enough instructions have accumulated, which includes the instructions
// spent waiting on a key press.
func (mac *Machine) Step() error {
	if err := mac.CPU.ExecuteInstruction(); err != nil {
		return err
	}

	mac.stepCount++
	if mac.stepCount >= mac.stepsPerTick {
		mac.stepCount = 0
		mac.Timer.Tick()
		mac.frameCount++
	}

	return nil
}

// Frame returns the number of timer ticks since the last reset.
func (mac *Machine) Frame() int {
	return mac.frameCount
}

// Sounding returns true if the tone should be audible.
func (mac *Machine) Sounding() bool {
	return mac.Timer.Sounding()
}

// Run sets the emulation running as quickly as possible. The continueCheck()
// function is called after every instruction and the emulation ends cleanly
// when it returns false.
func (mac *Machine) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for {
		if err := mac.Step(); err != nil {
			return err
		}

		cont, err := continueCheck()
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
}

// RunForFrameCount sets the emulation running for the specified number of
// timer ticks. Useful for performance measurement and tests.
func (mac *Machine) RunForFrameCount(numFrames int) error {
	target := mac.frameCount + numFrames
	for mac.frameCount < target {
		if err := mac.Step(); err != nil {
			return err
		}
	}
	return nil
}

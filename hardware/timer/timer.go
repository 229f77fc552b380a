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

// Package timer implements the delay and sound timers of the machine. The
// two timers are independent 8 bit values that decrement towards zero on
// every Tick(). The Tick() function must be driven at a 60Hz cadence,
// regardless of how quickly the CPU is being stepped.
//
// The timers have no behaviour beyond the decrement. In particular, the
// sound timer does not make any sound; a non-zero sound timer means a tone
// should be audible and it is for the emulation's host to arrange that.
package timer

import "fmt"

// Timer is the delay and sound timer pair.
type Timer struct {
	delay uint8
	sound uint8
}

// NewTimer is the preferred method of initialisation for the Timer type.
func NewTimer() *Timer {
	return &Timer{}
}

func (tmr Timer) String() string {
	return fmt.Sprintf("DT=0x%02x ST=0x%02x", tmr.delay, tmr.sound)
}

// Reset both timers to zero.
func (tmr *Timer) Reset() {
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decrements both timers, each floored at zero.
func (tmr *Timer) Tick() {
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
}

// SetDelay loads the delay timer.
func (tmr *Timer) SetDelay(val uint8) {
	tmr.delay = val
}

// Delay returns the current value of the delay timer.
func (tmr *Timer) Delay() uint8 {
	return tmr.delay
}

// SetSound loads the sound timer.
func (tmr *Timer) SetSound(val uint8) {
	tmr.sound = val
}

// Sound returns the current value of the sound timer.
func (tmr *Timer) Sound() uint8 {
	return tmr.sound
}

// Sounding is true if a tone should currently be audible.
func (tmr *Timer) Sounding() bool {
	return tmr.sound > 0
}

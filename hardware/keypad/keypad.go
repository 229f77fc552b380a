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

// Package keypad implements the sixteen key hexadecimal pad of the machine.
//
//	+-+-+-+-+
//	|1|2|3|C|
//	+-+-+-+-+
//	|4|5|6|D|
//	+-+-+-+-+
//	|7|8|9|E|
//	+-+-+-+-+
//	|A|0|B|F|
//	+-+-+-+-+
//
// The keypad holds simple pressed/released state. Mapping host input events
// onto keypad keys is the responsibility of whatever is driving the
// emulation; see the playmode package for the canonical mapping.
//
// Key state is written by the input handler and read by the CPU. There is no
// internal locking; both sides are expected to run in the emulation
// goroutine.
package keypad

import (
	"fmt"
	"strings"
)

// NumKeys is the number of keys on the pad.
const NumKeys = 16

// Keypad records the pressed/released state of each key.
type Keypad struct {
	keys [NumKeys]bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

func (key Keypad) String() string {
	s := strings.Builder{}
	s.WriteString("pressed:")
	any := false
	for k := 0; k < NumKeys; k++ {
		if key.keys[k] {
			s.WriteString(fmt.Sprintf(" %01X", k))
			any = true
		}
	}
	if !any {
		s.WriteString(" none")
	}
	return s.String()
}

// Reset releases every key.
func (key *Keypad) Reset() {
	for k := range key.keys {
		key.keys[k] = false
	}
}

// Press the numbered key. Key numbers outside the pad are ignored.
func (key *Keypad) Press(k uint8) {
	if k < NumKeys {
		key.keys[k] = true
	}
}

// Release the numbered key. Key numbers outside the pad are ignored.
func (key *Keypad) Release(k uint8) {
	if k < NumKeys {
		key.keys[k] = false
	}
}

// IsPressed returns the state of the numbered key. Key numbers outside the
// pad are never pressed.
func (key *Keypad) IsPressed(k uint8) bool {
	if k >= NumKeys {
		return false
	}
	return key.keys[k]
}

// FirstPressed returns the lowest numbered key that is currently pressed,
// and false if no key is pressed at all.
func (key *Keypad) FirstPressed() (uint8, bool) {
	for k := uint8(0); k < NumKeys; k++ {
		if key.keys[k] {
			return k, true
		}
	}
	return 0, false
}

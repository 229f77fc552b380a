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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestPressRelease(t *testing.T) {
	key := keypad.NewKeypad()

	test.Equate(t, key.IsPressed(0x1), false)
	key.Press(0x1)
	test.Equate(t, key.IsPressed(0x1), true)
	key.Release(0x1)
	test.Equate(t, key.IsPressed(0x1), false)

	// keys outside the pad are ignored and never pressed
	key.Press(0x10)
	test.Equate(t, key.IsPressed(0x10), false)
	test.Equate(t, key.IsPressed(0xff), false)
}

func TestFirstPressed(t *testing.T) {
	key := keypad.NewKeypad()

	_, ok := key.FirstPressed()
	test.Equate(t, ok, false)

	key.Press(0xa)
	key.Press(0x4)
	k, ok := key.FirstPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0x4)

	key.Release(0x4)
	k, ok = key.FirstPressed()
	test.Equate(t, ok, true)
	test.Equate(t, k, 0xa)
}

func TestReset(t *testing.T) {
	key := keypad.NewKeypad()
	key.Press(0x0)
	key.Press(0xf)
	key.Reset()
	_, ok := key.FirstPressed()
	test.Equate(t, ok, false)
}

func TestStringer(t *testing.T) {
	key := keypad.NewKeypad()
	test.Equate(t, key.String(), "pressed: none")
	key.Press(0x1)
	key.Press(0xa)
	test.Equate(t, key.String(), "pressed: 1 A")
}

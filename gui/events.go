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

package gui

// Event represents the different kinds of user interaction that can occur in
// the gui. Events are sent over the channel registered with the
// ReqSetEventChan feature request.
type Event interface{}

// KeyMod identifies the key modifier held down at the time of a keyboard
// event.
type KeyMod int

// List of valid key modifiers.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is sent when a key is pressed or released.
type EventKeyboard struct {
	Key  string
	Down bool
	Mod  KeyMod
}

// EventWindowClose is sent when the user closes the gui window.
type EventWindowClose struct{}

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

package registers

import "fmt"

// Register is an 8 bit register. The V registers of the machine are all of
// this type.
type Register struct {
	label string
	value uint8
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) *Register {
	return &Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=0x%02x", r.label, r.value)
}

// Label returns the label assigned to the register.
func (r Register) Label() string {
	return r.label
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register /as a uint16/. This is
// useful when the register value is used in an address context.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}

// Add value to register. Returns true if the addition carried beyond eight
// bits; the register itself wraps around.
func (r *Register) Add(val uint8) bool {
	v := r.value
	r.value += val
	return r.value < v
}

// Subtract value from register. Returns true if a borrow was required, ie.
// the subtrahend was larger than the register value. The register wraps
// around.
func (r *Register) Subtract(val uint8) bool {
	borrow := val > r.value
	r.value -= val
	return borrow
}

// AND value with register.
func (r *Register) AND(val uint8) {
	r.value &= val
}

// OR value with register.
func (r *Register) OR(val uint8) {
	r.value |= val
}

// XOR value with register.
func (r *Register) XOR(val uint8) {
	r.value ^= val
}

// SHL shifts the register one bit to the left. Returns the most significant
// bit as it was before the shift.
func (r *Register) SHL() bool {
	carry := r.value&0x80 == 0x80
	r.value <<= 1
	return carry
}

// SHR shifts the register one bit to the right. Returns the least
// significant bit as it was before the shift.
func (r *Register) SHR() bool {
	carry := r.value&0x01 == 0x01
	r.value >>= 1
	return carry
}

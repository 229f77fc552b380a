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

package debugger

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
)

// the prompt shows the disassembly of the instruction the machine is about
// to execute.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	promptAddress := dbg.mac.CPU.PC.Address()

	prompt := strings.Builder{}

	// peek the word at the program counter. the peek can fail when the
	// program counter has run off the end of memory, in which case the
	// prompt shows the address and nothing else
	hi, hiErr := dbg.mac.Mem.Peek(promptAddress)
	lo, loErr := dbg.mac.Mem.Peek(promptAddress + 1)
	if hiErr != nil || loErr != nil {
		prompt.WriteString(fmt.Sprintf("0x%04x ???", promptAddress))
	} else {
		opcode := uint16(hi)<<8 | uint16(lo)
		e := disassembly.FormatResult(execution.Result{
			Address: promptAddress,
			Opcode:  opcode,
			Defn:    instructions.Decode(opcode),
		})
		prompt.WriteString(e.String())
	}

	// display indicator that the CPU is waiting for a key press
	if dbg.mac.CPU.WaitingForKey() {
		prompt.WriteString(" !")
	}

	return terminal.Prompt{Content: prompt.String(), Type: terminal.PromptTypeCPUStep}
}

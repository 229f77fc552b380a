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

package debugger_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/display"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
)

type mockGUI struct{}

func (g *mockGUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	return nil
}

func (g *mockGUI) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
}

type mockTerm struct {
	t      *testing.T
	inp    chan string
	out    chan string
	output []string
}

func newMockTerm(t *testing.T) *mockTerm {
	trm := &mockTerm{
		t:   t,
		inp: make(chan string),
		out: make(chan string, 100),
	}
	return trm
}

func (trm *mockTerm) Initialise() error {
	return nil
}

func (trm *mockTerm) CleanUp() {
}

func (trm *mockTerm) RegisterTabCompletion(_ terminal.TabCompletion) {
}

func (trm *mockTerm) Silence(_ bool) {
}

func (trm *mockTerm) TermRead(buffer []byte, _ terminal.Prompt, _ *terminal.ReadEvents) (int, error) {
	s := <-trm.inp
	n := copy(buffer, s)
	return n + 1, nil
}

func (trm *mockTerm) TermReadCheck() bool {
	return false
}

func (trm *mockTerm) IsInteractive() bool {
	return false
}

func (trm *mockTerm) TermPrintLine(sty terminal.Style, s string) {
	if sty == terminal.StyleEcho {
		return
	}
	trm.out <- s
}

func (trm *mockTerm) sndInput(s string) {
	trm.output = make([]string, 0, 10)
	trm.inp <- s
}

func (trm *mockTerm) rcvOutput() {
	empty := false
	for !empty {
		select {
		case s := <-trm.out:
			trm.output = append(trm.output, s)

		// the amount of time to wait before deciding the output is complete
		// is important. too short and we can miss lines that the debugger is
		// still writing. this value seems to work okay
		case <-time.After(10 * time.Millisecond):
			empty = true
		}
	}
}

// cmpOutput compares the last line of output with the expected string. an
// expected string of the empty string matches an absence of output.
func (trm *mockTerm) cmpOutput(s string) bool {
	trm.rcvOutput()

	l := len(trm.output)
	if l == 0 {
		if s == "" {
			return true
		}
		trm.t.Errorf("unexpected debugger output (nothing) should be (%s)", s)
		return false
	}

	if trm.output[l-1] == s {
		return true
	}

	trm.t.Errorf("unexpected debugger output (%s) should be (%s)", trm.output[l-1], s)
	return false
}

func (trm *mockTerm) testSequence() {
	defer func() { trm.sndInput("QUIT") }()
	trm.testBreakpoints()
	trm.testStep()
	trm.testPeekPoke()
	trm.testRunBreak()
	trm.testDisasm()
	trm.testLog()
}

// the test program is hand assembled. the SKP instruction lets the tests
// observe the effect of the KEY command.
//
//	0x0200 LD   V0, 0x05
//	0x0202 LD   V1, 0x02
//	0x0204 ADD  V0, V1
//	0x0206 SKP  V1
//	0x0208 JP   0x208
//	0x020a JP   0x20a
var testProgram = []byte{
	0x60, 0x05,
	0x61, 0x02,
	0x80, 0x14,
	0xe1, 0x9e,
	0x12, 0x08,
	0x12, 0x0a,
}

func (trm *mockTerm) testStep() {
	trm.sndInput("STEP")
	trm.cmpOutput("0x0200 LD V0, 0x05")

	trm.sndInput("STEP 2")
	trm.cmpOutput("0x0204 ADD V0, V1")

	trm.sndInput("LAST")
	trm.cmpOutput("0x0204 ADD V0, V1")

	trm.sndInput("LAST BYTECODE")
	trm.cmpOutput("8014 0x0204 ADD V0, V1")

	trm.sndInput("LAST DEFN")
	trm.cmpOutput("pattern: 0x8004 (mask 0xf00f)")

	// the registers now reflect the three instructions that have been stepped
	trm.sndInput("CPU")
	trm.cmpOutput("PC=0x0206 I=0x0000 SP=00\n" +
		"V0=0x07 V1=0x02 V2=0x00 V3=0x00 V4=0x00 V5=0x00 V6=0x00 V7=0x00\n" +
		"V8=0x00 V9=0x00 VA=0x00 VB=0x00 VC=0x00 VD=0x00 VE=0x00 VF=0x00")

	trm.sndInput("TIMERS")
	trm.cmpOutput("DT=0x00 ST=0x00")
}

func (trm *mockTerm) testPeekPoke() {
	trm.sndInput("PEEK 0x200")
	trm.cmpOutput("0x0200 -> 0x60")

	trm.sndInput("PEEK 0x200 4")
	trm.cmpOutput("0x0200: 60 05 61 02")

	trm.sndInput("POKE 0x300 0xff 0xab")
	trm.cmpOutput("0x0301 -> 0xab")

	trm.sndInput("PEEK 0x300 2")
	trm.cmpOutput("0x0300: ff ab")

	trm.sndInput("PEEK 0x1000")
	trm.cmpOutput("memory: unreadable address (0x1000)")
}

func (trm *mockTerm) testDisasm() {
	trm.sndInput("DISASM")
	trm.cmpOutput("0x020a JP   0x20a")

	trm.sndInput("DISASM BYTECODE")
	trm.cmpOutput("120a 0x020a JP   0x20a")
}

func (trm *mockTerm) testLog() {
	trm.sndInput("LOG LAST")
	trm.cmpOutput("cartridge: test attached ()")

	trm.sndInput("LOG CLEAR")
	trm.cmpOutput("")

	trm.sndInput("LOG")
	trm.cmpOutput("")
}

func TestDebugger(t *testing.T) {
	trm := newMockTerm(t)

	dbg, err := debugger.NewDebugger(display.NewDisplay(), &mockGUI{}, hardware.DefInstructionRate, true)
	if err != nil {
		t.Fatalf(err.Error())
	}

	go trm.testSequence()

	err = dbg.Start(trm, cartridgeloader.Loader{Filename: "test", Data: testProgram})
	if err != nil {
		t.Fatalf(err.Error())
	}
}

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

//go:build !windows
// +build !windows

package colorterm

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// readRune is the type sent over the runeReader channel.
type readRune struct {
	r   rune
	n   int
	err error
}

// runeReader forwards runes from the input stream over a channel. this allows
// TermRead() to service the ReadEvents channels while it is waiting for user
// input.
type runeReader chan readRune

func initRuneReader(input io.Reader) runeReader {
	reader := bufio.NewReader(input)
	ch := make(runeReader)

	go func() {
		for {
			var rr readRune
			rr.r, rr.n, rr.err = reader.ReadRune()
			ch <- rr
			if rr.err != nil {
				return
			}
		}
	}()

	return ch
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, 4)

	inputLen := 0
	cursorPos := 0
	historyIdx := len(ct.commandHistory)

	// liveBuffInput is used to store the latest input when we scroll through
	// history - we don't want to lose what we've typed in case the user wants
	// to resume where they left off
	liveBuffInput := make([]byte, cap(input))
	liveBuffInputLen := 0

	// the method for cursor placement is as follows:
	// 	1. for each iteration in the loop
	//		2. store current cursor position
	//		3. clear the current line
	//		4. output the prompt
	//		5. output the input buffer
	//		6. restore the cursor position
	//
	// for this to work we need to place the cursor in its initial position
	// before we begin the loop
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(ansi.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		switch prompt.Type {
		case terminal.PromptTypeConfirm:
			ct.EasyTerm.TermPrint(ansi.Pens["blue"])
		default:
			ct.EasyTerm.TermPrint(ansi.PenStyles["bold"])
		}
		ct.EasyTerm.TermPrint(prompt.String())
		ct.EasyTerm.TermPrint(ansi.NormalPen)
		ct.EasyTerm.TermPrint(string(input[:inputLen]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		var rr readRune

		// the select blocks until a rune arrives or until some other event
		// requires attention
		select {
		case rr = <-ct.reader:
		case <-events.IntEvents:
			ct.EasyTerm.TermPrint("\n")
			return 0, curated.Errorf(terminal.UserInterrupt)
		case ev := <-events.GuiEvents:
			if err := events.GuiEventHandler(ev); err != nil {
				ct.EasyTerm.TermPrint("\n")
				return 0, err
			}
			continue
		}

		if rr.err != nil {
			return inputLen, rr.err
		}

		switch rr.r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursorPos]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursorPos

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursorPos:inputLen])
				copy(input, s)

				// advance cursor to the end of the completed word
				ct.EasyTerm.TermPrint(ansi.CursorMove(d))
				cursorPos += d

				// note new used-length of input array
				inputLen += d
			}

		case easyterm.KeyInterrupt:
			// CTRL-C
			ct.EasyTerm.TermPrint("\n")
			return inputLen + 1, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeySuspend:
			// CTRL-Z. the terminal must be in canonical mode before the
			// process is suspended or the shell we return to will misbehave
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn:
			// CARRIAGE RETURN

			// check to see if input is the same as the last history entry
			newEntry := false
			if inputLen > 0 {
				newEntry = true
				if len(ct.commandHistory) > 0 {
					lastHistoryEntry := ct.commandHistory[len(ct.commandHistory)-1].input
					if len(lastHistoryEntry) == inputLen {
						newEntry = false
						for i := 0; i < inputLen; i++ {
							if input[i] != lastHistoryEntry[i] {
								newEntry = true
								break
							}
						}
					}
				}
			}

			// if input is not the same as the last history entry then append
			// a new entry to the history list
			if newEntry {
				nh := make([]byte, inputLen)
				copy(nh, input[:inputLen])
				ct.commandHistory = append(ct.commandHistory, command{input: nh})
			}

			ct.EasyTerm.TermPrint("\n")
			if ct.tabCompletion != nil {
				ct.tabCompletion.Reset()
			}

			return inputLen + 1, nil

		case easyterm.KeyEsc:
			// ESCAPE SEQUENCE BEGIN
			rr = <-ct.reader
			if rr.err != nil {
				return inputLen, rr.err
			}
			switch rr.r {
			case easyterm.EscCursor:
				// CURSOR KEY
				rr = <-ct.reader
				if rr.err != nil {
					return inputLen, rr.err
				}

				switch rr.r {
				case easyterm.CursorUp:
					// move up through command history
					if len(ct.commandHistory) > 0 {
						// if we're at the end of the command history then
						// store the current input in liveBuffInput for
						// possible later editing
						if historyIdx == len(ct.commandHistory) {
							copy(liveBuffInput, input[:inputLen])
							liveBuffInputLen = inputLen
						}

						if historyIdx > 0 {
							historyIdx--
							copy(input, ct.commandHistory[historyIdx].input)
							inputLen = len(ct.commandHistory[historyIdx].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					}

				case easyterm.CursorDown:
					// move down through command history
					if len(ct.commandHistory) > 0 {
						if historyIdx < len(ct.commandHistory)-1 {
							historyIdx++
							copy(input, ct.commandHistory[historyIdx].input)
							inputLen = len(ct.commandHistory[historyIdx].input)
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						} else if historyIdx == len(ct.commandHistory)-1 {
							historyIdx++
							copy(input, liveBuffInput)
							inputLen = liveBuffInputLen
							ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
							cursorPos = inputLen
						}
					}

				case easyterm.CursorForward:
					// move forward through current command input
					if cursorPos < inputLen {
						ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
						cursorPos++
					}

				case easyterm.CursorBackward:
					// move backward through current command input
					if cursorPos > 0 {
						ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
						cursorPos--
					}

				case easyterm.EscHome:
					ct.EasyTerm.TermPrint(ansi.CursorMove(-cursorPos))
					cursorPos = 0

				case easyterm.EscEnd:
					ct.EasyTerm.TermPrint(ansi.CursorMove(inputLen - cursorPos))
					cursorPos = inputLen

				case easyterm.EscDelete:
					// DELETE
					if cursorPos < inputLen {
						copy(input[cursorPos:], input[cursorPos+1:])
						inputLen--
						historyIdx = len(ct.commandHistory)
					}

					// eat the remainder of the escape sequence
					rr = <-ct.reader
					if rr.err != nil {
						return inputLen, rr.err
					}
				}
			}

		case easyterm.KeyBackspace, 127:
			// BACKSPACE. materialises as a DEL character on many terminals
			if cursorPos > 0 {
				copy(input[cursorPos-1:], input[cursorPos:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursorPos--
				inputLen--
				historyIdx = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(rr.r) {
				m := utf8.EncodeRune(er, rr.r)
				copy(input[cursorPos+m:], input[cursorPos:])
				copy(input[cursorPos:], er[:m])

				// advance character to the next position
				ct.EasyTerm.TermPrint(string(er[:m]))
				cursorPos++
				inputLen += m
				historyIdx = len(ct.commandHistory)
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return false
}

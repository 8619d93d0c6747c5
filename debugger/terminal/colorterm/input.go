// This file is part of GopherMSX.
//
// GopherMSX is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherMSX is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherMSX.  If not, see <https://www.gnu.org/licenses/>.

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gophermsx/curated"
	"github.com/jetsetilly/gophermsx/debugger/terminal"
	"github.com/jetsetilly/gophermsx/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gophermsx/debugger/terminal/colorterm/easyterm/ansi"
)

// TermRead reads a command line in raw mode, with line editing and command
// history on the cursor keys.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	// er is used to store encoded runes (length of 4 is enough)
	er := make([]byte, 4)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// buffInput stores the latest input while scrolling through history so
	// that nothing typed is lost
	buffInput := make([]byte, cap(buffer))
	buffN := 0

	// the redraw method: store the cursor position, clear the line, output
	// prompt and buffer, restore the cursor. for this to work the cursor
	// starts in its initial position
	ct.EasyTerm.TermPrint("\r%s", ansi.CursorMove(len(prompt.Content)))

	for {
		ct.EasyTerm.TermPrint(ansi.CursorStore)
		ct.TermPrint(terminal.StyleInput, "%s%s", ansi.ClearLine, prompt.Content)
		ct.TermPrint(terminal.StyleInput, string(buffer[:n]))
		ct.EasyTerm.TermPrint(ansi.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		switch r {
		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\n")
			return n, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyCarriageReturn:
			// append to the command history unless the input repeats the
			// most recent entry
			if n > 0 {
				newEntry := true
				if len(ct.commandHistory) > 0 {
					last := ct.commandHistory[len(ct.commandHistory)-1]
					if len(last) == n {
						newEntry = false
						for i := 0; i < n; i++ {
							if buffer[i] != last[i] {
								newEntry = true
								break
							}
						}
					}
				}
				if newEntry {
					nh := make([]byte, n)
					copy(nh, buffer[:n])
					ct.commandHistory = append(ct.commandHistory, nh)
				}
			}

			ct.EasyTerm.TermPrint("\n")
			return n + 1, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				continue
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				if len(ct.commandHistory) > 0 {
					// store current input before the first step backwards
					if history == len(ct.commandHistory) {
						copy(buffInput, buffer[:n])
						buffN = n
					}
					if history > 0 {
						history--
						copy(buffer, ct.commandHistory[history])
						n = len(ct.commandHistory[history])
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorDown:
				if len(ct.commandHistory) > 0 {
					if history < len(ct.commandHistory)-1 {
						history++
						copy(buffer, ct.commandHistory[history])
						n = len(ct.commandHistory[history])
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					} else if history == len(ct.commandHistory)-1 {
						history++
						copy(buffer, buffInput)
						n = buffN
						ct.EasyTerm.TermPrint(ansi.CursorMove(n - cursor))
						cursor = n
					}
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.EasyTerm.TermPrint(ansi.CursorForwardOne)
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
					cursor--
				}
			}

		case easyterm.KeyBackspace:
			if cursor > 0 {
				copy(buffer[cursor-1:], buffer[cursor:])
				ct.EasyTerm.TermPrint(ansi.CursorBackwardOne)
				cursor--
				n--
				history = len(ct.commandHistory)
			}

		default:
			if unicode.IsPrint(r) {
				ct.EasyTerm.TermPrint("%c", r)
				m := utf8.EncodeRune(er, r)
				copy(buffer[cursor+m:], buffer[cursor:])
				copy(buffer[cursor:], er[:m])
				cursor++
				n += m
				history = len(ct.commandHistory)
			}
		}
	}
}

// TermPrint writes a styled, formatted string without a trailing newline.
// used by the input loop for prompt and echo output.
func (ct *ColorTerminal) TermPrint(style terminal.Style, s string, a ...interface{}) {
	ct.EasyTerm.TermPrint(pen(style))
	ct.EasyTerm.TermPrint(s, a...)
	ct.EasyTerm.TermPrint(ansi.NormalPen)
}

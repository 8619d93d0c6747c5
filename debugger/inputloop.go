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

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophermsx/curated"
	"github.com/jetsetilly/gophermsx/debugger/terminal"
)

// the instruction-window depth shown while stepping through firmware.
const firmwareWindowDepth = 8

// Loop reads and dispatches commands until the user quits or input ends.
func (s *Session) Loop(term terminal.Terminal) error {
	if err := term.Initialise(); err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer term.CleanUp()

	buffer := make([]byte, 255)

	for {
		s.printCurrent(term)

		n, err := term.TermRead(buffer, terminal.Prompt{Content: "[msx] "})
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return err
		}

		input := strings.TrimSpace(string(buffer[:n]))
		if quit := s.dispatch(term, input); quit {
			return nil
		}
	}
}

// printCurrent shows the line (or firmware window) about to execute.
func (s *Session) printCurrent(term terminal.Terminal) {
	if s.InFirmware() {
		for _, d := range s.FirmwareWindow(firmwareWindowDepth) {
			term.TermPrintLine(terminal.StyleFirmware, d.String())
		}
		return
	}

	if s.Finished() {
		term.TermPrintLine(terminal.StyleFeedback, "program finished")
		return
	}

	term.TermPrintLine(terminal.StyleInstruction,
		fmt.Sprintf("%3d: %s", s.Line(), strings.TrimSpace(s.Source(s.Line()))))
}

// dispatch interprets one command. the return value is true when the
// session should end.
func (s *Session) dispatch(term terminal.Terminal, input string) bool {
	fields := strings.Fields(strings.ToLower(input))

	cmd := ""
	if len(fields) > 0 {
		cmd = fields[0]
	}

	switch cmd {
	case "", "step", "s":
		if err := s.Step(); err != nil {
			term.TermPrintLine(terminal.StyleError, err.Error())
		}

	case "run", "r":
		n := s.Run()
		term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("ran %d steps", n))

	case "ret":
		n := s.RunToReturn()
		term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("ran %d steps", n))

	case "undo", "u":
		if err := s.Undo(); err != nil {
			term.TermPrintLine(terminal.StyleError, err.Error())
		}

	case "break", "b":
		if len(fields) < 2 {
			term.TermPrintLine(terminal.StyleError, "break requires a line number")
			break
		}
		line, err := strconv.Atoi(fields[1])
		if err != nil {
			term.TermPrintLine(terminal.StyleError, "break requires a line number")
			break
		}
		if s.SetBreakpoint(line) {
			term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint set at line %d", line))
		} else {
			term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("breakpoint cleared at line %d", line))
		}

	case "reset":
		s.Reset()

	case "info", "i":
		st := s.State()
		term.TermPrintLine(terminal.StyleMachineInfo, st.String())
		term.TermPrintLine(terminal.StyleMachineInfo,
			fmt.Sprintf("t-states=%d depth=%d vdp-addr=%04x", st.TStates, st.FrameDepth(), st.VDP.Address))

	case "list", "l":
		for i := 0; i < s.NumLines(); i++ {
			marker := "  "
			if i == s.Line() {
				marker = "->"
			}
			term.TermPrintLine(terminal.StyleFeedback, fmt.Sprintf("%s %3d: %s", marker, i, s.Source(i)))
		}

	case "help", "h":
		term.TermPrintLine(terminal.StyleHelp, "step (s), run (r), ret, undo (u), break <n> (b), reset, info (i), list (l), quit (q)")

	case "quit", "q":
		return true

	default:
		term.TermPrintLine(terminal.StyleError, fmt.Sprintf("unrecognised command (%s)", cmd))
	}

	return false
}

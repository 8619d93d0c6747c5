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

// Package colorterm implements the Terminal interface for the debugger.
// It supports color output and command history.
package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gophermsx/debugger/terminal/colorterm/easyterm"
)

// ColorTerminal implements the debugger's terminal with a basic ANSI
// terminal.
type ColorTerminal struct {
	easyterm.EasyTerm

	reader         *bufio.Reader
	commandHistory [][]byte

	silenced bool
}

// Initialise the color terminal.
func (ct *ColorTerminal) Initialise() error {
	if err := ct.EasyTerm.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}

	ct.commandHistory = make([][]byte, 0)
	ct.reader = bufio.NewReader(os.Stdin)

	return nil
}

// CleanUp restores the terminal to canonical mode.
func (ct *ColorTerminal) CleanUp() {
	ct.EasyTerm.TermPrint("\r")
	_ = ct.Flush()
	ct.EasyTerm.CleanUp()
}

// IsInteractive returns true for the color terminal.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence output except error messages.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

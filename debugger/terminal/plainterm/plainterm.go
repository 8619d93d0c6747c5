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

// Package plainterm implements the Terminal interface with no special
// terminal handling at all. It works anywhere a stdin and stdout exist,
// including pipes and scripted sessions.
package plainterm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gophermsx/debugger/terminal"
)

// PlainTerminal is the default, least capable, terminal implementation.
type PlainTerminal struct {
	input    io.Reader
	output   io.Writer
	silenced bool
}

// Initialise the plain terminal.
func (pt *PlainTerminal) Initialise() error {
	pt.input = os.Stdin
	pt.output = os.Stdout
	return nil
}

// CleanUp the plain terminal. nothing to do.
func (pt *PlainTerminal) CleanUp() {
}

// Silence output.
func (pt *PlainTerminal) Silence(silenced bool) {
	pt.silenced = silenced
}

// TermPrintLine writes a line to the terminal. styles are ignored except
// that errors are prefixed and always shown.
func (pt *PlainTerminal) TermPrintLine(style terminal.Style, s string) {
	if pt.silenced && style != terminal.StyleError {
		return
	}

	if style == terminal.StyleError {
		s = fmt.Sprintf("* %s", s)
	}

	fmt.Fprintln(pt.output, s)
}

// TermRead reads a line from the terminal.
func (pt *PlainTerminal) TermRead(buffer []byte, prompt terminal.Prompt) (int, error) {
	if pt.silenced {
		return 0, nil
	}

	fmt.Fprint(pt.output, prompt.Content)

	n, err := pt.input.Read(buffer)
	if err != nil {
		return n, err
	}
	return n, nil
}

// IsInteractive returns false for the plain terminal: it may be driven by a
// pipe as easily as a person.
func (pt *PlainTerminal) IsInteractive() bool {
	return false
}
